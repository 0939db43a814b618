package schema

import (
	"fmt"
	"strings"
)

// ProjectSchema describes the custom fields a single Jira project expects.
// RequiredFields keeps declaration order so error messages stay stable.
type ProjectSchema struct {
	Key            string
	RequiredFields []string
	FieldMapping   map[string]string
	Description    string
}

// Registry holds every known project schema plus the fallback used for
// projects that have no custom field requirements.
type Registry struct {
	schemas  map[string]ProjectSchema
	fallback ProjectSchema
	order    []string
}

// DefaultRegistry returns the registry of built-in project schemas.
func DefaultRegistry() *Registry {
	r := &Registry{
		schemas: make(map[string]ProjectSchema),
		fallback: ProjectSchema{
			Description: "Standard project (no custom fields required)",
		},
	}

	r.register(ProjectSchema{
		Key:            "ACPF",
		RequiredFields: []string{"algo_id", "model_type"},
		FieldMapping: map[string]string{
			"algo_id":    "customfield_11001",
			"model_type": "customfield_11010",
		},
		Description: "Algo project (ACPF)",
	})
	r.register(ProjectSchema{
		Key:            "DPR",
		RequiredFields: []string{"dataset_id", "data_sensitivity"},
		FieldMapping: map[string]string{
			"dataset_id":       "customfield_11002",
			"data_sensitivity": "customfield_11020",
		},
		Description: "Data project (DPR)",
	})
	r.register(ProjectSchema{
		Key:            "DMCD",
		RequiredFields: []string{"device_os"},
		FieldMapping: map[string]string{
			"device_os":   "customfield_11003",
			"test_device": "customfield_11030", // optional field
		},
		Description: "Mobile project (DMCD)",
	})

	return r
}

func (r *Registry) register(s ProjectSchema) {
	r.schemas[s.Key] = s
	r.order = append(r.order, s.Key)
}

// Lookup returns the schema registered for projectKey. Unknown projects get
// the fallback schema so they remain usable with zero custom fields; lookup
// never fails.
func (r *Registry) Lookup(projectKey string) ProjectSchema {
	if s, ok := r.schemas[projectKey]; ok {
		return s
	}
	fallback := r.fallback
	fallback.Key = projectKey
	return fallback
}

// Keys returns the registered project keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Fallback returns the schema applied to unregistered projects.
func (r *Registry) Fallback() ProjectSchema {
	return r.fallback
}

// MissingFieldsError reports required fields absent from a supplied field
// map. Missing preserves the schema's declaration order.
type MissingFieldsError struct {
	ProjectKey string
	Missing    []string
	Required   []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields for project %s: %s",
		e.ProjectKey, strings.Join(e.Missing, ", "))
}

// Validate checks that every required field for projectKey is present in
// fields. Returns a *MissingFieldsError naming each absent field, or nil.
func (r *Registry) Validate(projectKey string, fields map[string]any) error {
	s := r.Lookup(projectKey)

	var missing []string
	for _, name := range s.RequiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{
			ProjectKey: projectKey,
			Missing:    missing,
			Required:   s.RequiredFields,
		}
	}
	return nil
}
