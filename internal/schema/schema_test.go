package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRegisteredProject(t *testing.T) {
	r := DefaultRegistry()

	s := r.Lookup("DMCD")
	assert.Equal(t, "DMCD", s.Key)
	assert.Equal(t, []string{"device_os"}, s.RequiredFields)
	assert.Equal(t, "customfield_11003", s.FieldMapping["device_os"])
	assert.Equal(t, "customfield_11030", s.FieldMapping["test_device"])
}

func TestLookupUnknownProjectReturnsFallback(t *testing.T) {
	r := DefaultRegistry()

	for _, key := range []string{"UNKNOWN", "dmcd", "", "WEB"} {
		s := r.Lookup(key)
		assert.Empty(t, s.RequiredFields, "key %q", key)
		assert.Empty(t, s.FieldMapping, "key %q", key)
		assert.Equal(t, key, s.Key)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := DefaultRegistry()

	s := r.Lookup("acpf")
	assert.Empty(t, s.RequiredFields)
}

func TestKeysPreserveRegistrationOrder(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"ACPF", "DPR", "DMCD"}, r.Keys())
}

func TestValidateMissingFields(t *testing.T) {
	r := DefaultRegistry()

	err := r.Validate("ACPF", map[string]any{"model_type": "xgboost"})
	require.Error(t, err)

	var missingErr *MissingFieldsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "ACPF", missingErr.ProjectKey)
	assert.Equal(t, []string{"algo_id"}, missingErr.Missing)
	assert.Equal(t, []string{"algo_id", "model_type"}, missingErr.Required)
	assert.Contains(t, err.Error(), "algo_id")
	assert.Contains(t, err.Error(), "ACPF")
}

func TestValidateMissingFieldsPreserveDeclarationOrder(t *testing.T) {
	r := DefaultRegistry()

	err := r.Validate("DPR", map[string]any{})
	var missingErr *MissingFieldsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"dataset_id", "data_sensitivity"}, missingErr.Missing)
}

func TestValidateAllFieldsPresent(t *testing.T) {
	r := DefaultRegistry()

	err := r.Validate("DMCD", map[string]any{"device_os": "Android"})
	assert.NoError(t, err)
}

func TestValidateUnknownProjectNeverFails(t *testing.T) {
	r := DefaultRegistry()

	assert.NoError(t, r.Validate("UNKNOWN", map[string]any{}))
	assert.NoError(t, r.Validate("UNKNOWN", map[string]any{"anything": 1}))
}

func TestValidateExtraFieldsAllowed(t *testing.T) {
	r := DefaultRegistry()

	err := r.Validate("DMCD", map[string]any{
		"device_os": "iOS",
		"labels":    []string{"mobile"},
	})
	assert.NoError(t, err)
}
