package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/browser"

	"github.com/ticketflow-dev/ticketflow/internal/config"
	"github.com/ticketflow-dev/ticketflow/internal/jira"
	"github.com/ticketflow-dev/ticketflow/internal/schema"
	"github.com/ticketflow-dev/ticketflow/internal/ticket"
	"github.com/ticketflow-dev/ticketflow/internal/utils"
)

var registry = schema.DefaultRegistry()

type jiraService interface {
	CreateIssue(ticket.Payload) (*jira.CreateResult, error)
	TicketURL(string) string
}

var (
	jiraFactory = func(baseURL, pat string) jiraService {
		return jira.NewClient(baseURL, pat)
	}

	confirmFunc = utils.ConfirmStdin
	openURLFunc = browser.OpenURL
)

// fileInput mirrors the shape of a --json-input file.
type fileInput struct {
	ProjectKey   string         `json:"project_key"`
	IssueType    string         `json:"issue_type"`
	Summary      string         `json:"summary"`
	Description  string         `json:"description"`
	CustomFields map[string]any `json:"custom_fields"`
}

func handleCreate(opts createOptions) error {
	if opts.ListProjects {
		return projectsHandler()
	}

	var fileFields map[string]any
	if opts.JSONInput != "" {
		input, err := readJSONInput(opts.JSONInput)
		if err != nil {
			return err
		}
		// Flag values win over file values; the issue type from the file
		// applies only when the flag was left at its default.
		if opts.ProjectKey == "" {
			opts.ProjectKey = input.ProjectKey
		}
		if !opts.IssueTypeSet && input.IssueType != "" {
			opts.IssueType = input.IssueType
		}
		if opts.Summary == "" {
			opts.Summary = input.Summary
		}
		if opts.Description == "" {
			opts.Description = input.Description
		}
		fileFields = input.CustomFields
	}

	if opts.ProjectKey == "" {
		return errors.New("--project-key is required (or project_key in --json-input)")
	}
	if opts.Summary == "" {
		return errors.New("--summary is required (or summary in --json-input)")
	}
	if opts.Description == "" {
		return errors.New("--description is required (or description in --json-input)")
	}
	if !ticket.ValidIssueType(opts.IssueType) {
		return fmt.Errorf("invalid issue type %q (expected %s)", opts.IssueType, strings.Join(ticket.IssueTypes, " or "))
	}

	summary := ticket.EnsureSummaryPrefix(ticket.NormalizeText(opts.Summary))
	description := ticket.NormalizeText(opts.Description)

	customFields := map[string]any{}
	if opts.CustomFields != "" {
		if err := json.Unmarshal([]byte(opts.CustomFields), &customFields); err != nil {
			return fmt.Errorf("parse --custom-fields JSON: %w", err)
		}
	} else if fileFields != nil {
		customFields = fileFields
	}

	if err := registry.Validate(opts.ProjectKey, customFields); err != nil {
		var missingErr *schema.MissingFieldsError
		if errors.As(err, &missingErr) {
			fmt.Println(utils.DimStyle.Render(fmt.Sprintf(
				"Use --custom-fields to provide: %s", strings.Join(missingErr.Required, ", "))))
		}
		return err
	}

	projectSchema := registry.Lookup(opts.ProjectKey)
	payload := ticket.BuildPayload(projectSchema, opts.ProjectKey, opts.IssueType, summary, description, customFields)

	rendered, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	if opts.DryRun {
		fmt.Println(utils.TitleStyle.Render("Dry run - payload that would be sent:"))
		fmt.Println(string(rendered))
		return nil
	}

	fmt.Println(utils.TitleStyle.Render(fmt.Sprintf("Ready to create %s in %s", opts.IssueType, opts.ProjectKey)))
	fmt.Printf("%s %s\n", utils.DimStyle.Render("Summary:"), summary)
	fmt.Println(utils.DimStyle.Render("Payload:"))
	fmt.Println(string(rendered))
	fmt.Println()

	confirmed, err := confirmFunc("Proceed with creation?")
	if err != nil {
		if errors.Is(err, utils.ErrPromptEOF) {
			return errors.New("input stream closed, aborting")
		}
		return err
	}
	if !confirmed {
		// Explicit cancel is a clean exit, not an error.
		fmt.Println(utils.WarnStyle.Render("Creation cancelled by user."))
		return nil
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := settings.CheckReady(); err != nil {
		return err
	}

	fmt.Println(utils.DimStyle.Render(fmt.Sprintf("Creating %s in project %s...", opts.IssueType, opts.ProjectKey)))

	client := jiraFactory(settings.BaseURL, settings.Token)
	result, err := client.CreateIssue(payload)
	if err != nil {
		fmt.Println(utils.ErrorStyle.Render("Failed to create ticket"))
		return err
	}

	ticketURL := client.TicketURL(result.Key)
	fmt.Println(utils.SuccessStyle.Render("Ticket created successfully!"))
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("Key:"), utils.ValueStyle.Render(result.Key))
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("ID:"), utils.ValueStyle.Render(result.ID))
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("URL:"), utils.ValueStyle.Render(ticketURL))

	if opts.Open {
		if err := openURLFunc(ticketURL); err != nil {
			fmt.Println(utils.WarnStyle.Render(fmt.Sprintf("Could not open browser: %v", err)))
		}
	}

	return nil
}

func readJSONInput(path string) (*fileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json input: %w", err)
	}
	var input fileInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parse json input %s: %w", path, err)
	}
	return &input, nil
}

func handleProjects() error {
	fmt.Println(utils.TitleStyle.Render("Available Project Schemas"))
	fmt.Println()

	for _, key := range registry.Keys() {
		s := registry.Lookup(key)
		printSchema(key, s)
	}
	printSchema("DEFAULT (any unlisted project)", registry.Fallback())

	return nil
}

func printSchema(label string, s schema.ProjectSchema) {
	fmt.Println(utils.ValueStyle.Render(label))
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("Description:"), s.Description)
	required := "None"
	if len(s.RequiredFields) > 0 {
		required = strings.Join(s.RequiredFields, ", ")
	}
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("Required fields:"), required)
	if len(s.FieldMapping) > 0 {
		names := make([]string, 0, len(s.FieldMapping))
		for name := range s.FieldMapping {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("  %s %s\n", utils.DimStyle.Render("Custom fields:"), strings.Join(names, ", "))
	}
	fmt.Println()
}

func handleConfigShow() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	fmt.Println(utils.TitleStyle.Render("Current Configuration"))
	fmt.Println()
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("config file:"), path)
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("base_url:"), utils.ValueStyle.Render(settings.BaseURL))
	fmt.Printf("  %s %s\n", utils.DimStyle.Render("pat:"), utils.WarnStyle.Render(config.MaskToken(settings.Token)))

	if err := settings.CheckReady(); err != nil {
		fmt.Println()
		fmt.Println(utils.WarnStyle.Render(fmt.Sprintf("Warning: %v", err)))
	}
	return nil
}
