package ticket

import (
	"strings"

	"github.com/ticketflow-dev/ticketflow/internal/schema"
)

// SummaryPrefix is prepended to every summary that does not already carry it.
const SummaryPrefix = "[RECO][Algo]"

// IssueTypes lists the issue types this tool can create.
var IssueTypes = []string{"Story", "Bug"}

// Payload is the request body for the Jira issue-creation endpoint.
type Payload struct {
	Fields map[string]any `json:"fields"`
}

// BuildPayload assembles the creation payload for a ticket. Supplied custom
// field names present in the schema's mapping are written under their remote
// field identifier; unmapped names pass through verbatim so callers can use
// raw Jira field ids (or standard fields like labels) directly. Validation is
// the caller's job; this function has no failure path.
func BuildPayload(s schema.ProjectSchema, projectKey, issueType, summary, description string, customFields map[string]any) Payload {
	fields := map[string]any{
		"project":     map[string]string{"key": projectKey},
		"summary":     summary,
		"description": description,
		"issuetype":   map[string]string{"name": issueType},
	}

	for name, value := range customFields {
		if remoteID, ok := s.FieldMapping[name]; ok {
			fields[remoteID] = value
		} else {
			fields[name] = value
		}
	}

	return Payload{Fields: fields}
}

// NormalizeText turns literal backslash-n sequences into real line breaks.
// Shells tend to deliver \n from the command line as two characters.
func NormalizeText(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// EnsureSummaryPrefix prepends SummaryPrefix unless the summary already
// starts with it.
func EnsureSummaryPrefix(summary string) string {
	if strings.HasPrefix(summary, SummaryPrefix) {
		return summary
	}
	return SummaryPrefix + " " + summary
}

// ValidIssueType reports whether issueType is one of the supported types.
func ValidIssueType(issueType string) bool {
	for _, t := range IssueTypes {
		if t == issueType {
			return true
		}
	}
	return false
}
