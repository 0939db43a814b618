package ticket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketflow-dev/ticketflow/internal/schema"
)

func TestBuildPayloadFixedFields(t *testing.T) {
	reg := schema.DefaultRegistry()

	p := BuildPayload(reg.Lookup("UNKNOWN"), "UNKNOWN", "Story", "A summary", "A description", nil)

	require.Len(t, p.Fields, 4)
	assert.Equal(t, map[string]string{"key": "UNKNOWN"}, p.Fields["project"])
	assert.Equal(t, "A summary", p.Fields["summary"])
	assert.Equal(t, "A description", p.Fields["description"])
	assert.Equal(t, map[string]string{"name": "Story"}, p.Fields["issuetype"])
}

func TestBuildPayloadMapsFriendlyNames(t *testing.T) {
	reg := schema.DefaultRegistry()

	p := BuildPayload(reg.Lookup("DMCD"), "DMCD", "Bug", "Crash on boot", "Repro steps", map[string]any{
		"device_os": "Android",
	})

	assert.Equal(t, "Android", p.Fields["customfield_11003"])
	assert.NotContains(t, p.Fields, "device_os")
}

func TestBuildPayloadUnmappedNamePassesThrough(t *testing.T) {
	reg := schema.DefaultRegistry()

	p := BuildPayload(reg.Lookup("DMCD"), "DMCD", "Bug", "s", "d", map[string]any{
		"device_os":         "iOS",
		"customfield_99999": "raw id",
		"labels":            []string{"mobile", "urgent"},
	})

	assert.Equal(t, "iOS", p.Fields["customfield_11003"])
	assert.Equal(t, "raw id", p.Fields["customfield_99999"])
	assert.Equal(t, []string{"mobile", "urgent"}, p.Fields["labels"])
}

func TestBuildPayloadValuePreserved(t *testing.T) {
	reg := schema.DefaultRegistry()

	nested := map[string]any{"value": "High", "child": map[string]any{"value": "P1"}}
	p := BuildPayload(reg.Lookup("ACPF"), "ACPF", "Story", "s", "d", map[string]any{
		"algo_id":    42,
		"model_type": nested,
	})

	assert.Equal(t, 42, p.Fields["customfield_11001"])
	assert.Equal(t, nested, p.Fields["customfield_11010"])
}

func TestBuildPayloadDeterministicJSON(t *testing.T) {
	reg := schema.DefaultRegistry()
	fields := map[string]any{"device_os": "Android", "test_device": "Pixel 8"}

	a := BuildPayload(reg.Lookup("DMCD"), "DMCD", "Bug", "s", "d", fields)
	b := BuildPayload(reg.Lookup("DMCD"), "DMCD", "Bug", "s", "d", fields)

	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(aJSON), string(bJSON))
	assert.Equal(t, string(aJSON), string(bJSON))
}

func TestBuildPayloadMarshalShape(t *testing.T) {
	reg := schema.DefaultRegistry()

	p := BuildPayload(reg.Lookup("DMCD"), "DMCD", "Bug", "Crash", "Steps", map[string]any{
		"device_os": "Android",
	})

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"fields": {
			"project": {"key": "DMCD"},
			"summary": "Crash",
			"description": "Steps",
			"issuetype": {"name": "Bug"},
			"customfield_11003": "Android"
		}
	}`, string(data))
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "line one\nline two", NormalizeText(`line one\nline two`))
	assert.Equal(t, "no escapes", NormalizeText("no escapes"))
	assert.Equal(t, "already\nreal", NormalizeText("already\nreal"))
}

func TestEnsureSummaryPrefix(t *testing.T) {
	assert.Equal(t, "[RECO][Algo] Fix bug", EnsureSummaryPrefix("Fix bug"))
	assert.Equal(t, "[RECO][Algo] Fix bug", EnsureSummaryPrefix("[RECO][Algo] Fix bug"))
	assert.Equal(t, "[RECO][Algo]Fix bug", EnsureSummaryPrefix("[RECO][Algo]Fix bug"))
}

func TestValidIssueType(t *testing.T) {
	assert.True(t, ValidIssueType("Story"))
	assert.True(t, ValidIssueType("Bug"))
	assert.False(t, ValidIssueType("Task"))
	assert.False(t, ValidIssueType("story"))
}
