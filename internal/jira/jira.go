package jira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ticketflow-dev/ticketflow/internal/ticket"
)

// unknownValue stands in for response fields Jira did not send. Creation is
// still a success without them.
const unknownValue = "Unknown"

type Client struct {
	baseURL string
	pat     string
	http    *http.Client
}

func NewClient(baseURL, pat string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		pat:     pat,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateResult holds the identifiers Jira assigned to a created issue.
type CreateResult struct {
	Key string
	ID  string
	Raw map[string]any
}

// RequestError captures a failed submission. StatusCode is zero when the
// request never produced a response (connection refused, DNS failure,
// timeout); Detail holds the parsed error body when one was returned.
type RequestError struct {
	StatusCode int
	Detail     map[string]any
	Reason     string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("jira request failed: %s", e.Reason)
	}
	detail, err := json.Marshal(e.Detail)
	if err != nil {
		return fmt.Sprintf("jira api error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("jira api error (%d): %s", e.StatusCode, detail)
}

// CreateIssue submits the payload to the issue-creation endpoint. Every
// failure comes back as a *RequestError; the call never retries.
func (c *Client) CreateIssue(payload ticket.Payload) (*CreateResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/rest/api/2/issue", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.pat))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Reason: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Detail:     parseErrorBody(data),
		}
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = map[string]any{}
	}
	return &CreateResult{
		Key: stringField(raw, "key"),
		ID:  stringField(raw, "id"),
		Raw: raw,
	}, nil
}

// TicketURL returns the browse URL for a created issue.
func (c *Client) TicketURL(key string) string {
	return fmt.Sprintf("%s/browse/%s", c.baseURL, key)
}

func parseErrorBody(data []byte) map[string]any {
	var detail map[string]any
	if err := json.Unmarshal(data, &detail); err != nil {
		return map[string]any{"raw_error": string(data)}
	}
	return detail
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok && v != "" {
		return v
	}
	return unknownValue
}
