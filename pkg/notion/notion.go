package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	// Notion caps a rich_text content block at 2000 characters; staying a bit
	// under keeps the request valid for any message length.
	messageLimit   = 1900
	requestTimeout = 10 * time.Second
	snippetLimit   = 80
)

// Client mirrors contact submissions into a Notion database via the pages API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	databaseID string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		token:      cfg.NotionToken,
		databaseID: cfg.NotionDatabaseID,
	}
}

// IsConfigured reports whether both the integration token and the target
// database id are present.
func (c *Client) IsConfigured() bool {
	return c.token != "" && c.databaseID != ""
}

// CreatePage issues a single page-creation request for the submission. Any
// status other than 200/201 is an error carrying the status code and a short
// body snippet.
func (c *Client) CreatePage(ctx context.Context, sub *domain.ContactSubmission) error {
	body, err := json.Marshal(c.pagePayload(sub))
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
	return fmt.Errorf("%d %s", resp.StatusCode, snippet)
}

func (c *Client) pagePayload(sub *domain.ContactSubmission) map[string]any {
	source := sub.Source
	if source == "" {
		source = "website"
	}

	message := sub.Message
	if runes := []rune(message); len(runes) > messageLimit {
		message = string(runes[:messageLimit])
	}

	return map[string]any{
		"parent": map[string]string{"database_id": c.databaseID},
		"properties": map[string]any{
			"Name":    map[string]any{"title": richText(sub.Name)},
			"Email":   map[string]string{"email": sub.Email},
			"Company": map[string]any{"rich_text": richText(sub.Company)},
			"Source":  map[string]any{"select": map[string]string{"name": source}},
			"Message": map[string]any{"rich_text": richText(message)},
		},
	}
}

func richText(content string) []map[string]any {
	return []map[string]any{
		{"text": map[string]string{"content": content}},
	}
}
