package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "secret-token",
		databaseID: "db-1",
	}
}

func testSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "hello",
		Source:  "website",
	}
}

// propertyContent digs the content string out of a rich_text/title property.
func propertyContent(t *testing.T, properties map[string]any, name, kind string) string {
	t.Helper()
	prop, ok := properties[name].(map[string]any)
	require.True(t, ok, "missing property %s", name)
	items, ok := prop[kind].([]any)
	require.True(t, ok, "property %s has no %s", name, kind)
	require.Len(t, items, 1)
	text := items[0].(map[string]any)["text"].(map[string]any)
	return text["content"].(string)
}

func TestCreatePagePayload(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sub := testSubmission()
	sub.Message = strings.Repeat("a", 5000)
	err := testClient(srv).CreatePage(context.Background(), sub)
	require.NoError(t, err)

	parent := payload["parent"].(map[string]any)
	assert.Equal(t, "db-1", parent["database_id"])

	properties := payload["properties"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", propertyContent(t, properties, "Name", "title"))
	assert.Len(t, propertyContent(t, properties, "Message", "rich_text"), 1900)

	// Absent company maps to an empty rich text, not a missing property
	assert.Equal(t, "", propertyContent(t, properties, "Company", "rich_text"))

	emailProp := properties["Email"].(map[string]any)
	assert.Equal(t, "ada@example.com", emailProp["email"])

	selectProp := properties["Source"].(map[string]any)["select"].(map[string]any)
	assert.Equal(t, "website", selectProp["name"])
}

func TestCreatePageStatusHandling(t *testing.T) {
	t.Run("201 is success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		err := testClient(srv).CreatePage(context.Background(), testSubmission())
		assert.NoError(t, err)
	})

	t.Run("Non-2xx carries the status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"validation_error"}`))
		}))
		defer srv.Close()

		err := testClient(srv).CreatePage(context.Background(), testSubmission())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "validation_error")
	})

	t.Run("Transport failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		err := testClient(srv).CreatePage(context.Background(), testSubmission())
		assert.Error(t, err)
	})
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewClient(&config.Config{NotionToken: "t", NotionDatabaseID: "d"}).IsConfigured())
	assert.False(t, NewClient(&config.Config{NotionToken: "t"}).IsConfigured())
	assert.False(t, NewClient(&config.Config{NotionDatabaseID: "d"}).IsConfigured())
	assert.False(t, NewClient(&config.Config{}).IsConfigured())
}
