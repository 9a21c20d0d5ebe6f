package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Hackathon 2025 Demo API", parsed.Info.Title)
	for _, path := range []string{
		"/api/hello", "/api/hello2", "/api/hello3", "/api/hello2alt",
		"/api/goodby", "/api/goodnight", "/api/nature-image", "/api/fibonacci", "/health",
	} {
		assert.Contains(t, parsed.Paths, path)
	}
}
