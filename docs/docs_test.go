package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openAPI struct {
	BasePath string                                 `json:"basePath"`
	Paths    map[string]map[string]openAPIOperation `json:"paths"`
}

type openAPIOperation struct {
	Summary    string `json:"summary"`
	Parameters []struct {
		Name        string `json:"name"`
		In          string `json:"in"`
		Description string `json:"description"`
	} `json:"parameters"`
}

func TestDocumentCoversRoutes(t *testing.T) {
	var doc openAPI
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	routes := map[string][]string{
		"/health":               {"get"},
		"/ready":                {"get"},
		"/candidates":           {"get", "post"},
		"/candidates/{id}":      {"get", "delete"},
		"/candidates/{id}/file": {"get"},
		"/screening/filter":     {"post"},
		"/screening/rank":       {"post"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			op, ok := doc.Paths[path][m]
			if assert.True(t, ok, "%s %s", m, path) {
				assert.NotEmpty(t, op.Summary, "%s %s", m, path)
			}
		}
	}

	upload := doc.Paths["/candidates"]["post"]
	require.Len(t, upload.Parameters, 1)
	assert.Equal(t, "formData", upload.Parameters[0].In)
	assert.Contains(t, upload.Parameters[0].Description, "поле resume тоже принимается")
}
