package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_ReadDoc(t *testing.T) {
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]struct {
			Properties map[string]map[string]any `json:"properties"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "cityCast API", doc.Info.Title)

	for _, path := range []string{"/cityStops", "/stopEnrichment", "/feedback", "/payments", "/geocode", "/weather", "/directions", "/navigation/progress", "/sitemap.xml"} {
		assert.Contains(t, doc.Paths, path)
	}

	var post struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(doc.Paths["/feedback"]["post"], &post))
	assert.Contains(t, post.Description, "whole number from 1 to 5")
	assert.Contains(t, post.Description, "fractional ratings such as 3.5 are rejected with 400")

	rating := doc.Definitions["handler.submitFeedbackRequest"].Properties["rating"]
	assert.Equal(t, "integer", rating["type"])
	assert.Equal(t, 1.0, rating["minimum"])
	assert.Equal(t, 5.0, rating["maximum"])
}
