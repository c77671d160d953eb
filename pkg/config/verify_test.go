package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(Default()))
	})

	t.Run("with feeds", func(t *testing.T) {
		cfg := Default()
		cfg.Feeds = []FeedConfig{{URL: "https://example.com/rss", Title: "Example", Category: "news", FetchInterval: 30}}
		require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})

	t.Run("minimum violated", func(t *testing.T) {
		cfg := Default()
		cfg.Refresh.MaxWorkers = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refresh.max_workers")
	})
}

func TestCheckNode(t *testing.T) {
	defs := map[string]any{
		"Item": map[string]any{
			"type":       "object",
			"required":   []any{"name"},
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
		},
	}
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"count": map[string]any{"type": "integer", "minimum": float64(1)},
			"items": map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/Item"}},
			"on":    map[string]any{"type": "boolean"},
		},
	}

	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "valid", value: `{"count":2,"items":[{"name":"a"}],"on":true}`},
		{name: "null array", value: `{"items":null}`},
		{name: "below minimum", value: `{"count":0}`, wantErr: "count: 0 is less than minimum 1"},
		{name: "wrong type", value: `{"count":"x"}`, wantErr: "count: expected number"},
		{name: "missing required in ref", value: `{"items":[{}]}`, wantErr: "items[0].name is required"},
		{name: "wrong item type", value: `{"items":[{"name":1}]}`, wantErr: "items[0].name: expected string"},
		{name: "bool type", value: `{"on":"yes"}`, wantErr: "on: expected boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			require.NoError(t, json.Unmarshal([]byte(tt.value), &v))
			err := checkNode(schema, v, defs, "")
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	err := checkNode(map[string]any{"$ref": "#/$defs/Missing"}, map[string]any{}, defs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reference")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RefreshConfig")
	assert.Contains(t, string(data), "feeds_ttl")
	assert.Equal(t, "readlist configuration", schema.Title)
	assert.EqualValues(t, schemaID, schema.ID)

	// embedded copy carries the same identity
	var embedded map[string]any
	require.NoError(t, json.Unmarshal([]byte(embeddedSchema), &embedded))
	assert.Equal(t, schemaID, embedded["$id"])
	assert.Equal(t, schema.Title, embedded["title"])
}
