package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "foodio",
			"log": map[string]any{
				"level": "info",
			},
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
		"mongo": map[string]any{
			"uri":      "",
			"database": "",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "aligns camelCase segments with existing yaml keys",
			rawKey: "ENV_SERVICENAME",
			want:   "env.serviceName",
		},
		{
			name:   "nested path",
			rawKey: "ENV_LOG_LEVEL",
			want:   "env.log.level",
		},
		{
			name:   "multi-word yaml key",
			rawKey: "HTTP_MAXREQUESTBODYSIZE",
			want:   "http.maxRequestBodySize",
		},
		{
			name:   "mongo overrides",
			rawKey: "MONGO_DATABASE",
			want:   "mongo.database",
		},
		{
			name:   "unknown segments fall back to lowercase",
			rawKey: "MONGO_REPLICASET",
			want:   "mongo.replicaset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "maxrequestbodysize", normalizeToken("maxRequestBodySize"))
	assert.Equal(t, "servicename", normalizeToken("service-name"))
	assert.Equal(t, "", normalizeToken("_"))
}
