package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

const testArtifactJSON = `{
	"model_type": "linear_regression",
	"model_version": "2016.1",
	"created_at": "2016-06-01T00:00:00Z",
	"features": ["distance_km", "hour"],
	"intercept": 120,
	"coefficients": {"distance_km": 180, "hour": 2},
	"feature_importances": {"distance_km": 0.9, "hour": 0.1}
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHandleGet(t *testing.T) {
	handle := NewHandle(writeArtifact(t, testArtifactJSON))

	artifact, err := handle.Get()
	require.NoError(t, err)
	assert.Equal(t, "linear_regression", artifact.ModelType)
	assert.Equal(t, "2016.1", artifact.ModelVersion)
	assert.Equal(t, []string{"distance_km", "hour"}, artifact.Features)
}

func TestHandleGetMissingFile(t *testing.T) {
	handle := NewHandle(filepath.Join(t.TempDir(), "absent.json"))

	_, err := handle.Get()
	require.Error(t, err)

	// The load error sticks for subsequent calls
	_, again := handle.Get()
	assert.Equal(t, err, again)
}

func TestHandleGetInvalidArtifact(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"no features", `{"model_type": "x", "coefficients": {}}`},
		{"missing coefficient", `{"features": ["hour"], "coefficients": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := NewHandle(writeArtifact(t, tt.content))
			_, err := handle.Get()
			assert.Error(t, err)
		})
	}
}

func TestArtifactPredict(t *testing.T) {
	handle := NewHandle(writeArtifact(t, testArtifactJSON))
	artifact, err := handle.Get()
	require.NoError(t, err)

	vector := models.FeatureVector{"distance_km": 2, "hour": 10}
	// 120 + 180*2 + 2*10
	assert.InDelta(t, 500.0, artifact.Predict(vector), 1e-9)

	// Absent features contribute zero
	assert.InDelta(t, 120.0, artifact.Predict(models.FeatureVector{}), 1e-9)
}
