package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/nycrides/tripcast/internal/pkg/models"
)

// DefaultConfidence is reported with every prediction until the artifact
// carries per-prediction confidence intervals.
const DefaultConfidence = 0.9

// Artifact is the serialized regression model produced by the training
// pipeline. Coefficients are keyed by feature name and applied in the
// order given by Features.
type Artifact struct {
	ModelType          string             `json:"model_type"`
	ModelVersion       string             `json:"model_version"`
	CreatedAt          string             `json:"created_at"`
	Features           []string           `json:"features"`
	Intercept          float64            `json:"intercept"`
	Coefficients       map[string]float64 `json:"coefficients"`
	FeatureImportances map[string]float64 `json:"feature_importances,omitempty"`
}

// Validate checks that the artifact is internally consistent.
func (a *Artifact) Validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("model artifact declares no features")
	}
	for _, name := range a.Features {
		if _, ok := a.Coefficients[name]; !ok {
			return fmt.Errorf("model artifact missing coefficient for feature %s", name)
		}
	}
	return nil
}

// Predict computes the estimated trip duration in seconds from a feature
// vector. Features absent from the vector contribute zero.
func (a *Artifact) Predict(vector models.FeatureVector) float64 {
	duration := a.Intercept
	for _, name := range a.Features {
		duration += a.Coefficients[name] * vector[name]
	}
	return duration
}

// Handle lazily loads a model artifact from disk. The artifact is read at
// most once; subsequent calls reuse the loaded artifact or the load error.
type Handle struct {
	path string

	once     sync.Once
	artifact *Artifact
	err      error
}

// NewHandle returns a handle for the artifact at the given path. The file
// is not touched until the first call to Get.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// Get returns the loaded artifact, loading it on first use.
func (h *Handle) Get() (*Artifact, error) {
	h.once.Do(func() {
		h.artifact, h.err = load(h.path)
	})
	return h.artifact, h.err
}

func load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	return &artifact, nil
}
