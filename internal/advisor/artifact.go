package advisor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Artifact is the serialized output of the offline purchase-model
// trainer: a standard scaler plus logistic regression coefficients,
// keyed by feature name.
type Artifact struct {
	Model    string   `json:"model"`
	Features []string `json:"features"`
	Scaler   struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// LoadArtifact reads and validates a model artifact from disk
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	n := len(artifact.Features)
	if n == 0 {
		return nil, fmt.Errorf("model artifact has no features")
	}
	if len(artifact.Scaler.Mean) != n || len(artifact.Scaler.Scale) != n || len(artifact.Weights) != n {
		return nil, fmt.Errorf("model artifact vectors disagree: %d features, %d means, %d scales, %d weights",
			n, len(artifact.Scaler.Mean), len(artifact.Scaler.Scale), len(artifact.Weights))
	}

	return &artifact, nil
}

// Score standardizes the named feature values and runs the logistic
// model over them. Unknown features score as zero after standardization.
func (a *Artifact) Score(values map[string]float64) float64 {
	z := a.Intercept
	for i, name := range a.Features {
		value, ok := values[name]
		if !ok {
			continue
		}
		scale := a.Scaler.Scale[i]
		if scale == 0 {
			continue
		}
		z += a.Weights[i] * (value - a.Scaler.Mean[i]) / scale
	}
	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
