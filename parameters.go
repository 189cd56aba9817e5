package fsrs

import "fmt"

// numWeights is the fixed length of the FSRS weight vector.
const numWeights = 17

// decay and factor are the two derived constants shared by every
// Parameters value: DECAY = -0.5, FACTOR = 0.9^(1/DECAY) - 1 = 19/81.
const (
	decay  = -0.5
	factor = 19.0 / 81.0
)

// DefaultWeights are the canonical FSRS default weights.
var DefaultWeights = [numWeights]float64{
	0.4872, 1.4003, 3.7145, 13.8206, 5.1618, 1.2298, 0.8975, 0.031,
	1.6474, 0.1367, 1.0461, 2.1072, 0.0793, 0.3246, 1.587, 0.2272, 2.8755,
}

// Parameters is the immutable configuration consumed by an Engine.
// The zero value is not ready to use — construct with
// DefaultParameters or fill in W, RequestRetention, and MaximumInterval
// yourself and validate with NewEngine.
type Parameters struct {
	// W holds the 17 FSRS weights. Must have length 17.
	W []float64 `json:"w"`
	// RequestRetention is the target recall probability at the next due
	// instant, in (0, 1).
	RequestRetention float64 `json:"request_retention"`
	// MaximumInterval caps the number of days nextInterval may return.
	MaximumInterval int `json:"maximum_interval"`

	// The fields below are accepted and round-tripped for configuration
	// fidelity but are never consulted by the scheduling arithmetic.
	// Short-term intervals are hard-coded in scheduler.go.
	LearningSteps   []int `json:"learning_steps,omitempty"`   // minutes
	RelearningSteps []int `json:"relearning_steps,omitempty"` // minutes
	EnableFuzzing   bool  `json:"enable_fuzzing,omitempty"`
}

// DefaultParameters returns the canonical default configuration:
// RequestRetention 0.90, MaximumInterval 36500, W = DefaultWeights.
func DefaultParameters() Parameters {
	w := make([]float64, numWeights)
	copy(w, DefaultWeights[:])
	return Parameters{
		W:                w,
		RequestRetention: 0.90,
		MaximumInterval:  36500,
		LearningSteps:    []int{1, 10},
		RelearningSteps:  []int{10},
	}
}

// validate checks that p is in range for use by an Engine.
func (p Parameters) validate() error {
	if len(p.W) != numWeights {
		return fmt.Errorf("%w: weights must have length %d, got %d", ErrInvalidParameters, numWeights, len(p.W))
	}
	if p.RequestRetention <= 0 || p.RequestRetention >= 1 {
		return fmt.Errorf("%w: request retention %f must be in (0, 1)", ErrInvalidParameters, p.RequestRetention)
	}
	if p.MaximumInterval < 1 {
		return fmt.Errorf("%w: maximum interval %d must be >= 1", ErrInvalidParameters, p.MaximumInterval)
	}
	return nil
}
