package matching

import "fmt"

// Weights are the relative importance of each scoring dimension. Only the
// ratio between them matters: the scorer renormalizes the set to sum to 1
// before applying it, so {5, 2, 2, 1} behaves exactly like the defaults.
type Weights struct {
	Required   float64 `json:"required" mapstructure:"required"`
	Preferred  float64 `json:"preferred" mapstructure:"preferred"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Seniority  float64 `json:"seniority" mapstructure:"seniority"`
}

// DefaultWeights returns the standard recruiter policy: required skills
// dominate, the rest refine.
func DefaultWeights() Weights {
	return Weights{
		Required:   0.5,
		Preferred:  0.2,
		Experience: 0.2,
		Seniority:  0.1,
	}
}

func (w Weights) validate() error {
	if w.Required < 0 || w.Preferred < 0 || w.Experience < 0 || w.Seniority < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	if w.sum() == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

func (w Weights) sum() float64 {
	return w.Required + w.Preferred + w.Experience + w.Seniority
}

// normalized scales the weights to sum to 1. When withPreferred is false
// the preferred dimension is removed and its share redistributed across
// the remaining dimensions.
func (w Weights) normalized(withPreferred bool) Weights {
	if !withPreferred {
		w.Preferred = 0
	}
	total := w.sum()
	if total == 0 {
		return w
	}
	return Weights{
		Required:   w.Required / total,
		Preferred:  w.Preferred / total,
		Experience: w.Experience / total,
		Seniority:  w.Seniority / total,
	}
}
