package matching

import (
	"github.com/recruiterlab/talentmatch/internal/corpus"
)

// ScoreBreakdown holds the per-dimension scores for one candidate. Every
// dimension and the weighted total live in [0, 1].
type ScoreBreakdown struct {
	RequiredMatchRatio  float64 `json:"required_match_ratio"`
	PreferredMatchRatio float64 `json:"preferred_match_ratio"`
	ExperienceScore     float64 `json:"experience_score"`
	SeniorityScore      float64 `json:"seniority_score"`
	TotalScore          float64 `json:"total_score"`
}

// Scorer computes compatibility scores with a fixed weight configuration.
// Scoring is a pure function of candidate and request: no randomness, no
// clock, no external calls.
type Scorer struct {
	weights Weights
}

// NewScorer validates the supplied weights and returns a scorer using
// them. Zero-value weights fall back to the defaults.
func NewScorer(weights Weights) (*Scorer, error) {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if err := weights.validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// Score computes the breakdown for a single candidate. The request must
// have passed Validate.
func (s *Scorer) Score(candidate *corpus.Candidate, req *Request) ScoreBreakdown {
	skills := skillSet(candidate.Skills)

	breakdown := ScoreBreakdown{
		RequiredMatchRatio:  matchRatio(skills, req.RequiredSkills),
		PreferredMatchRatio: matchRatio(skills, req.PreferredSkills),
		ExperienceScore:     experienceScore(candidate.ExperienceYears, req.minExperience),
		SeniorityScore:      seniorityScore(candidate.Seniority, req),
	}

	weights := s.weights.normalized(len(req.PreferredSkills) > 0)
	total := weights.Required*breakdown.RequiredMatchRatio +
		weights.Preferred*breakdown.PreferredMatchRatio +
		weights.Experience*breakdown.ExperienceScore +
		weights.Seniority*breakdown.SeniorityScore

	breakdown.TotalScore = clamp01(total)
	return breakdown
}

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[corpus.NormalizeSkill(skill)] = struct{}{}
	}
	return set
}

func matchRatio(skills map[string]struct{}, wanted []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matched := 0
	for _, skill := range wanted {
		if _, ok := skills[skill]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

// experienceScore rewards meeting the bar but caps at 1.0 so arbitrarily
// long careers do not dominate the total.
func experienceScore(years, minYears float64) float64 {
	if minYears <= 0 {
		return 1
	}
	if minYears < 1 {
		minYears = 1
	}
	score := years / minYears
	if score > 1 {
		return 1
	}
	return score
}

// seniorityScore grants full credit on an exact match and half credit when
// the request leaves seniority unspecified, so the dimension stays neutral
// rather than dominating.
func seniorityScore(candidate corpus.Seniority, req *Request) float64 {
	if !req.hasSeniority {
		return 0.5
	}
	if candidate == req.seniority {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
