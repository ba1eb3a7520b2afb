package matching

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

const defaultTopN = 10

var (
	// ErrNoRequiredSkills is returned when a request carries no required
	// skills after normalization.
	ErrNoRequiredSkills = errors.New("required skills must not be empty")
	// ErrInvalidTopN is returned for a negative top-n. Zero means "use the
	// default" and is not an error.
	ErrInvalidTopN = errors.New("top_n must be positive")
)

// Request describes one matching run: hard filters plus soft-weighted
// criteria. Seniority, location, employment type and experience are
// optional; an empty value means the corresponding filter is off.
type Request struct {
	RequiredSkills  []string `json:"required_skills" mapstructure:"required_skills" validate:"required,min=1"`
	PreferredSkills []string `json:"preferred_skills,omitempty" mapstructure:"preferred_skills"`
	Seniority       string   `json:"seniority,omitempty" mapstructure:"seniority"`
	Location        string   `json:"location,omitempty" mapstructure:"location"`
	EmploymentType  string   `json:"employment_type,omitempty" mapstructure:"employment_type"`
	Experience      string   `json:"experience_years,omitempty" mapstructure:"experience_years"`
	TopN            int      `json:"top_n,omitempty" mapstructure:"top_n"`

	// Resolved by Validate.
	seniority     corpus.Seniority
	hasSeniority  bool
	employment    corpus.EmploymentType
	hasEmployment bool
	minExperience float64
}

var validate = validator.New()

// Validate checks the request invariants and resolves the derived fields.
// It must succeed before the request enters the pipeline; afterwards the
// request is treated as read-only.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrNoRequiredSkills, err)
	}

	r.RequiredSkills = corpus.NormalizeSkills(r.RequiredSkills)
	if len(r.RequiredSkills) == 0 {
		return ErrNoRequiredSkills
	}
	r.PreferredSkills = corpus.NormalizeSkills(r.PreferredSkills)

	if r.TopN < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopN, r.TopN)
	}
	if r.TopN == 0 {
		r.TopN = defaultTopN
	}

	if r.Seniority != "" {
		seniority, err := corpus.ParseSeniority(r.Seniority)
		if err != nil {
			return err
		}
		r.seniority = seniority
		r.hasSeniority = true
	}

	if r.EmploymentType != "" {
		employment, err := corpus.ParseEmploymentType(r.EmploymentType)
		if err != nil {
			return err
		}
		r.employment = employment
		r.hasEmployment = true
	}

	minExperience, err := corpus.ParseExperienceYears(r.Experience)
	if err != nil {
		return err
	}
	r.minExperience = minExperience

	return nil
}

// MinExperienceYears returns the minimum experience derived by Validate.
func (r *Request) MinExperienceYears() float64 {
	return r.minExperience
}
