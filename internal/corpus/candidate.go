package corpus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Seniority is a closed, ordered career level. The ordering allows
// "at least this senior" comparisons even though current filtering is
// exact-match only.
type Seniority int

const (
	SeniorityUnknown Seniority = iota
	SeniorityJunior
	SeniorityMid
	SenioritySenior
	SeniorityLead
	SeniorityPrincipal
)

// EmploymentType is a closed employment arrangement variant.
type EmploymentType int

const (
	EmploymentUnknown EmploymentType = iota
	EmploymentFullTime
	EmploymentPartTime
	EmploymentContract
	EmploymentFreelance
)

// Candidate is a single immutable profile record. Education and
// certifications are informational only and never scored.
type Candidate struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Skills          []string       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	Seniority       Seniority      `json:"seniority"`
	EmploymentType  EmploymentType `json:"employment_type"`
	Location        string         `json:"location,omitempty"`
	Education       []string       `json:"education,omitempty"`
	Certifications  []string       `json:"certifications,omitempty"`
}

func ParseSeniority(s string) (Seniority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return SeniorityJunior, nil
	case "mid-level", "midlevel", "mid":
		return SeniorityMid, nil
	case "senior":
		return SenioritySenior, nil
	case "lead":
		return SeniorityLead, nil
	case "principal":
		return SeniorityPrincipal, nil
	}
	return SeniorityUnknown, fmt.Errorf("unknown seniority: %q", s)
}

func (s Seniority) String() string {
	switch s {
	case SeniorityJunior:
		return "junior"
	case SeniorityMid:
		return "mid-level"
	case SenioritySenior:
		return "senior"
	case SeniorityLead:
		return "lead"
	case SeniorityPrincipal:
		return "principal"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is the same level as other or above it.
func (s Seniority) AtLeast(other Seniority) bool {
	return s >= other
}

func (s Seniority) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Seniority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*s = SeniorityUnknown
		return nil
	}
	parsed, err := ParseSeniority(raw)
	if err != nil {
		*s = SeniorityUnknown
		return nil
	}
	*s = parsed
	return nil
}

func ParseEmploymentType(s string) (EmploymentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full-time", "fulltime", "full time":
		return EmploymentFullTime, nil
	case "part-time", "parttime", "part time":
		return EmploymentPartTime, nil
	case "contract":
		return EmploymentContract, nil
	case "freelance":
		return EmploymentFreelance, nil
	}
	return EmploymentUnknown, fmt.Errorf("unknown employment type: %q", s)
}

func (e EmploymentType) String() string {
	switch e {
	case EmploymentFullTime:
		return "full-time"
	case EmploymentPartTime:
		return "part-time"
	case EmploymentContract:
		return "contract"
	case EmploymentFreelance:
		return "freelance"
	default:
		return "unknown"
	}
}

func (e EmploymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *EmploymentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*e = EmploymentUnknown
		return nil
	}
	parsed, err := ParseEmploymentType(raw)
	if err != nil {
		*e = EmploymentUnknown
		return nil
	}
	*e = parsed
	return nil
}

// NormalizeSkill brings a skill token to its canonical comparison form.
// Scoring and gap analysis must both use this function so that a skill
// counted as matched can never show up as missing.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills normalizes and deduplicates the provided tokens while
// preserving their first-seen order. Empty tokens are dropped.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		norm := NormalizeSkill(skill)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		result = append(result, norm)
	}
	return result
}
