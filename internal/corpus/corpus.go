package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Corpus is the read-only candidate pool for a matching run. It is loaded
// once and never mutated afterwards.
type Corpus struct {
	candidates []*Candidate
}

// record mirrors the dataset JSON. Legacy datasets carry experience as a
// range string ("3-5", "5+") and location as an array, so both fields
// decode through tolerant wrappers.
type record struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Skills          []string      `json:"skills"`
	ExperienceYears yearsValue    `json:"experience_years"`
	Seniority       string        `json:"seniority"`
	EmploymentType  string        `json:"employment_type"`
	Location        locationValue `json:"location"`
	Education       []string      `json:"education"`
	Certifications  []string      `json:"certifications"`
}

// yearsValue decodes experience as a JSON number or a range string,
// degrading anything unusable to zero.
type yearsValue struct {
	years float64
}

func (y *yearsValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num > 0 {
			y.years = num
		}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if years, err := ParseExperienceYears(raw); err == nil {
		y.years = years
	}
	return nil
}

type locationValue struct {
	primary string
}

func (l *locationValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		l.primary = single
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return nil
	}
	if len(many) > 0 {
		l.primary = many[0]
	}
	return nil
}

// Load reads the dataset file and builds the corpus. Malformed records are
// skipped with a warning instead of aborting the whole run.
func Load(path string, logger *zap.Logger) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing dataset %q: %w", path, err)
	}

	return fromRecords(records, logger), nil
}

func fromRecords(records []record, logger *zap.Logger) *Corpus {
	if logger == nil {
		logger = zap.NewNop()
	}

	candidates := make([]*Candidate, 0, len(records))
	for idx, rec := range records {
		candidate, err := rec.toCandidate(idx)
		if err != nil {
			logger.Warn("skipping malformed candidate record",
				zap.Int("index", idx),
				zap.String("name", rec.Name),
				zap.Error(err),
			)
			continue
		}
		candidates = append(candidates, candidate)
	}

	return &Corpus{candidates: candidates}
}

func (r record) toCandidate(idx int) (*Candidate, error) {
	if r.Name == "" {
		return nil, errors.New("missing name")
	}

	skills := NormalizeSkills(r.Skills)
	if len(skills) == 0 {
		return nil, errors.New("no skills")
	}

	id := r.ID
	if id == "" {
		// Legacy datasets have no ids. Positions are stable since the
		// file is read once and never reordered.
		id = strconv.Itoa(idx + 1)
	}

	seniority, err := ParseSeniority(r.Seniority)
	if err != nil {
		seniority = SeniorityUnknown
	}
	employment, err := ParseEmploymentType(r.EmploymentType)
	if err != nil {
		employment = EmploymentUnknown
	}

	return &Candidate{
		ID:              id,
		Name:            r.Name,
		Skills:          skills,
		ExperienceYears: r.ExperienceYears.years,
		Seniority:       seniority,
		EmploymentType:  employment,
		Location:        r.Location.primary,
		Education:       r.Education,
		Certifications:  r.Certifications,
	}, nil
}

// UnmarshalCandidate decodes a single dataset-shaped record, tolerating
// the same legacy quirks the loader does (experience as a range string,
// location as an array).
func UnmarshalCandidate(data []byte) (*Candidate, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing candidate record: %w", err)
	}
	return rec.toCandidate(0)
}

// FromCandidates wraps an already built candidate list.
func FromCandidates(candidates []*Candidate) *Corpus {
	return &Corpus{candidates: candidates}
}

func (c *Corpus) Len() int {
	return len(c.candidates)
}

// Candidates returns a fresh slice so callers cannot reorder the pool the
// corpus owns. The pointed-to records stay shared and must not be mutated.
func (c *Corpus) Candidates() []*Candidate {
	out := make([]*Candidate, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// SkillCount is one entry of a skill frequency report.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills returns the n most common skills across the corpus, most
// frequent first. Ties are broken alphabetically to keep reports stable.
func (c *Corpus) TopSkills(n int) []SkillCount {
	counts := make(map[string]int)
	for _, candidate := range c.candidates {
		for _, skill := range candidate.Skills {
			counts[skill]++
		}
	}

	result := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		result = append(result, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Skill < result[j].Skill
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// SkillsBySeniority returns the most common skills among candidates of the
// given seniority.
func (c *Corpus) SkillsBySeniority(seniority Seniority, n int) []SkillCount {
	filtered := make([]*Candidate, 0)
	for _, candidate := range c.candidates {
		if candidate.Seniority == seniority {
			filtered = append(filtered, candidate)
		}
	}
	return FromCandidates(filtered).TopSkills(n)
}

func (c *Corpus) SeniorityDistribution() map[string]int {
	dist := make(map[string]int)
	for _, candidate := range c.candidates {
		dist[candidate.Seniority.String()]++
	}
	return dist
}

func (c *Corpus) EmploymentTypeDistribution() map[string]int {
	dist := make(map[string]int)
	for _, candidate := range c.candidates {
		dist[candidate.EmploymentType.String()]++
	}
	return dist
}

// ExperienceDistribution buckets candidates by whole years of experience.
func (c *Corpus) ExperienceDistribution() map[string]int {
	dist := make(map[string]int)
	for _, candidate := range c.candidates {
		years := int(candidate.ExperienceYears)
		var bucket string
		switch {
		case years < 3:
			bucket = "0-2"
		case years < 5:
			bucket = "3-4"
		case years < 10:
			bucket = "5-9"
		default:
			bucket = "10+"
		}
		dist[bucket]++
	}
	return dist
}
