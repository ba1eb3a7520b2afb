package matching

import (
	"sort"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

// SkillGap lists the requested skills a candidate lacks. It feeds both the
// score report and downstream interview question generation.
type SkillGap struct {
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`
}

// analyzeGaps computes the set difference between the request's skills and
// the candidate's, on the same normalized form the scorer uses. The
// returned slices are sorted so output is reproducible.
func analyzeGaps(candidate *corpus.Candidate, req *Request) SkillGap {
	skills := skillSet(candidate.Skills)
	return SkillGap{
		MissingRequired:  missingFrom(skills, req.RequiredSkills),
		MissingPreferred: missingFrom(skills, req.PreferredSkills),
	}
}

func missingFrom(skills map[string]struct{}, wanted []string) []string {
	missing := make([]string, 0)
	for _, skill := range wanted {
		if _, ok := skills[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}

// Empty reports whether the candidate covers every requested skill.
func (g SkillGap) Empty() bool {
	return len(g.MissingRequired) == 0 && len(g.MissingPreferred) == 0
}
