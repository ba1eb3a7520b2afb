package matching

import "sort"

// rankCandidates orders the scored pool into a total order: descending
// total score, ties broken by higher experience, then by smaller id and
// name. Truncation to topN happens only after the full sort so the cut
// never biases the score distribution.
func rankCandidates(scored []*ScoredCandidate, topN int) []*ScoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score.TotalScore != b.Score.TotalScore {
			return a.Score.TotalScore > b.Score.TotalScore
		}
		if a.Candidate.ExperienceYears != b.Candidate.ExperienceYears {
			return a.Candidate.ExperienceYears > b.Candidate.ExperienceYears
		}
		if a.Candidate.ID != b.Candidate.ID {
			return a.Candidate.ID < b.Candidate.ID
		}
		return a.Candidate.Name < b.Candidate.Name
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
