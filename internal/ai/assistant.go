package ai

import (
	"context"

	"github.com/recruiterlab/talentmatch/internal/corpus"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

// QueryParser turns a free-text recruiter query into a structured match
// request. The matching core treats its output as any other request and
// still applies full validation.
type QueryParser interface {
	Parse(ctx context.Context, query string) (*matching.Request, error)
}

// ProfileExtractor turns raw resume text into a candidate profile record.
// It never reads file bytes; text extraction happens upstream.
type ProfileExtractor interface {
	Extract(ctx context.Context, resumeText string) (*corpus.Candidate, error)
}

// Interviewer proposes interview questions probing a scored candidate's
// skill gaps against the original requirement.
type Interviewer interface {
	Questions(ctx context.Context, requirement string, scored *matching.ScoredCandidate) ([]string, error)
}

// Outreach composes a personalized outreach message for a scored candidate.
type Outreach interface {
	Compose(ctx context.Context, requirement string, scored *matching.ScoredCandidate) (string, error)
}

// CandidateReview summarizes one side of a CV comparison.
type CandidateReview struct {
	KeyStrengths []string `json:"key_strengths" mapstructure:"key_strengths"`
	RedFlags     []string `json:"red_flags" mapstructure:"red_flags"`
}

// Comparison is the structured outcome of weighing two CVs against a
// recruiter's criteria. BestCandidate is 1 or 2.
type Comparison struct {
	BestCandidate int             `json:"best_candidate" mapstructure:"best_candidate"`
	Reasoning     string          `json:"reasoning" mapstructure:"reasoning"`
	First         CandidateReview `json:"candidate_1_summary" mapstructure:"candidate_1_summary"`
	Second        CandidateReview `json:"candidate_2_summary" mapstructure:"candidate_2_summary"`
}

// Comparer recommends which of two resumes better fits a free-text
// requirement. Both resumes arrive as plain text, extracted upstream.
type Comparer interface {
	Compare(ctx context.Context, criteria, firstCV, secondCV string) (*Comparison, error)
}
