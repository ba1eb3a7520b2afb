package gemini

import (
	"context"
	"reflect"
	"testing"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

func TestProfileExtractorExtract(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + `{
		"name": "Jane Doe",
		"skills": ["Go", "PostgreSQL"],
		"experience_years": "3-5",
		"seniority": "mid-level",
		"location": ["Berlin", "Remote"]
	}` + "\n```"}

	extractor := NewProfileExtractor(stub, nil, 0)

	candidate, err := extractor.Extract(context.Background(), "Jane Doe\nGo developer, Berlin...")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if candidate.Name != "Jane Doe" {
		t.Errorf("name = %q", candidate.Name)
	}
	if !reflect.DeepEqual(candidate.Skills, []string{"go", "postgresql"}) {
		t.Errorf("skills = %v", candidate.Skills)
	}
	if candidate.ExperienceYears != 3 {
		t.Errorf("experience = %v, want 3", candidate.ExperienceYears)
	}
	if candidate.Seniority != corpus.SeniorityMid {
		t.Errorf("seniority = %v", candidate.Seniority)
	}
	if candidate.Location != "Berlin" {
		t.Errorf("location = %q", candidate.Location)
	}
	if candidate.ID == "" {
		t.Error("extracted profile must get a fresh id")
	}
}

func TestProfileExtractorEmptyText(t *testing.T) {
	extractor := NewProfileExtractor(&stubGenerator{}, nil, 0)
	if _, err := extractor.Extract(context.Background(), " \n "); err == nil {
		t.Error("expected an error for empty resume text")
	}
}

func TestProfileExtractorIncompleteProfile(t *testing.T) {
	// A profile without a name cannot enter the dataset.
	stub := &stubGenerator{response: `{"skills": ["go"]}`}
	extractor := NewProfileExtractor(stub, nil, 0)
	if _, err := extractor.Extract(context.Background(), "resume"); err == nil {
		t.Error("expected an error for a nameless profile")
	}
}
