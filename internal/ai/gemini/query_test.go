package gemini

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestQueryParserParse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + `{
		"required_skills": ["Python", "Django"],
		"preferred_skills": ["AWS"],
		"seniority": "senior",
		"location": "Remote",
		"experience_years": "5+",
		"top_n": 5
	}` + "\n```"}

	parser := NewQueryParser(stub, nil, 0)

	req, err := parser.Parse(context.Background(), "senior python developer with django, remote, 5+ years")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !reflect.DeepEqual(req.RequiredSkills, []string{"Python", "Django"}) {
		t.Errorf("required skills = %v", req.RequiredSkills)
	}
	if req.Seniority != "senior" || req.Location != "Remote" {
		t.Errorf("unexpected criteria: %+v", req)
	}
	if req.TopN != 5 {
		t.Errorf("top_n = %d, want 5", req.TopN)
	}
	if !strings.Contains(stub.prompt, "senior python developer") {
		t.Error("query was not substituted into the prompt")
	}
}

func TestQueryParserWeakTyping(t *testing.T) {
	// Models occasionally send numbers as strings and vice versa.
	stub := &stubGenerator{response: `{"required_skills": ["go"], "top_n": "3"}`}

	req, err := NewQueryParser(stub, nil, 0).Parse(context.Background(), "go devs")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if req.TopN != 3 {
		t.Errorf("top_n = %d, want 3", req.TopN)
	}
}

func TestQueryParserEmptyQuery(t *testing.T) {
	parser := NewQueryParser(&stubGenerator{}, nil, 0)
	if _, err := parser.Parse(context.Background(), "   "); err == nil {
		t.Error("expected an error for an empty query")
	}
}

func TestQueryParserGeneratorError(t *testing.T) {
	parser := NewQueryParser(&stubGenerator{err: errStub}, nil, 0)
	if _, err := parser.Parse(context.Background(), "query"); err == nil {
		t.Error("expected the generator error to propagate")
	}
}

func TestQueryParserMalformedResponse(t *testing.T) {
	parser := NewQueryParser(&stubGenerator{response: "sorry, I cannot help"}, nil, 0)
	if _, err := parser.Parse(context.Background(), "query"); err == nil {
		t.Error("expected an error for a non-JSON response")
	}
}
