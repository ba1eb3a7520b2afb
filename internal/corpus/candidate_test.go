package corpus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeniority(t *testing.T) {
	tests := []struct {
		in   string
		want Seniority
	}{
		{"junior", SeniorityJunior},
		{"Mid-Level", SeniorityMid},
		{"midlevel", SeniorityMid},
		{"mid", SeniorityMid},
		{" SENIOR ", SenioritySenior},
		{"lead", SeniorityLead},
		{"principal", SeniorityPrincipal},
	}

	for _, tt := range tests {
		got, err := ParseSeniority(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSeniority("intern")
	assert.Error(t, err)
}

func TestSeniorityAtLeast(t *testing.T) {
	assert.True(t, SenioritySenior.AtLeast(SeniorityMid))
	assert.True(t, SenioritySenior.AtLeast(SenioritySenior))
	assert.False(t, SeniorityJunior.AtLeast(SeniorityMid))
}

func TestSeniorityJSON(t *testing.T) {
	data, err := json.Marshal(SeniorityLead)
	require.NoError(t, err)
	assert.Equal(t, `"lead"`, string(data))

	var s Seniority
	require.NoError(t, json.Unmarshal([]byte(`"senior"`), &s))
	assert.Equal(t, SenioritySenior, s)

	// Unrecognized levels degrade to unknown instead of failing the record.
	require.NoError(t, json.Unmarshal([]byte(`"ninja"`), &s))
	assert.Equal(t, SeniorityUnknown, s)
}

func TestParseEmploymentType(t *testing.T) {
	tests := []struct {
		in   string
		want EmploymentType
	}{
		{"full-time", EmploymentFullTime},
		{"Full Time", EmploymentFullTime},
		{"parttime", EmploymentPartTime},
		{"contract", EmploymentContract},
		{"freelance", EmploymentFreelance},
	}

	for _, tt := range tests {
		got, err := ParseEmploymentType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseEmploymentType("gig")
	assert.Error(t, err)
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Go ", "go", "", "  ", "Python", "PYTHON", "SQL"})
	assert.Equal(t, []string{"go", "python", "sql"}, got)

	assert.Empty(t, NormalizeSkills(nil))
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"3", 3, false},
		{"2.5", 2.5, false},
		{"3-5", 3, false},
		{"5+", 5, false},
		{"10+ years", 10, false},
		{"4 yrs", 4, false},
		{"1 year", 1, false},
		{"soon", 0, true},
		{"-2", 0, true},
		{"three-5", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseExperienceYears(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
