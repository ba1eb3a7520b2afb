package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "no required skills",
			req:     &Request{},
			wantErr: ErrNoRequiredSkills,
		},
		{
			name:    "required skills normalize to empty",
			req:     &Request{RequiredSkills: []string{"  ", ""}},
			wantErr: ErrNoRequiredSkills,
		},
		{
			name:    "negative top n",
			req:     &Request{RequiredSkills: []string{"go"}, TopN: -1},
			wantErr: ErrInvalidTopN,
		},
		{
			name: "minimal valid",
			req:  &Request{RequiredSkills: []string{"go"}},
		},
		{
			name: "full valid",
			req: &Request{
				RequiredSkills:  []string{"go", "python"},
				PreferredSkills: []string{"rust"},
				Seniority:       "Mid-Level",
				Location:        "Berlin",
				EmploymentType:  "full-time",
				Experience:      "3-5 years",
				TopN:            25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequestValidateRejectsBadEnums(t *testing.T) {
	assert.Error(t, (&Request{RequiredSkills: []string{"go"}, Seniority: "archmage"}).Validate())
	assert.Error(t, (&Request{RequiredSkills: []string{"go"}, EmploymentType: "gig"}).Validate())
	assert.Error(t, (&Request{RequiredSkills: []string{"go"}, Experience: "lots"}).Validate())
}

func TestRequestValidateNormalizes(t *testing.T) {
	req := &Request{
		RequiredSkills:  []string{" Go ", "go", "PYTHON"},
		PreferredSkills: []string{"Rust", "rust"},
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, []string{"go", "python"}, req.RequiredSkills)
	assert.Equal(t, []string{"rust"}, req.PreferredSkills)
	assert.Equal(t, defaultTopN, req.TopN)
}

func TestRequestValidateResolvesExperience(t *testing.T) {
	req := &Request{RequiredSkills: []string{"go"}, Experience: "5+"}
	require.NoError(t, req.Validate())
	assert.Equal(t, 5.0, req.MinExperienceYears())

	absent := &Request{RequiredSkills: []string{"go"}}
	require.NoError(t, absent.Validate())
	assert.Equal(t, 0.0, absent.MinExperienceYears())
}
