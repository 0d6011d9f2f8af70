package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentmatch/matchcore/internal/types"
)

func sampleResult() *types.MatchResult {
	years := 5.0
	return &types.MatchResult{
		JDJobTitle: "Backend Engineer",
		JDYears:    &years,
		Candidates: []types.CandidateBreakdown{
			{
				CandidateID:   "cv-1",
				CandidateName: "Sam",
				OverallScore:  0.81,
				SkillsScore:   0.9,
				Skills: types.CategoryResult{
					MatchedCount:  9,
					TotalRequired: 10,
					MissingItems:  []string{"Terraform"},
				},
				Notes: "Strong skills match (9 of 10 requirements)",
			},
			{
				CandidateID:  "cv-2",
				OverallScore: 0.58,
			},
		},
		Failed: []types.FailedCandidate{
			{CandidateID: "cv-3", Reason: "candidate has no scorable evidence"},
		},
	}
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "2 ranked, 1 failed")
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "81.0%")
	assert.Contains(t, out, "cv-2")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCandidate(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()
	NewPrinter(&buf).PrintCandidate(&result.Candidates[0])

	out := buf.String()
	assert.Contains(t, out, "Sam")
	assert.Contains(t, out, "Missing skills:")
	assert.Contains(t, out, "Terraform")
	assert.Contains(t, out, "Strong skills match")
}

func TestPrintAssignments(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAssignments("Skills", &types.CategoryResult{
		Assignments: []types.AssignmentItem{
			{JDItem: "Python", CVItem: "Python programming", Score: 0.95},
		},
		Alternatives: []types.AlternativesItem{
			{JDIndex: 0, Items: []types.AlternativeMatch{{CVItem: "Java", Score: 0.41}}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Python -> Python programming")
	assert.Contains(t, out, "Java")
}
