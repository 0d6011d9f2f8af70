package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *MatchRequest {
	return &MatchRequest{
		JD: JDBundle{
			JobTitle: TextItem{Text: "Backend Engineer", Embedding: []float64{0.1, 0.2}},
			Skills: CategorySet{
				{Text: "Go", Embedding: []float64{1, 0}},
			},
		},
		Candidates: []CVBundle{
			{
				CandidateID: "cv-1",
				JobTitle:    TextItem{Text: "Software Engineer", Embedding: []float64{0.2, 0.1}},
			},
		},
	}
}

func TestMatchRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestMatchRequest_ValidateNoCandidates(t *testing.T) {
	req := validRequest()
	req.Candidates = nil

	err := req.Validate()
	require.Error(t, err)
	var invalid *InvalidRequestError
	assert.ErrorAs(t, err, &invalid)
}

func TestMatchRequest_ValidateMissingJDTitle(t *testing.T) {
	req := validRequest()
	req.JD.JobTitle = TextItem{}

	err := req.Validate()
	assert.Error(t, err)
}

func TestMatchRequest_ValidateNegativeTopAlternatives(t *testing.T) {
	req := validRequest()
	k := -1
	req.TopAlternatives = &k

	err := req.Validate()
	assert.Error(t, err)
}

func TestCategorySet_Texts(t *testing.T) {
	cs := CategorySet{
		{Text: "Python", Embedding: []float64{1}},
		{Text: "SQL", Embedding: []float64{0}},
	}
	assert.Equal(t, []string{"Python", "SQL"}, cs.Texts())
	assert.Empty(t, CategorySet{}.Texts())
}
