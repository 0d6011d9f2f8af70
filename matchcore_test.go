package matchcore

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_EndToEnd(t *testing.T) {
	document := []byte(`{
		"jd": {
			"job_title": {"text": "Data Engineer", "embedding": [1, 0, 0]},
			"years_required": 5,
			"skills": [
				{"text": "Python", "embedding": [1, 0, 0]},
				{"text": "SQL", "embedding": [0, 1, 0]},
				{"text": "AWS", "embedding": [0, 0, 1]}
			]
		},
		"candidates": [
			{
				"candidate_id": "cv-1",
				"candidate_name": "Sam",
				"job_title": {"text": "Data Engineer", "embedding": [1, 0, 0]},
				"years_experience": 7,
				"skills": [
					{"text": "Python programming", "embedding": [0.95, 0.3, 0]},
					{"text": "SQL queries", "embedding": [0.2, 0.97, 0]}
				]
			},
			{
				"candidate_id": "cv-2",
				"job_title": {"text": "Gardener", "embedding": [0, 0.3, 0.95]},
				"skills": [
					{"text": "Pruning", "embedding": [0, 0.1, 0.99]}
				]
			}
		]
	}`)

	require.NoError(t, ValidateRequestDocument(document))

	var req MatchRequest
	require.NoError(t, json.Unmarshal(document, &req))

	engine := New(DefaultConfig(), nil)
	result, err := engine.Match(context.Background(), &req)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "cv-1", result.Candidates[0].CandidateID)
	assert.Equal(t, "cv-2", result.Candidates[1].CandidateID)
	assert.Greater(t, result.Candidates[0].OverallScore, result.Candidates[1].OverallScore)
	assert.Empty(t, result.Failed)

	// Serialized results never carry embeddings.
	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "embedding")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(result)
	assert.Contains(t, buf.String(), "Data Engineer")
}

func TestEngine_RejectsUnknownFieldsAtBoundary(t *testing.T) {
	document := []byte(`{
		"jd": {"job_title": {"text": "x", "embedding": [1]}},
		"candidates": [{"candidate_id": "1", "job_title": {"text": "y", "embedding": [1]}}],
		"llm_raw_payload": {"surprise": true}
	}`)

	assert.Error(t, ValidateRequestDocument(document))
}
