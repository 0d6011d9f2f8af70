// Package matching orchestrates similarity scoring and optimal assignment for
// one category of JD/CV items (skills, responsibilities).
package matching

import (
	"sort"

	"github.com/talentmatch/matchcore/internal/assignment"
	"github.com/talentmatch/matchcore/internal/similarity"
	"github.com/talentmatch/matchcore/internal/types"
)

// Options controls how one category is matched.
type Options struct {
	// Threshold is the minimum assignment score that counts as a match.
	// Category-specific: skills and responsibilities carry different values.
	Threshold float64
	// TopAlternatives is the number of near-miss CV items reported per JD
	// item. Zero or negative disables alternatives.
	TopAlternatives int
}

// MatchCategory computes the optimal one-to-one assignment between JD
// requirements and CV evidence for one category, the threshold-gated match
// percentage, and the top-k alternatives per JD item.
//
// An empty JD list is trivially satisfied (match percentage 100); an empty CV
// list satisfies nothing (match percentage 0 unless nothing was required). A
// malformed embedding on either side degrades that pair's benefit to 0
// instead of aborting the category.
func MatchCategory(jd, cv types.CategorySet, opts Options) types.CategoryResult {
	result := types.CategoryResult{
		Assignments:   []types.AssignmentItem{},
		Alternatives:  []types.AlternativesItem{},
		TotalRequired: len(jd),
	}

	if len(jd) == 0 {
		// Nothing required is trivially satisfied.
		result.MatchPercentage = 100
		return result
	}
	if len(cv) == 0 {
		result.MissingItems = jd.Texts()
		return result
	}

	benefit := buildBenefitMatrix(jd, cv)
	pairs := assignment.Solve(benefit)

	assignedCV := make(map[int]int, len(pairs)) // jd index -> assigned cv index
	matchedJD := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		score := benefit[p.Row][p.Col]
		result.Assignments = append(result.Assignments, types.AssignmentItem{
			JDIndex: p.Row,
			CVIndex: p.Col,
			JDItem:  jd[p.Row].Text,
			CVItem:  cv[p.Col].Text,
			Score:   score,
		})
		assignedCV[p.Row] = p.Col
		if score >= opts.Threshold {
			result.MatchedCount++
			matchedJD[p.Row] = true
		}
	}

	for jdIdx := range jd {
		if !matchedJD[jdIdx] {
			result.MissingItems = append(result.MissingItems, jd[jdIdx].Text)
		}

		alternatives := collectAlternatives(benefit[jdIdx], cv, assignedCV, jdIdx, opts.TopAlternatives)
		if len(alternatives) > 0 {
			result.Alternatives = append(result.Alternatives, types.AlternativesItem{
				JDIndex: jdIdx,
				Items:   alternatives,
			})
		}
	}

	result.MatchPercentage = float64(result.MatchedCount) / float64(result.TotalRequired) * 100
	return result
}

// buildBenefitMatrix scores every (JD, CV) item pair. Each cell is
// independent; a dimension mismatch on a single pair is recovered locally as
// zero benefit.
func buildBenefitMatrix(jd, cv types.CategorySet) [][]float64 {
	benefit := make([][]float64, len(jd))
	for i := range jd {
		row := make([]float64, len(cv))
		for j := range cv {
			score, err := similarity.Cosine(jd[i].Embedding, cv[j].Embedding)
			if err != nil {
				score = 0
			}
			row[j] = score
		}
		benefit[i] = row
	}
	return benefit
}

// rankRow returns CV indices sorted descending by score, stable by index so
// equal scores keep input order.
func rankRow(row []float64) []int {
	ranked := make([]int, len(row))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return row[ranked[a]] > row[ranked[b]]
	})
	return ranked
}

// collectAlternatives ranks one benefit-matrix row once and takes the top-k
// entries, skipping the CV item already chosen for this JD index by the
// optimal assignment. Reusing the full ranked row keeps the alternatives view
// consistent with the assignment instead of re-filtering ad hoc.
func collectAlternatives(row []float64, cv types.CategorySet, assignedCV map[int]int, jdIdx, k int) []types.AlternativeMatch {
	if k <= 0 {
		return nil
	}

	chosen, hasChosen := assignedCV[jdIdx]
	items := make([]types.AlternativeMatch, 0, k)
	for _, cvIdx := range rankRow(row) {
		if hasChosen && cvIdx == chosen {
			continue
		}
		items = append(items, types.AlternativeMatch{
			CVItem:  cv[cvIdx].Text,
			CVIndex: cvIdx,
			Score:   row[cvIdx],
		})
		if len(items) == k {
			break
		}
	}
	return items
}
