package ranking

import (
	"fmt"
	"strings"

	"github.com/talentmatch/matchcore/internal/scoring"
	"github.com/talentmatch/matchcore/internal/types"
)

// buildNotes creates a brief explanation of one candidate's breakdown.
func buildNotes(skills, responsibilities types.CategoryResult, titleScore, yearsScore float64) string {
	var parts []string

	parts = append(parts, describeCategory("skills", skills))
	parts = append(parts, describeCategory("responsibilities", responsibilities))

	if titleScore >= 0.8 {
		parts = append(parts, "Close job title alignment")
	} else if titleScore >= 0.5 {
		parts = append(parts, "Partial job title alignment")
	} else {
		parts = append(parts, "Weak job title alignment")
	}

	if yearsScore >= scoring.ExperienceMet {
		parts = append(parts, "Meets experience requirement")
	} else {
		parts = append(parts, "Below required experience")
	}

	return strings.Join(parts, ". ")
}

// describeCategory summarizes how well one category was covered.
func describeCategory(name string, result types.CategoryResult) string {
	if result.TotalRequired == 0 {
		return fmt.Sprintf("No %s required", name)
	}

	coverage := fmt.Sprintf("%d of %d", result.MatchedCount, result.TotalRequired)
	switch {
	case result.MatchPercentage >= 70:
		return fmt.Sprintf("Strong %s match (%s requirements)", name, coverage)
	case result.MatchPercentage >= 40:
		return fmt.Sprintf("Moderate %s match (%s requirements)", name, coverage)
	case result.MatchPercentage > 0:
		return fmt.Sprintf("Weak %s match (%s requirements)", name, coverage)
	default:
		return fmt.Sprintf("No %s matches (0 of %d requirements)", name, result.TotalRequired)
	}
}
