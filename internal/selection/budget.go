// Package selection ranks scored knowledge-base entries into a bounded
// content budget for a target document.
package selection

import "github.com/mikael/cv-tailor/internal/types"

// Per-style content budgets. Minimal implies tighter caps than
// professional; detailed is the most permissive.
var styleBudgets = map[types.Style]types.ContentBudget{
	types.StyleMinimal: {
		MaxExperienceEntries: 3,
		MaxProjects:          2,
		MaxAchievements:      2,
		MaxSkills:            8,
		MaxCertifications:    2,
	},
	types.StyleProfessional: {
		MaxExperienceEntries: 5,
		MaxProjects:          3,
		MaxAchievements:      4,
		MaxSkills:            15,
		MaxCertifications:    4,
	},
	types.StyleDetailed: {
		MaxExperienceEntries: 8,
		MaxProjects:          5,
		MaxAchievements:      6,
		MaxSkills:            25,
		MaxCertifications:    6,
	},
}

// BudgetForStyle returns the content budget for a document style.
// Unknown styles fall back to the professional budget.
func BudgetForStyle(style types.Style) types.ContentBudget {
	if budget, ok := styleBudgets[style]; ok {
		return budget
	}
	return styleBudgets[types.StyleProfessional]
}
