package extraction

import (
	"strings"

	"github.com/mikael/cv-tailor/internal/types"
)

// skillSynonyms maps common skill name variants to canonical names.
// Lookup keys are lowercase; values are the canonical display form.
var skillSynonyms = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"py":                  "Python",
	"python3":             "Python",
	"k8s":                 "Kubernetes",
	"kubernetes":          "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue.js":              "Vue",
	"vuejs":               "Vue",
	"node.js":             "Node.js",
	"nodejs":              "Node.js",
	"node":                "Node.js",
	"postgres":            "PostgreSQL",
	"postgresql":          "PostgreSQL",
	"psql":                "PostgreSQL",
	"mongo":               "MongoDB",
	"mongodb":             "MongoDB",
	"aws":                 "AWS",
	"amazon web services": "AWS",
	"gcp":                 "GCP",
	"google cloud":        "GCP",
	"c sharp":             "C#",
	"csharp":              "C#",
	"c plus plus":         "C++",
	"cpp":                 "C++",
	"ci/cd":               "CI/CD",
	"cicd":                "CI/CD",
	"ml":                  "Machine Learning",
	"machine learning":    "Machine Learning",
	"tf":                  "Terraform",
	"terraform":           "Terraform",
	"docker":              "Docker",
	"rest":                "REST",
	"restful":             "REST",
	"graphql":             "GraphQL",
	"sql":                 "SQL",
}

// acronyms that stay uppercase when title-casing single words.
var knownAcronyms = map[string]bool{
	"AWS": true, "GCP": true, "SQL": true, "API": true, "ETL": true,
	"CSS": true, "HTML": true, "PHP": true, "REST": true, "GRPC": true,
}

// NormalizeSkillName collapses a skill name to its canonical form so that
// posting variants ("JS", "golang") match profile entries ("JavaScript", "Go").
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillSynonyms[lower]; ok {
		return canonical
	}

	upper := strings.ToUpper(normalized)
	if knownAcronyms[upper] {
		return upper
	}

	// Single all-lowercase or all-uppercase words get first-letter capitalization.
	if !strings.Contains(normalized, " ") &&
		(normalized == lower || normalized == upper) {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// Mixed case already, keep as provided.
	return normalized
}

// NormalizeSkills normalizes and deduplicates skill requirements, merging
// duplicates onto the highest importance seen.
func NormalizeSkills(reqs []types.SkillRequirement) []types.SkillRequirement {
	if len(reqs) == 0 {
		return reqs
	}

	normalized := make([]types.SkillRequirement, 0, len(reqs))
	seen := make(map[string]int) // canonical name -> index in normalized

	for _, req := range reqs {
		name := NormalizeSkillName(req.Skill)
		if name == "" {
			continue
		}

		if idx, exists := seen[name]; exists {
			if importanceRank(req.Importance) > importanceRank(normalized[idx].Importance) {
				normalized[idx].Importance = req.Importance
			}
			if normalized[idx].Evidence == "" {
				normalized[idx].Evidence = req.Evidence
			}
			continue
		}

		imp := req.Importance
		if !imp.Valid() {
			imp = types.ImportanceImplied
		}
		normalized = append(normalized, types.SkillRequirement{
			Skill:      name,
			Importance: imp,
			Evidence:   req.Evidence,
		})
		seen[name] = len(normalized) - 1
	}

	return normalized
}

// NormalizeKeywords lowercases, trims, and deduplicates ATS keywords,
// preserving first-seen order.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool)
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func importanceRank(imp types.Importance) int {
	switch imp {
	case types.ImportanceRequired:
		return 3
	case types.ImportancePreferred:
		return 2
	case types.ImportanceImplied:
		return 1
	default:
		return 0
	}
}
