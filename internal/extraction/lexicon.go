package extraction

import "strings"

// skillLexicon lists skill names recognized by the heuristic extractor,
// beyond the synonym table. Matching is case-insensitive on token and
// token-bigram boundaries, so "machine learning" matches but "golfing"
// never matches "Go".
var skillLexicon = []string{
	// Languages
	"Go", "Python", "Java", "JavaScript", "TypeScript", "C", "C++", "C#",
	"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "Elixir", "Haskell",
	"Perl", "R", "SQL", "Bash",
	// Frameworks and libraries
	"React", "Vue", "Angular", "Svelte", "Node.js", "Express", "Django",
	"Flask", "FastAPI", "Rails", "Spring", "Spring Boot", ".NET", "Laravel",
	"Next.js", "PyTorch", "TensorFlow", "Pandas", "NumPy",
	// Infrastructure and tooling
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git",
	"Linux", "CI/CD", "gRPC", "REST", "GraphQL", "Kafka", "RabbitMQ",
	"Spark", "Hadoop", "Airflow", "Prometheus", "Grafana",
	// Datastores
	"PostgreSQL", "MySQL", "SQLite", "MongoDB", "Redis", "Elasticsearch",
	"DynamoDB", "Cassandra",
	// Cloud
	"AWS", "GCP", "Azure",
	// Practices
	"Machine Learning", "Microservices", "Agile", "Scrum", "TDD", "DevOps",
}

// lexiconLookup maps lowercase lexemes (including synonym variants) to
// canonical names. Built once at init.
var lexiconLookup = buildLexiconLookup()

func buildLexiconLookup() map[string]string {
	lookup := make(map[string]string, len(skillLexicon)+len(skillSynonyms))
	for _, name := range skillLexicon {
		lookup[strings.ToLower(name)] = name
	}
	for variant, canonical := range skillSynonyms {
		lookup[variant] = canonical
	}
	return lookup
}

// extractSkillTokens scans segment text for known skill names. It matches
// single tokens and two-token phrases against the lexicon, preserving
// first-occurrence order and deduplicating.
func extractSkillTokens(text string) []string {
	tokens := tokenizeSkillText(text)
	var found []string
	seen := make(map[string]bool)

	add := func(canonical string) {
		if !seen[canonical] {
			seen[canonical] = true
			found = append(found, canonical)
		}
	}

	for i, tok := range tokens {
		// Bigram first so "machine learning" wins over bare "machine".
		if i+1 < len(tokens) {
			bigram := tok + " " + tokens[i+1]
			if canonical, ok := lexiconLookup[bigram]; ok {
				add(canonical)
				continue
			}
		}
		if canonical, ok := lexiconLookup[tok]; ok {
			add(canonical)
		}
	}

	return found
}

// tokenizeSkillText lowercases and splits text into tokens, keeping
// characters that are significant in skill names (+ # . /).
func tokenizeSkillText(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '.' || r == '/':
			return false
		default:
			return true
		}
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// Trailing punctuation from sentence context ("with Go." -> "go"),
		// keeping leading dots so ".net" survives.
		f = strings.TrimRight(f, "./")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
