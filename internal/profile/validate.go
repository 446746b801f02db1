// Package profile loads, validates, and normalizes Profile snapshots.
// The matching engine receives fully materialized profiles and treats them
// as read-only; this package is the boundary that enforces that contract.
package profile

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mikael/cv-tailor/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a profile against its struct constraints, failing fast
// before any scoring work. The first violation is returned as a
// ValidationError naming the offending field.
func Validate(p *types.Profile) error {
	if p == nil {
		return &ValidationError{Message: "profile is nil"}
	}

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return &ValidationError{
				Field:   namespaceToJSONPath(first.Namespace()),
				Message: "failed " + first.Tag() + " constraint",
			}
		}
		return &ValidationError{Message: err.Error()}
	}

	if len(p.WorkExperience) == 0 && len(p.Projects) == 0 && len(p.Education) == 0 {
		return &ValidationError{Message: "profile has no experience, projects, or education content"}
	}

	return nil
}

// namespaceToJSONPath turns validator's Go namespace
// ("Profile.WorkExperience[0].Company") into a friendlier lowercase path.
func namespaceToJSONPath(ns string) string {
	// Drop the root struct name.
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return camelToSnakePath(ns)
}

func camelToSnakePath(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '.' && s[i-1] != '[' {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
