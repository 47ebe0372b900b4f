package validation

import (
	"fmt"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
)

// ValidateSlug checks that a URL slug is present and uses the lowercase
// kebab-case charset the seeder produces. Anything else would never match a
// row, so it is rejected before touching the database.
func ValidateSlug(slug string) error {
	if slug == "" {
		return apperrors.ErrEmptySlug
	}
	for _, r := range slug {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		if !valid {
			return fmt.Errorf("invalid slug %q: only lowercase letters, digits, and hyphens allowed", slug)
		}
	}
	return nil
}
