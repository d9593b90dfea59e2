package checks

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/augment/pkg/contract"
)

// ValidEmail validates that a string value parses as an e-mail address
// without a display name.
func ValidEmail() contract.Constraint {
	return stringly("valid e-mail address", func(s string) bool {
		s = strings.TrimSpace(s)
		if s == "" {
			return false
		}
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	})
}

// ValidUUID validates standard UUID format. Length and hyphen positions
// are checked before parsing to reject garbage cheaply.
func ValidUUID() contract.Constraint {
	return stringly("valid UUID", func(s string) bool {
		if len(s) != 36 {
			return false
		}
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}
