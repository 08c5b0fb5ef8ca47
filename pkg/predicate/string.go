package predicate

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NonEmpty accepts strings that contain at least one non-whitespace
// character. Non-string values are rejected.
func NonEmpty() Predicate {
	return Typed(func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// MinLen accepts strings of at least min bytes.
func MinLen(min int) Predicate {
	return Typed(func(s string) bool {
		return len(s) >= min
	})
}

// MaxLen accepts strings of at most max bytes.
func MaxLen(max int) Predicate {
	return Typed(func(s string) bool {
		return len(s) <= max
	})
}

// Matches accepts strings matching the given pattern. The pattern is
// compiled once at construction time; an invalid pattern panics there, which
// surfaces at setup rather than during enforcement.
func Matches(pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return Typed(func(s string) bool {
		return re.MatchString(s)
	})
}

// ValidEmail accepts RFC 5322 addresses with additional restrictions for
// typical web use: a non-empty local part and a dotted domain without empty
// labels.
func ValidEmail() Predicate {
	return Typed(func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}

		addr, err := mail.ParseAddress(s)
		if err != nil {
			return false
		}

		parts := strings.Split(addr.Address, "@")
		if len(parts) != 2 {
			return false
		}

		local, domain := parts[0], parts[1]
		if local == "" {
			return false
		}

		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}

		return true
	})
}

// ValidUUID accepts canonical UUID strings. Length and hyphen positions are
// checked before parsing to reject malformed input cheaply.
func ValidUUID() Predicate {
	return Typed(func(s string) bool {
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
