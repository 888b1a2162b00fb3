package uuidcheck

import (
	"regexp"
	"strings"
)

// uuidPattern accepts versions 1-8 with the RFC 4122 variant (10xx).
var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Offsets into the canonical 36-character form.
const (
	versionIndex = 14
	variantIndex = 19
)

const (
	nilString = "00000000-0000-0000-0000-000000000000"
	maxString = "ffffffff-ffff-ffff-ffff-ffffffffffff"
)

// MatchesFormat reports whether s is a canonical hyphenated UUID of version
// 1 through 8 with the RFC 4122 variant. Hex digits may be in either case.
// The Nil and Max UUIDs do not match; see IsValid.
func MatchesFormat(s string) bool {
	_, ok := matchFormat(s)
	return ok
}

// matchFormat returns the version character of s, with its original case,
// when s matches uuidPattern.
func matchFormat(s string) (byte, bool) {
	if len(s) != 36 || !uuidPattern.MatchString(s) {
		return 0, false
	}
	return s[versionIndex], true
}

func isNilString(s string) bool {
	return s == nilString
}

// isMaxString matches the all-f form in any case.
func isMaxString(s string) bool {
	return strings.EqualFold(s, maxString)
}
