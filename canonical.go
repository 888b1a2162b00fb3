package uuidcheck

import "strings"

const hextable = "0123456789abcdef"

// Placeholders written by ConvertBufferToUUIDString for buffers shorter than
// 16 bytes. Existing callers compare against these exact strings.
const (
	missingByte  = "undefined"
	missingGroup = "nan"
)

// groups holds the [start, end) byte offsets of the five hyphen-separated
// groups of the canonical form.
var groups = [5][2]int{{0, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 16}}

// ConvertBufferToUUIDString renders b in the canonical 8-4-4-4-12 lowercase
// form. It does not validate version or variant bits, and bytes past index 15
// are ignored.
//
// A buffer shorter than 16 bytes still yields a five-group string: every
// absent byte is written as "undefined", and an empty buffer writes "nan" for
// the first group. Such strings never pass MatchesFormat. Use FromBytes when
// a short buffer must be reported as an error instead.
func ConvertBufferToUUIDString(b []byte) string {
	if len(b) >= 16 {
		var u UUID
		copy(u[:], b)
		return u.String()
	}

	var sb strings.Builder
	sb.Grow(36 + len(missingByte)*(16-len(b)))
	for i, g := range groups {
		if i > 0 {
			sb.WriteByte('-')
		}
		if i == 0 && len(b) == 0 {
			sb.WriteString(missingGroup)
			continue
		}
		for j := g[0]; j < g[1]; j++ {
			if j >= len(b) {
				sb.WriteString(missingByte)
				continue
			}
			sb.WriteByte(hextable[b[j]>>4])
			sb.WriteByte(hextable[b[j]&0x0f])
		}
	}
	return sb.String()
}
