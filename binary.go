package uuidcheck

import "strings"

// nibbleBits maps a hex digit of either case to its 4-bit rendering.
var nibbleBits = [256]string{
	'0': "0000", '1': "0001", '2': "0010", '3': "0011",
	'4': "0100", '5': "0101", '6': "0110", '7': "0111",
	'8': "1000", '9': "1001", 'a': "1010", 'b': "1011",
	'c': "1100", 'd': "1101", 'e': "1110", 'f': "1111",
	'A': "1010", 'B': "1011", 'C': "1100", 'D': "1101",
	'E': "1110", 'F': "1111",
}

// V7ToBinary renders a UUIDv7 as 128 '0'/'1' characters, most significant
// bit first. It reports false for malformed input and for valid UUIDs of
// other versions.
func V7ToBinary(in Input) (string, bool) {
	s := Normalize(in)
	c, ok := matchFormat(s)
	if !ok || c != '7' {
		return "", false
	}

	var sb strings.Builder
	sb.Grow(128)
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			continue
		}
		sb.WriteString(nibbleBits[s[i]])
	}
	return sb.String(), true
}
