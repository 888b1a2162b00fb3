package uuidcheck

// VersionTag is the classification of a UUID candidate. The zero value,
// TagInvalid, means the input is not a UUID this package recognizes.
type VersionTag uint8

const (
	TagInvalid VersionTag = iota
	TagV1
	TagV2
	TagV3
	TagV4
	TagV5
	TagV6
	TagV7
	TagV8
	TagNil
	TagMax
)

var tagNames = [...]string{
	TagInvalid: "",
	TagV1:      "v1",
	TagV2:      "v2",
	TagV3:      "v3",
	TagV4:      "v4",
	TagV5:      "v5",
	TagV6:      "v6",
	TagV7:      "v7",
	TagV8:      "v8",
	TagNil:     "NilUUID",
	TagMax:     "MaxUUID",
}

// versionTags maps the version character of a matched string to its tag.
// Characters outside '1'-'8' map to TagInvalid.
var versionTags = [256]VersionTag{
	'1': TagV1,
	'2': TagV2,
	'3': TagV3,
	'4': TagV4,
	'5': TagV5,
	'6': TagV6,
	'7': TagV7,
	'8': TagV8,
}

// String returns "v1" through "v8", "NilUUID" or "MaxUUID", and the empty
// string for TagInvalid or an out-of-range value.
func (t VersionTag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return ""
}

// Version returns the version nibble carried by t. It reports false for the
// sentinels and TagInvalid, which have no version of their own.
func (t VersionTag) Version() (Version, bool) {
	if t >= TagV1 && t <= TagV8 {
		return Version(t), true
	}
	return 0, false
}

// VersionOf classifies in. The Nil UUID is recognised only in its all-zero
// form and the Max UUID in any letter case; both are checked before the
// format match since their version nibbles fall outside 1-8. Anything else
// must match MatchesFormat. The second result is false exactly when the
// tag is TagInvalid.
func VersionOf(in Input) (VersionTag, bool) {
	s := Normalize(in)
	switch {
	case isNilString(s):
		return TagNil, true
	case isMaxString(s):
		return TagMax, true
	}

	c, ok := matchFormat(s)
	if !ok {
		return TagInvalid, false
	}
	tag := versionTags[c]
	return tag, tag != TagInvalid
}

// IsValid reports whether in is a well-formed UUID of version 1 through 8,
// or the Nil or Max UUID.
func IsValid(in Input) bool {
	_, ok := VersionOf(in)
	return ok
}
