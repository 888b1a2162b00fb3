package uuidcheck

// Input is a candidate UUID in text or binary form. It is implemented only by
// Text, Binary and UUID.
type Input interface {
	canonical() string
}

// Text is a UUID candidate in string form. It is passed through unchanged.
type Text string

// Binary is a UUID candidate in byte form. It is rendered with
// ConvertBufferToUUIDString, so any length is accepted here and rejected
// later by format matching.
type Binary []byte

func (t Text) canonical() string { return string(t) }

func (b Binary) canonical() string { return ConvertBufferToUUIDString(b) }

func (u UUID) canonical() string { return u.String() }

// Normalize returns the string form of in without validating it. A nil
// Input normalizes to the empty string.
func Normalize(in Input) string {
	if in == nil {
		return ""
	}
	return in.canonical()
}
