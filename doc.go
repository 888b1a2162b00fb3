// Package uuidcheck validates, classifies and inspects UUIDs of versions 1 through 8,
// together with the Nil and Max sentinels defined by RFC 9562.
//
// Every function is pure: there is no generator, no clock and no shared mutable state,
// so all of them can be called concurrently from any goroutine.
//
// Inputs:
//
// Functions take an Input, which is one of
//   - Text: a string, expected in the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form
//   - Binary: a byte slice, expected to hold 16 bytes
//   - UUID: a decoded 16-byte value
//
// Binary input is rendered to text with ConvertBufferToUUIDString before anything is checked,
// so a string and its 16-byte encoding always give the same answer.
//
// Basic Usage:
//
//	// Validate a UUID of any version, or Nil/Max
//	ok := uuidcheck.IsValid(uuidcheck.Text("018fd8f9-8c00-7a4c-8a47-1a6d4b90f3a1"))
//
//	// Classify it
//	tag, ok := uuidcheck.VersionOf(uuidcheck.Binary(buf))
//	fmt.Println(tag) // "v7"
//
//	// Read the creation time of a UUIDv7
//	if d, ok := uuidcheck.DateFromUUIDv7(uuidcheck.Text(s)); ok {
//	    fmt.Println(d.ISOString, d.UnixMillis, d.UTCString)
//	}
//
//	// Render a UUIDv7 bit by bit
//	bits, ok := uuidcheck.V7ToBinary(uuidcheck.Text(s))
//
// Failure Handling:
//
// The validating functions never panic and never return errors. Input that is not a UUID
// of the expected kind is answered with a false second result. Parse and FromBytes are the
// strict counterparts for callers that want an error value instead.
//
// Standards Compliance:
//
// The accepted grammar requires the RFC 4122 variant (10xx) and a version nibble of 1-8.
// The Nil UUID is accepted only as all zeros and the Max UUID in any letter case.
package uuidcheck
