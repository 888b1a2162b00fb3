package uuidcheck

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOf(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    VersionTag
		wantStr string
	}{
		{"v1", "cc863758-b714-11f0-b576-c586e8619134", TagV1, "v1"},
		{"v2", "e2a1f3c4-1d23-21f2-8f56-abcdef123456", TagV2, "v2"},
		{"v3", "4384b27d-2698-3cad-8ecd-2b804a6dc803", TagV3, "v3"},
		{"v4", "550e8400-e29b-41d4-a716-446655440000", TagV4, "v4"},
		{"v5", "a4b10451-0bda-5091-84d4-4eccefb8bc64", TagV5, "v5"},
		{"v6", "1e2f3a4b-5c6d-6f78-90ab-cdef12345678", TagV6, "v6"},
		{"v7", "018fd8f9-8c00-7a4c-8a47-1a6d4b90f3a1", TagV7, "v7"},
		{"v8", "d8a1c4e2-12f3-8a4b-91de-5f63bc7a249e", TagV8, "v8"},
		{"v7 uppercase", "018FD8F9-8C00-7A4C-8A47-1A6D4B90F3A1", TagV7, "v7"},
		{"nil", "00000000-0000-0000-0000-000000000000", TagNil, "NilUUID"},
		{"max", "ffffffff-ffff-ffff-ffff-ffffffffffff", TagMax, "MaxUUID"},
		{"max uppercase", "FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF", TagMax, "MaxUUID"},
		{"max mixed case", "FFFFffff-FFFF-ffff-FFFF-ffffffffFFFF", TagMax, "MaxUUID"},
		{"version 0", "018fd8f9-8c00-0a4c-8a47-1a6d4b90f3a1", TagInvalid, ""},
		{"version 9", "018fd8f9-8c00-9a4c-8a47-1a6d4b90f3a1", TagInvalid, ""},
		{"bad variant", "018fd8f9-8c00-7a4c-ca47-1a6d4b90f3a1", TagInvalid, ""},
		{"nil without hyphens", "00000000000000000000000000000000", TagInvalid, ""},
		{"empty", "", TagInvalid, ""},
		{"garbage", "not-a-uuid", TagInvalid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VersionOf(Text(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != TagInvalid, ok)
			assert.Equal(t, tt.wantStr, got.String())
			assert.Equal(t, ok, IsValid(Text(tt.input)))
		})
	}
}

func TestVersionOf_Binary(t *testing.T) {
	v1, err := uuid.NewUUID()
	require.NoError(t, err)
	v6, err := uuid.NewV6()
	require.NoError(t, err)
	v7, err := uuid.NewV7()
	require.NoError(t, err)

	tests := []struct {
		name string
		id   uuid.UUID
		want VersionTag
	}{
		{"v1", v1, TagV1},
		{"v3", uuid.NewMD5(uuid.NameSpaceDNS, []byte("example.com")), TagV3},
		{"v4", uuid.New(), TagV4},
		{"v5", uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com")), TagV5},
		{"v6", v6, TagV6},
		{"v7", v7, TagV7},
		{"nil", uuid.Nil, TagNil},
		{"max", uuid.Max, TagMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromBytes, ok := VersionOf(Binary(tt.id[:]))
			assert.True(t, ok)
			assert.Equal(t, tt.want, fromBytes)

			fromText, _ := VersionOf(Text(tt.id.String()))
			assert.Equal(t, fromText, fromBytes)

			fromValue, _ := VersionOf(UUID(tt.id))
			assert.Equal(t, fromText, fromValue)

			if v, ok := fromBytes.Version(); ok {
				assert.Equal(t, int(tt.id.Version()), int(v))
			}
		})
	}
}

func TestVersionOf_MalformedBinary(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x01},
		{0x01, 0x02, 0x03, 0x04},
		make([]byte, 15),
	}
	for _, b := range inputs {
		got, ok := VersionOf(Binary(b))
		assert.False(t, ok, "len %d", len(b))
		assert.Equal(t, TagInvalid, got)
		assert.False(t, IsValid(Binary(b)), "len %d", len(b))
	}

	// Only the first 16 bytes are read.
	long := append(uuid.Max[:], 0x00, 0x01)
	got, ok := VersionOf(Binary(long))
	assert.True(t, ok)
	assert.Equal(t, TagMax, got)
}

func TestVersionOf_NilInput(t *testing.T) {
	got, ok := VersionOf(nil)
	assert.False(t, ok)
	assert.Equal(t, TagInvalid, got)
	assert.False(t, IsValid(nil))
}

// Every single-character change to the version nibble outside 1-8 must be
// rejected, and IsValid must agree with VersionOf throughout.
func TestIsValid_VersionNibble(t *testing.T) {
	const base = "018fd8f9-8c00-7a4c-8a47-1a6d4b90f3a1"
	for _, c := range "0123456789abcdefABCDEF" {
		s := base[:versionIndex] + string(c) + base[versionIndex+1:]
		want := c >= '1' && c <= '8'

		assert.Equal(t, want, IsValid(Text(s)), s)
		tag, ok := VersionOf(Text(s))
		assert.Equal(t, want, ok, s)
		if want {
			assert.Equal(t, "v"+string(c), tag.String())
		}
	}
}

func TestIsValid_Sentinels(t *testing.T) {
	assert.True(t, IsValid(Text("00000000-0000-0000-0000-000000000000")))
	assert.True(t, IsValid(Text("ffffffff-ffff-ffff-ffff-ffffffffffff")))
	assert.True(t, IsValid(Text("FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF")))
	assert.True(t, IsValid(Binary(make([]byte, 16))))
	assert.True(t, IsValid(Max))
	assert.True(t, IsValid(Nil))
}

func TestIsValid_Corruptions(t *testing.T) {
	const base = "550e8400-e29b-41d4-a716-446655440000"
	for _, idx := range []int{8, 13, 18, 23} {
		missing := base[:idx] + base[idx+1:]
		assert.False(t, IsValid(Text(missing)), missing)
		swapped := base[:idx] + "0" + base[idx+1:]
		assert.False(t, IsValid(Text(swapped)), swapped)
	}
	for i := 0; i < len(base); i++ {
		if base[i] == '-' {
			continue
		}
		for _, bad := range []string{"g", "z", " ", "_", "é"} {
			s := base[:i] + bad + base[i+1:]
			assert.False(t, IsValid(Text(s)), s)
		}
	}
}

func TestVersionTag_String(t *testing.T) {
	assert.Equal(t, "", TagInvalid.String())
	assert.Equal(t, "v7", TagV7.String())
	assert.Equal(t, "NilUUID", TagNil.String())
	assert.Equal(t, "MaxUUID", TagMax.String())
	assert.Equal(t, "", VersionTag(200).String())
}

func TestVersionTag_Version(t *testing.T) {
	v, ok := TagV7.Version()
	assert.True(t, ok)
	assert.Equal(t, VersionTimeSorted, v)

	v, ok = TagV6.Version()
	assert.True(t, ok)
	assert.Equal(t, VersionReorderedTime, v)

	for _, tag := range []VersionTag{TagInvalid, TagNil, TagMax} {
		_, ok := tag.Version()
		assert.False(t, ok, tag.String())
	}
}

func TestIsValid_RandomAgreement(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := uuid.New()
		s := id.String()
		for _, in := range []Input{Text(s), Text(strings.ToUpper(s)), Binary(id[:]), UUID(id)} {
			tag, ok := VersionOf(in)
			assert.True(t, ok)
			assert.Equal(t, TagV4, tag)
			assert.True(t, IsValid(in))
		}
	}
}
