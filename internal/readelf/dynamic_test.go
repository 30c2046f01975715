package readelf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Idesmi/rpmlint/internal/readelf"
)

const dynamicOutput = `
Dynamic section at offset 0x2e10 contains 24 entries:
  Tag        Type                         Name/Value
 0x0000000000000001 (NEEDED)             Shared library: [ld-linux-x86-64.so.2]
 0x0000000000000001 (NEEDED)             Shared library: [libm.so.6]
 0x000000000000000e (SONAME)             Library soname: [libc.so.6]
 0x000000000000000c (INIT)               0x26950
 0x000000000000001e (FLAGS)              BIND_NOW STATIC_TLS
 0x000000006ffffffb (FLAGS_1)            Flags: NOW
 0x0000000000000000 (NULL)               0x0
`

func TestParseDynamicSection(t *testing.T) {
	info, err := readelf.ParseDynamicSection(dynamicOutput)
	require.NoError(t, err)

	require.Len(t, info.Entries, 7)
	assert.Equal(t, readelf.DynamicEntry{Key: "NEEDED", Value: "Shared library: [ld-linux-x86-64.so.2]"}, info.Entries[0])
	assert.Equal(t, readelf.DynamicEntry{Key: "FLAGS", Value: "BIND_NOW STATIC_TLS"}, info.Entries[4])
	assert.False(t, info.ParsingFailed)
}

func TestParseDynamicSection_Lookup(t *testing.T) {
	info, err := readelf.ParseDynamicSection(dynamicOutput)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Shared library: [ld-linux-x86-64.so.2]",
		"Shared library: [libm.so.6]",
	}, info.Lookup("NEEDED"))
	assert.Nil(t, info.Lookup("RPATH"))
}

func TestParseDynamicSection_Soname(t *testing.T) {
	info, err := readelf.ParseDynamicSection(dynamicOutput)
	require.NoError(t, err)

	require.True(t, info.Soname.IsSet())
	assert.Equal(t, "libc.so.6", info.Soname.Value())
}

func TestParseDynamicSection_SonameAbsent(t *testing.T) {
	out := `Dynamic section at offset 0x2e10 contains 2 entries:
  Tag        Type                         Name/Value
 0x0000000000000001 (NEEDED)             Shared library: [libc.so.6]
 0x0000000000000000 (NULL)               0x0
`
	info, err := readelf.ParseDynamicSection(out)
	require.NoError(t, err)
	assert.False(t, info.Soname.IsSet())
}

func TestParseDynamicSection_SonameDuplicated(t *testing.T) {
	// More than one SONAME entry is odd but not a shape violation; the
	// derived field simply stays unset.
	out := `Dynamic section at offset 0x2e10 contains 2 entries:
  Tag        Type                         Name/Value
 0x000000000000000e (SONAME)             Library soname: [liba.so.1]
 0x000000000000000e (SONAME)             Library soname: [libb.so.1]
`
	info, err := readelf.ParseDynamicSection(out)
	require.NoError(t, err)
	assert.False(t, info.Soname.IsSet())
	assert.Len(t, info.Lookup("SONAME"), 2)
}

func TestParseDynamicSection_SonameShapeViolation(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing prefix", "soname: [libc.so.6]"},
		{"missing closing bracket", "Library soname: [libc.so.6"},
		{"entirely different shape", "0x1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := `Dynamic section at offset 0x2e10 contains 1 entry:
  Tag        Type                         Name/Value
 0x000000000000000e (SONAME)             ` + tt.value + `
`
			info, err := readelf.ParseDynamicSection(out)
			assert.Nil(t, info)

			var shapeErr *readelf.SonameFormatError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.value, shapeErr.Value)
		})
	}
}

func TestParseDynamicSection_NoDynamicSection(t *testing.T) {
	info, err := readelf.ParseDynamicSection("There is no dynamic section in this file.\n")
	require.NoError(t, err)
	assert.Empty(t, info.Entries)
	assert.False(t, info.Soname.IsSet())
}

func TestParseDynamicSection_Idempotent(t *testing.T) {
	first, err := readelf.ParseDynamicSection(dynamicOutput)
	require.NoError(t, err)
	second, err := readelf.ParseDynamicSection(dynamicOutput)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
