package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseYesNo(t *testing.T) {
	cases := []struct {
		in      string
		yes, ok bool
	}{
		{"yes", true, true},
		{"y", true, true},
		{"YES", true, true},
		{"  Y  ", true, true},
		{"no", false, true},
		{"n", false, true},
		{"No", false, true},
		{"maybe", false, false},
		{"", false, false},
		{"yess", false, false},
	}
	for _, c := range cases {
		yes, ok := ParseYesNo(c.in)
		require.Equal(t, c.yes, yes, "input %q", c.in)
		require.Equal(t, c.ok, ok, "input %q", c.in)
	}
}

func TestFoldName(t *testing.T) {
	require.Equal(t, "foxes", FoldName("  FoXeS "))
	require.Equal(t, "", FoldName("   "))
}

func TestHMACSHA256Hex(t *testing.T) {
	a := HMACSHA256Hex("secret", "export:teams")
	b := HMACSHA256Hex("secret", "export:teams")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
	require.NotEqual(t, a, HMACSHA256Hex("other", "export:teams"))
}

func TestEscapeCSV(t *testing.T) {
	require.Equal(t, "plain", EscapeCSV("plain"))
	require.Equal(t, `"a,b"`, EscapeCSV("a,b"))
	require.Equal(t, `"he said ""hi"""`, EscapeCSV(`he said "hi"`))
	require.Equal(t, "\"line\nbreak\"", EscapeCSV("line\nbreak"))
}
