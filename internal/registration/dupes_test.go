package registration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamNames_FoldsCaseAndTrims(t *testing.T) {
	rows := [][]string{
		{"Foxes", "A", "a#1"},
		{"  WOLVES  "},
		{},
		{"   "},
	}
	names := TeamNames(rows)
	require.Equal(t, map[string]bool{"foxes": true, "wolves": true}, names)
}

func TestTags_ScansAlternatingColumns(t *testing.T) {
	rows := [][]string{
		{"Foxes", "A", "a#1", "B", "b#2", "C", "c#3", "D", "d#4", "E", "e#5"},
		{"Wolves", "V", "v#1", "W", "w#2"},
	}
	tags := Tags(rows)
	require.Len(t, tags, 7)
	require.True(t, tags["a#1"])
	require.True(t, tags["e#5"])
	require.True(t, tags["w#2"])
	// names never leak into the tag set
	require.False(t, tags["A"])
	require.False(t, tags["Foxes"])
}

func TestTags_CaseSensitive(t *testing.T) {
	rows := [][]string{{"Foxes", "A", "Tag#1"}}
	tags := Tags(rows)
	require.True(t, tags["Tag#1"])
	require.False(t, tags["tag#1"])
}

func TestTags_SkipsEmptyAndRaggedCells(t *testing.T) {
	rows := [][]string{
		{"Foxes", "A"},
		{"Wolves", "B", "", "C", "  "},
		nil,
	}
	require.Empty(t, Tags(rows))
}
