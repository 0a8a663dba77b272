package registration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"teamreg-bot/internal/models"
)

func TestCache_LastWriteWins(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("u1")
	require.False(t, ok)

	c.Put("u1", models.Team{TeamName: "Foxes"})
	c.Put("u1", models.Team{TeamName: "Wolves"})
	c.Put("u2", models.Team{TeamName: "Bears"})

	got, ok := c.Get("u1")
	require.True(t, ok)
	require.Equal(t, "Wolves", got.TeamName)

	got, ok = c.Get("u2")
	require.True(t, ok)
	require.Equal(t, "Bears", got.TeamName)
}
