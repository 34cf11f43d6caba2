package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Order(t *testing.T) {
	board := Default().Standings(0)

	require.Len(t, board.Entries, 10)
	assert.Equal(t, "Boldoo", board.Entries[0].Name)
	assert.Equal(t, "👑", board.Entries[0].Badge)
	assert.Equal(t, "12,400 XP", board.Entries[0].XPDisplay)
	assert.Equal(t, "Delgermaa", board.Entries[9].Name)
	for i, e := range board.Entries {
		assert.Equal(t, i+1, e.Rank)
		assert.False(t, e.IsPlayer)
	}
}

func TestStandings_PlayerRank(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{"no xp", 0, 11},
		{"one chicken", 300, 11},
		{"between entries", 10000, 4},
		{"tied with leader", 12400, 1},
		{"above leader", 20000, 1},
		{"negative clamps to zero", -50, 11},
	}

	board := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := board.Standings(tt.xp)
			assert.Equal(t, tt.want, got.PlayerRank)
			assert.Equal(t, tt.want, got.Player.Rank)
			assert.Equal(t, PlayerName, got.Player.Name)
			assert.True(t, got.Player.IsPlayer)
		})
	}
}

func TestStandings_PlayerDisplay(t *testing.T) {
	got := Default().Standings(1500)
	assert.Equal(t, "1,500 XP", got.Player.XPDisplay)
	assert.Equal(t, 1500, got.Player.XP)
}

func TestNew_SortsAndCopies(t *testing.T) {
	seed := []Entry{{Name: "a", XP: 10}, {Name: "b", XP: 30}, {Name: "c", XP: 30}}
	board := New(seed)
	got := board.Standings(0)

	require.Len(t, got.Entries, 3)
	assert.Equal(t, "b", got.Entries[0].Name)
	assert.Equal(t, "c", got.Entries[1].Name)
	assert.Equal(t, "a", got.Entries[2].Name)
	assert.Equal(t, "a", seed[0].Name)

	got.Entries[0].Name = "mutated"
	assert.Equal(t, "b", board.Standings(0).Entries[0].Name)
}
