// Package leaderboard ranks the local player against a fixed board of farmers.
package leaderboard

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

const (
	// PlayerName labels the local player's row
	PlayerName = "You"

	xpDisplayFormat = "%d XP"
)

// Entry is a seed row before ranking
type Entry struct {
	Name  string
	XP    int
	Badge string
}

var defaultEntries = []Entry{
	{Name: "Boldoo", XP: 12400, Badge: "👑"},
	{Name: "Saraa", XP: 11200, Badge: "🥈"},
	{Name: "Temuulen", XP: 10800, Badge: "🥉"},
	{Name: "Enkhsaikhan", XP: 9600},
	{Name: "Munkhzul", XP: 8900},
	{Name: "Bat-Erdene", XP: 7500},
	{Name: "Oyunaa", XP: 6800},
	{Name: "Anujin", XP: 5400},
	{Name: "Ganbold", XP: 4200},
	{Name: "Delgermaa", XP: 3100},
}

// Board is an immutable ranked list of farmers
type Board struct {
	entries []domain.LeaderboardEntry
	printer *message.Printer
}

// New ranks the entries by XP, highest first. Ties keep input order.
func New(entries []Entry) *Board {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].XP > sorted[j].XP })

	b := &Board{
		entries: make([]domain.LeaderboardEntry, 0, len(sorted)),
		printer: message.NewPrinter(language.English),
	}
	for i, e := range sorted {
		b.entries = append(b.entries, domain.LeaderboardEntry{
			Rank:      i + 1,
			Name:      e.Name,
			XP:        e.XP,
			Badge:     e.Badge,
			XPDisplay: b.FormatXP(e.XP),
		})
	}
	return b
}

// Default returns the built-in board
func Default() *Board {
	return New(defaultEntries)
}

// FormatXP renders an XP total with digit grouping, e.g. "12,400 XP"
func (b *Board) FormatXP(xp int) string {
	return b.printer.Sprintf(xpDisplayFormat, xp)
}

// Rank is one plus the number of farmers strictly ahead of xp
func (b *Board) Rank(xp int) int {
	rank := 1
	for _, e := range b.entries {
		if xp < e.XP {
			rank++
		}
	}
	return rank
}

// Standings returns the board alongside the player's position
func (b *Board) Standings(playerXP int) domain.Leaderboard {
	if playerXP < 0 {
		playerXP = 0
	}
	rank := b.Rank(playerXP)
	entries := make([]domain.LeaderboardEntry, len(b.entries))
	copy(entries, b.entries)

	return domain.Leaderboard{
		Entries: entries,
		Player: domain.LeaderboardEntry{
			Rank:      rank,
			Name:      PlayerName,
			XP:        playerXP,
			XPDisplay: b.FormatXP(playerXP),
			IsPlayer:  true,
		},
		PlayerRank: rank,
	}
}
