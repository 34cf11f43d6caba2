package domain

// LeaderboardEntry is one ranked farmer
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	XP        int    `json:"xp"`
	Badge     string `json:"badge,omitempty"`
	XPDisplay string `json:"xp_display"`
	IsPlayer  bool   `json:"is_player,omitempty"`
}

// Leaderboard is the ranked list plus where the local player would stand
type Leaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	Player     LeaderboardEntry   `json:"player"`
	PlayerRank int                `json:"player_rank"`
}
