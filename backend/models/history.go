package models

import "gorm.io/gorm"

// PromptHistory is one scored submission. Prompts are truncated to a
// snippet before storage; the full text never leaves the request.
type PromptHistory struct {
	gorm.Model
	Username   string `gorm:"index"`
	Continent  string
	PromptType string
	Score      float64
	Snippet    string `gorm:"size:100"`
	XPGained   int
}

type LeaderboardEntry struct {
	Rank      int     `json:"rank"`
	Username  string  `json:"username"`
	BestScore float64 `json:"best_score"`
	Prompts   int     `json:"prompts"`
	XP        int     `json:"xp"`
	Level     int     `json:"level"`
	Streak    int     `json:"streak"`
}
