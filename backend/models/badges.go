package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge is a catalog definition; unlock state lives in UserBadge.
type Badge struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserBadge struct {
	gorm.Model
	Username   string `gorm:"uniqueIndex:idx_user_badge"`
	BadgeID    string `gorm:"uniqueIndex:idx_user_badge"`
	UnlockedAt time.Time
}

type BadgeStatus struct {
	Badge
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
