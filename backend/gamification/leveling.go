package gamification

// XPPerLevel is the fixed divisor between levels.
const XPPerLevel = 100

// LevelForXP maps cumulative XP to a level: floor(xp/100)+1.
// Levels are derived, never stored independently.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// XPForScore returns the XP awarded for one scored prompt:
// 2 XP per score point, floored.
func XPForScore(score float64) int {
	if score < 0 {
		return 0
	}
	return int(score * 2)
}
