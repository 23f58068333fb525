package catalog

// LevelBand maps a contiguous range of total XP to a display title.
type LevelBand struct {
	Title string
	MinXP int
}

// Bands are the fixed, non-overlapping XP title bands, lowest first.
var Bands = []LevelBand{
	{Title: "Novice", MinXP: 0},
	{Title: "Apprentice", MinXP: 500},
	{Title: "Journeyman", MinXP: 2000},
	{Title: "Expert", MinXP: 5000},
	{Title: "Master", MinXP: 10000},
	{Title: "Sage", MinXP: 20000},
}

// TitleForXP returns the band title for a total XP value.
func TitleForXP(totalXP int) string {
	title := Bands[0].Title
	for _, b := range Bands {
		if totalXP >= b.MinXP {
			title = b.Title
		}
	}
	return title
}

// LevelForXP returns the numeric level for a total XP value. Level n is
// reached at 250*n*(n-1) total XP, so level 1 starts at 0, level 2 at 500,
// level 3 at 1500, and so on. The function is monotonic in totalXP and is the
// single source of truth for numeric levels.
func LevelForXP(totalXP int) int {
	level := 1
	for xpForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// XPForLevel returns the total XP needed to reach the given level.
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return xpForLevel(level)
}

func xpForLevel(level int) int {
	return 250 * level * (level - 1)
}
