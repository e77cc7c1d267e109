package formatter

import (
	"fmt"
	"strings"
)

// AchievementEntry is the display shape for one achievement.
type AchievementEntry struct {
	Label    string
	Unlocked bool
}

// FormatAchievements renders the full achievement board, unlocked first.
func FormatAchievements(entries []AchievementEntry) string {
	if len(entries) == 0 {
		return RenderBox("Achievements", Dim("Nothing to show."))
	}

	unlocked := 0
	var b strings.Builder
	for _, e := range entries {
		if e.Unlocked {
			unlocked++
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("★"), StyleFg.Render(e.Label)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render("☆"), Dim(e.Label)))
		}
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%d of %d unlocked", unlocked, len(entries))))

	return RenderBox("Achievements", b.String())
}
