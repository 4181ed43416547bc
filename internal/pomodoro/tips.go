package pomodoro

import "math/rand/v2"

// Tips rotate through the banner while the app is open.
var Tips = []string{
	"💡 Tip: Press Space to start/switch modes",
	"💡 Tip: Press r to reset the timer",
	"💡 Tip: Press b to switch to break mode",
	"💡 Tip: Press t to toggle theme",
	"💡 Tip: Press e to export stats, i for an image",
	"💡 Tip: Set daily goals to stay motivated",
	"💡 Tip: Study as long as you feel focused",
	"💡 Tip: Take breaks when you need them",
	"💡 Tip: Export your progress as an image to share!",
	`🙏 "When the time is right, I, the Lord, will make it happen" - Isaiah 60:22`,
}

// RandomTip picks a tip using r, or the global source when r is nil.
func RandomTip(r *rand.Rand) string {
	if r == nil {
		return Tips[rand.IntN(len(Tips))]
	}
	return Tips[r.IntN(len(Tips))]
}
