// Package notify sends desktop notifications for the daily writing reminder.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Send delivers one notification. Tests replace it.
var Send = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Info(title, message string) error {
	return Send(title, message)
}

// Reminder builds the daily prompt. streak is the current streak as of
// today; written reports whether today already has an entry.
func Reminder(streak int, written bool) (string, string) {
	const title = "Journal reminder"
	switch {
	case written:
		return title, fmt.Sprintf("Today's entry is in. Streak: %s.", days(streak))
	case streak > 0:
		return title, fmt.Sprintf("Keep your %s streak going. Write today's entry?", days(streak))
	default:
		return title, "No streak yet. Start one with today's entry?"
	}
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
