package job

import (
	"fmt"
	"time"
)

func jobMatchMessage(title, company string) string {
	return fmt.Sprintf("New Job Match: %s at %s", title, company)
}

func expiryReminderMessage(title string, daysAhead int, deadline time.Time) string {
	return fmt.Sprintf("Reminder: Your job posting '%s' will expire in %d days (on %s).",
		title, daysAhead, deadline.Format(time.DateOnly))
}
