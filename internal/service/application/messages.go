package application

import "fmt"

func newApplicationMessage(seekerName, jobTitle string) string {
	return fmt.Sprintf("New application received from %s for '%s'", seekerName, jobTitle)
}

func statusUpdatedMessage(jobTitle, status string) string {
	return fmt.Sprintf("Your application for '%s' has been updated to: %s", jobTitle, status)
}

func withdrawnMessage(seekerName, jobTitle, reason string) string {
	msg := fmt.Sprintf("Applicant %s has withdrawn their application for '%s'", seekerName, jobTitle)
	if reason != "" {
		msg += ": " + reason
	}
	return msg
}

func withdrawalNote(reason string) string {
	return "Withdrawal reason: " + reason
}
