package main

import (
	"fmt"
	"strings"
)

// manualVerifications approves each email manually. Emails that already hold a
// valid verification are skipped. Any failed email makes the command fail
// after the whole list was attempted.
func (cli *commandLine) manualVerifications(emails []string) error {
	var created, existing int
	var failed []string

	for _, email := range emails {
		wasCreated, err := cli.verificationSvc.VerifyUser(email)
		if err != nil {
			logger.Printf("Could not verify %s: %s", email, err)
			failed = append(failed, email)
			continue
		}
		if wasCreated {
			created++
		} else {
			existing++
		}
	}

	logger.Printf(
		"Attempted %d verifications: %d created, %d already valid, %d failed",
		len(emails), created, existing, len(failed),
	)
	if len(failed) > 0 {
		return fmt.Errorf("could not verify emails: %s", strings.Join(failed, ", "))
	}
	return nil
}
