package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/OpenCampus/Campus_BContentstore/services"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	verificationSvc *services.VerificationService
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  manualverifications -emails EMAIL[,EMAIL...] - verify users manually")
	fmt.Println("  manualverifications -emails-file FILE - verify users listed in FILE, one email per line")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	verificationsCmd := flag.NewFlagSet("manualverifications", flag.ExitOnError)
	verificationsEmails := verificationsCmd.String("emails", "", "Comma separated emails of the users to verify.")
	verificationsFile := verificationsCmd.String("emails-file", "", "File with one email per line.")

	switch args[1] {
	case "manualverifications":
		if err := verificationsCmd.Parse(args[2:]); err != nil {
			return err
		}
		var emails []string
		if *verificationsFile != "" {
			fileEmails, err := readEmailsFile(*verificationsFile)
			if err != nil {
				return err
			}
			emails = fileEmails
		} else if *verificationsEmails != "" {
			emails = strings.Split(*verificationsEmails, ",")
		}
		if len(emails) == 0 {
			verificationsCmd.Usage()
			return errHelp
		}
		return cli.manualVerifications(emails)
	default:
		cli.printUsage()
		return errHelp
	}
}

func readEmailsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var emails []string
	for _, line := range strings.Split(string(data), "\n") {
		email := strings.TrimSpace(line)
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails, nil
}
