package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	cli := commandLine{}
	err := cli.run([]string{"admin"})
	assert.ErrorIs(t, err, errHelp)
}

func TestRunUnknownCommand(t *testing.T) {
	cli := commandLine{}
	err := cli.run([]string{"admin", "unknown"})
	assert.ErrorIs(t, err, errHelp)
}

func TestRunManualVerificationsWithoutEmails(t *testing.T) {
	cli := commandLine{}
	err := cli.run([]string{"admin", "manualverifications"})
	assert.ErrorIs(t, err, errHelp)
}

func TestReadEmailsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emails.txt")
	content := "uno@campus.edu\n\n  dos@campus.edu  \ntres@campus.edu\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	emails, err := readEmailsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"uno@campus.edu", "dos@campus.edu", "tres@campus.edu"}, emails)
}

func TestReadEmailsFileMissing(t *testing.T) {
	_, err := readEmailsFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
