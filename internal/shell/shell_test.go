package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/lcsave-backup/internal/logging"
	"github.com/raoulx24/lcsave-backup/internal/savefile"
)

type fakeAccessor struct {
	saves   []savefile.SaveName
	backups []savefile.BackupName
	err     error

	created  []savefile.SaveName
	restored []savefile.BackupName
}

func (f *fakeAccessor) ListSaves() []savefile.SaveName     { return f.saves }
func (f *fakeAccessor) ListBackups() []savefile.BackupName { return f.backups }

func (f *fakeAccessor) CreateBackup(_ context.Context, save savefile.SaveName) (savefile.BackupName, int64, error) {
	f.created = append(f.created, save)
	if f.err != nil {
		return "", 0, f.err
	}
	return savefile.BackupName("BKP_" + string(save) + "_2024-03-16_18-21-28"), 10, nil
}

func (f *fakeAccessor) RestoreBackup(_ context.Context, backup savefile.BackupName) (int64, error) {
	f.restored = append(f.restored, backup)
	if f.err != nil {
		return 0, f.err
	}
	return 10, nil
}

func run(t *testing.T, acc *fakeAccessor, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(acc, strings.NewReader(input), &out, logging.Nop{}).Run(context.Background()))
	return out.String()
}

func TestCreateBackupFlow(t *testing.T) {
	acc := &fakeAccessor{saves: []savefile.SaveName{"LCSaveFile1", "LCSaveFile2"}}

	out := run(t, acc, "1\n2\n\n")

	assert.Equal(t, []savefile.SaveName{"LCSaveFile2"}, acc.created)
	assert.Contains(t, out, "Current saves:\n\n1. LCSaveFile1\n2. LCSaveFile2\n\nChoose a number:\n")
	assert.Contains(t, out, "Backup created successfully!")
	// main menu shown again after the acknowledgement line
	assert.Equal(t, 2, strings.Count(out, "1. Create a backup"))
}

func TestLoadBackupFlow(t *testing.T) {
	acc := &fakeAccessor{backups: []savefile.BackupName{
		"BKP_LCSaveFile4_2024-03-16_18-21-28",
		"BKP_LCSaveFile1_2024-03-16_18-09-00",
	}}

	out := run(t, acc, "2\n1\n\n")

	assert.Equal(t, []savefile.BackupName{"BKP_LCSaveFile4_2024-03-16_18-21-28"}, acc.restored)
	assert.Contains(t, out, "Current backups:\n\n1. BKP_LCSaveFile4_2024-03-16_18-21-28\n2. BKP_LCSaveFile1_2024-03-16_18-09-00\n")
	assert.Contains(t, out, "Backup loaded successfully!")
}

func TestEmptySelectionReturnsToMainMenu(t *testing.T) {
	acc := &fakeAccessor{
		saves:   []savefile.SaveName{"LCSaveFile1"},
		backups: []savefile.BackupName{"BKP_LCSaveFile1_2024-03-16_18-09-00"},
	}

	out := run(t, acc, "1\n\n2\n\n")

	assert.Empty(t, acc.created)
	assert.Empty(t, acc.restored)
	assert.Equal(t, 3, strings.Count(out, "Choose an option:"))
}

func TestInvalidSelectionRedisplays(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"zero", "0"},
		{"out of range", "3"},
		{"letters", "abc"},
		{"negative", "-1"},
		{"mixed", "1a"},
		{"overflow", "99999999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &fakeAccessor{saves: []savefile.SaveName{"LCSaveFile1", "LCSaveFile2"}}

			out := run(t, acc, "1\n"+tt.input+"\n1\n\n")

			assert.Equal(t, []savefile.SaveName{"LCSaveFile1"}, acc.created)
			assert.Equal(t, 2, strings.Count(out, "Current saves:"))
		})
	}
}

func TestUnknownMainMenuOptionRedisplays(t *testing.T) {
	acc := &fakeAccessor{}

	out := run(t, acc, "3\nx\n\n")

	assert.Equal(t, 4, strings.Count(out, "Choose an option:"))
	assert.Equal(t, 4, strings.Count(out, clearScreen))
}

func TestCopyErrorIsReportedAndLoopContinues(t *testing.T) {
	acc := &fakeAccessor{
		saves: []savefile.SaveName{"LCSaveFile1"},
		err:   errors.New("backing up LCSaveFile1: disk full"),
	}

	out := run(t, acc, "1\n1\n\n1\n1\n\n")

	assert.Len(t, acc.created, 2)
	assert.Contains(t, out, "Error: backing up LCSaveFile1: disk full")
	assert.NotContains(t, out, "successfully")
}

func TestCopyErrorIsNotLoggedAtDefaultLevel(t *testing.T) {
	acc := &fakeAccessor{
		saves: []savefile.SaveName{"LCSaveFile1"},
		err:   errors.New("backing up LCSaveFile1: disk full"),
	}
	var out, logs bytes.Buffer

	sh := New(acc, strings.NewReader("1\n1\n\n"), &out, logging.New("", &logs))
	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out.String(), "Error: backing up LCSaveFile1: disk full")
	assert.Empty(t, logs.String())
}

func TestEmptyListings(t *testing.T) {
	acc := &fakeAccessor{}

	out := run(t, acc, "1\n1\n\n2\n1\n\n")

	assert.Empty(t, acc.created)
	assert.Empty(t, acc.restored)
	assert.Contains(t, out, "Current saves:\n\n\n\nChoose a number:")
	assert.Contains(t, out, "Current backups:\n\n\n\nChoose a number:")
}

func TestRunEndsOnEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no input", ""},
		{"inside create flow", "1\n"},
		{"before acknowledgement", "1\n1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &fakeAccessor{saves: []savefile.SaveName{"LCSaveFile1"}}
			run(t, acc, tt.input)
		})
	}
}

func TestLastLineWithoutNewline(t *testing.T) {
	acc := &fakeAccessor{saves: []savefile.SaveName{"LCSaveFile1"}}

	run(t, acc, "1\n1")

	assert.Equal(t, []savefile.SaveName{"LCSaveFile1"}, acc.created)
}

func TestParseIndex(t *testing.T) {
	n, ok := parseIndex("2", 2)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = parseIndex("007", 7)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = parseIndex("1", 0)
	assert.False(t, ok)
	_, ok = parseIndex("+1", 3)
	assert.False(t, ok)
}
