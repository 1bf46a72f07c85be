// Package savefile names the game's save files and the backups taken of them.
package savefile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// SavePrefix starts every save file name written by the game.
	SavePrefix = "LCSaveFile"
	// BackupPrefix starts every backup file name written by this tool.
	BackupPrefix = "BKP_"
	// BackupSavePrefix is the listing prefix for backups of save files.
	BackupSavePrefix = BackupPrefix + SavePrefix
	// TimestampLayout formats the local time appended to backup names.
	TimestampLayout = "2006-01-02_15-04-05"

	sep = "_"
)

// ErrInvalidName is wrapped by the Parse functions.
var ErrInvalidName = errors.New("invalid file name")

// SaveName is the bare file name of a save, e.g. LCSaveFile2.
type SaveName string

// BackupName is the bare file name of a backup, e.g. BKP_LCSaveFile2_2024-03-16_18-21-28.
type BackupName string

// ParseSaveName validates a save file name. Names containing "_" are refused
// because the save name must survive as one segment inside a backup name.
func ParseSaveName(s string) (SaveName, error) {
	if !strings.HasPrefix(s, SavePrefix) {
		return "", fmt.Errorf("%w: %q lacks prefix %s", ErrInvalidName, s, SavePrefix)
	}
	if strings.Contains(s, sep) {
		return "", fmt.Errorf("%w: %q contains %q", ErrInvalidName, s, sep)
	}
	if hasPathSeparator(s) {
		return "", fmt.Errorf("%w: %q is not a bare file name", ErrInvalidName, s)
	}
	return SaveName(s), nil
}

// ParseBackupName validates a backup file name.
func ParseBackupName(s string) (BackupName, error) {
	if !strings.HasPrefix(s, BackupSavePrefix) {
		return "", fmt.Errorf("%w: %q lacks prefix %s", ErrInvalidName, s, BackupSavePrefix)
	}
	if hasPathSeparator(s) {
		return "", fmt.Errorf("%w: %q is not a bare file name", ErrInvalidName, s)
	}
	return BackupName(s), nil
}

// NewBackupName names a backup of save taken at t, formatted in t's location.
func NewBackupName(save SaveName, t time.Time) BackupName {
	return BackupName(BackupPrefix + string(save) + sep + t.Format(TimestampLayout))
}

// SaveName returns the save this backup restores onto: the second "_" segment.
func (b BackupName) SaveName() SaveName {
	parts := strings.Split(string(b), sep)
	if len(parts) < 2 {
		return ""
	}
	return SaveName(parts[1])
}

func hasPathSeparator(s string) bool {
	return strings.ContainsAny(s, `/\`)
}
