// Package savedir lists, backs up and restores save files in the game's save directory.
package savedir

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/raoulx24/lcsave-backup/internal/config"
	"github.com/raoulx24/lcsave-backup/internal/fs"
	"github.com/raoulx24/lcsave-backup/internal/logging"
	"github.com/raoulx24/lcsave-backup/internal/savefile"
)

// ErrBackupExists is returned when a backup with the same name is already present,
// e.g. two backups of one save within the same second.
var ErrBackupExists = errors.New("backup already exists")

// Dir is the save directory accessor. Backups are written next to the saves.
type Dir struct {
	path string
	fs   fs.FS
	log  logging.Logger
	now  func() time.Time
}

// New creates an accessor for the directory resolved in layout.
func New(layout *config.Layout, log logging.Logger, filesystem fs.FS) *Dir {
	if filesystem == nil {
		filesystem = fs.New()
	}
	log.Debug("save directory: %s", layout.Dir)
	return &Dir{
		path: layout.Dir,
		fs:   filesystem,
		log:  log,
		now:  time.Now,
	}
}

// Path returns the save directory.
func (d *Dir) Path() string { return d.path }

// ListByPrefix returns the names of entries starting with prefix, in enumeration order.
// An unreadable directory yields nil.
func (d *Dir) ListByPrefix(prefix string) []string {
	names, err := d.fs.ReadDirNames(d.path)
	if err != nil {
		d.log.Debug("reading save directory %s: %v", d.path, err)
		return nil
	}

	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// ListSaves returns the save files in enumeration order.
// Names containing "_" are left out since a backup of them could not be restored.
func (d *Dir) ListSaves() []savefile.SaveName {
	var saves []savefile.SaveName
	for _, name := range d.ListByPrefix(savefile.SavePrefix) {
		save, err := savefile.ParseSaveName(name)
		if err != nil {
			d.log.Debug("skipping %s: %v", name, err)
			continue
		}
		saves = append(saves, save)
	}
	return saves
}

// ListBackups returns the backups in reverse enumeration order, which puts the
// newest first when the filesystem enumerates in creation or name order.
func (d *Dir) ListBackups() []savefile.BackupName {
	var backups []savefile.BackupName
	for _, name := range d.ListByPrefix(savefile.BackupSavePrefix) {
		backup, err := savefile.ParseBackupName(name)
		if err != nil {
			d.log.Debug("skipping %s: %v", name, err)
			continue
		}
		backups = append(backups, backup)
	}
	slices.Reverse(backups)
	return backups
}

// CreateBackup copies save to a new backup named after the current local time.
func (d *Dir) CreateBackup(ctx context.Context, save savefile.SaveName) (savefile.BackupName, int64, error) {
	backup := savefile.NewBackupName(save, d.now())
	src := filepath.Join(d.path, string(save))
	dst := filepath.Join(d.path, string(backup))
	d.log.Debug("creating backup %s", dst)

	exists, err := d.fs.Exists(dst)
	if err != nil {
		return "", 0, fmt.Errorf("backing up %s: %w", save, err)
	}
	if exists {
		return "", 0, fmt.Errorf("backing up %s: %w: %s", save, ErrBackupExists, backup)
	}

	n, err := d.fs.CopyFile(ctx, src, dst)
	if err != nil {
		return "", 0, fmt.Errorf("backing up %s: %w", save, err)
	}
	d.log.Info("backup %s created (%d bytes)", backup, n)
	return backup, n, nil
}

// RestoreBackup copies backup over the save it was taken from.
// It panics if backup does not carry the backup prefix; names from
// ListBackups and savefile.ParseBackupName always do.
func (d *Dir) RestoreBackup(ctx context.Context, backup savefile.BackupName) (int64, error) {
	if !strings.HasPrefix(string(backup), savefile.BackupPrefix) {
		panic(fmt.Sprintf("invalid backup filename: %q", backup))
	}

	save := backup.SaveName()
	src := filepath.Join(d.path, string(backup))
	dst := filepath.Join(d.path, string(save))
	d.log.Debug("restoring %s onto %s", src, dst)

	n, err := d.fs.CopyFile(ctx, src, dst)
	if err != nil {
		return 0, fmt.Errorf("restoring %s: %w", backup, err)
	}
	d.log.Info("backup %s restored onto %s (%d bytes)", backup, save, n)
	return n, nil
}
