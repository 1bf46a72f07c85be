// Package shell runs the interactive console menus for creating and loading backups.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raoulx24/lcsave-backup/internal/logging"
	"github.com/raoulx24/lcsave-backup/internal/savefile"
)

// clears the screen and homes the cursor
const clearScreen = "\033[2J\033[H"

// Accessor is the part of the save directory the shell drives.
type Accessor interface {
	ListSaves() []savefile.SaveName
	ListBackups() []savefile.BackupName
	CreateBackup(ctx context.Context, save savefile.SaveName) (savefile.BackupName, int64, error)
	RestoreBackup(ctx context.Context, backup savefile.BackupName) (int64, error)
}

// Shell is a synchronous menu loop reading one line per prompt.
type Shell struct {
	dir Accessor
	in  *bufio.Reader
	out io.Writer
	log logging.Logger

	okStyle  lipgloss.Style
	errStyle lipgloss.Style
}

// New creates a shell. Colors are only emitted when out is a terminal.
func New(dir Accessor, in io.Reader, out io.Writer, log logging.Logger) *Shell {
	r := lipgloss.NewRenderer(out)
	return &Shell{
		dir:      dir,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		okStyle:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		errStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Run shows the main menu until input ends. There is no exit option;
// interactive sessions end when the process is interrupted.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.clear()
		fmt.Fprint(s.out, "\n\nChoose an option:\n1. Create a backup\n2. Load a backup\n\n: ")

		line, err := s.readLine()
		if err != nil {
			return endOfInput(err)
		}

		switch line {
		case "1":
			err = s.createFlow(ctx)
		case "2":
			err = s.loadFlow(ctx)
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) createFlow(ctx context.Context) error {
	save, ok, err := choose(s, "Current saves", s.dir.ListSaves())
	if err != nil || !ok {
		return err
	}

	if _, _, err := s.dir.CreateBackup(ctx, save); err != nil {
		s.log.Debug("backup of %s failed: %v", save, err)
		s.failure(err)
	} else {
		s.success("Backup created successfully!")
	}
	return s.acknowledge()
}

func (s *Shell) loadFlow(ctx context.Context) error {
	backup, ok, err := choose(s, "Current backups", s.dir.ListBackups())
	if err != nil || !ok {
		return err
	}

	if _, err := s.dir.RestoreBackup(ctx, backup); err != nil {
		s.log.Debug("restore of %s failed: %v", backup, err)
		s.failure(err)
	} else {
		s.success("Backup loaded successfully!")
	}
	return s.acknowledge()
}

// choose redraws the numbered list until a valid number or an empty line is entered.
// ok is false when the user backed out.
func choose[T ~string](s *Shell, header string, items []T) (item T, ok bool, err error) {
	for {
		s.clear()
		fmt.Fprintf(s.out, "%s:\n\n%s\n\nChoose a number:\n", header, formatList(items))

		line, err := s.readLine()
		if err != nil {
			return item, false, err
		}
		if line == "" {
			return item, false, nil
		}
		if i, valid := parseIndex(line, len(items)); valid {
			return items[i-1], true, nil
		}
	}
}

func formatList[T ~string](items []T) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = strconv.Itoa(i+1) + ". " + string(it)
	}
	return strings.Join(lines, "\n")
}

// parseIndex accepts ASCII digits naming an entry in [1, count].
func parseIndex(s string, count int) (int, bool) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n, true
}

// readLine returns the next line without surrounding whitespace.
// A final line without a newline is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) acknowledge() error {
	_, err := s.readLine()
	return err
}

func (s *Shell) clear() {
	fmt.Fprint(s.out, clearScreen)
}

func (s *Shell) success(msg string) {
	fmt.Fprintln(s.out, s.okStyle.Render(msg))
}

func (s *Shell) failure(err error) {
	fmt.Fprintln(s.out, s.errStyle.Render("Error: "+err.Error()))
}

// endOfInput turns a closed stdin into a normal return.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}
