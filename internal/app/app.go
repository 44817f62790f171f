package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/linepicker/internal/entry"
	"github.com/atomicstack/linepicker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	Title       string
	FooterText  string
	MultiSelect bool
	VisibleRows int
	Width       int
	Height      int
	ShowFooter  bool
}

// Result is the session outcome handed back to the caller.
type Result = ui.Result

// ErrNotATerminal is returned when the picker cannot draw its UI because
// stderr is not attached to a terminal.
var ErrNotATerminal = errors.New("stderr is not a terminal")

// Run bootstraps and executes the Bubble Tea program. The UI renders to
// stderr and reads keys from the controlling terminal, leaving stdin and
// stdout free for the line protocol. The terminal is restored to its
// original mode on every exit path, including cancellation and panics.
func Run(cfg Config, entries []entry.Entry) (Result, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return Result{}, ErrNotATerminal
	}
	input, cleanup, err := openInput()
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	model := ui.NewModel(entries, ui.Config{
		Title:       cfg.Title,
		FooterText:  cfg.FooterText,
		MultiSelect: cfg.MultiSelect,
		VisibleRows: cfg.VisibleRows,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
	})
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(input))
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Result(), nil
	}
	return Result{Cancelled: true}, nil
}

// openInput returns the keyboard source. When stdin carries piped entry
// data the controlling terminal is opened directly.
func openInput() (*os.File, func(), error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, func() {}, nil
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open controlling terminal: %w", err)
	}
	return tty, func() { tty.Close() }, nil
}
