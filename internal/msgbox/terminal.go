package msgbox

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"msgbox/internal/constants"
)

// TerminalBackend renders the dialog in the controlling terminal and waits
// for Enter. Used when no graphical toolkit is reachable. huh notes treat
// *, _ and backticks as emphasis, so the message is escaped to stay
// verbatim.
type TerminalBackend struct {
	in         *os.File
	out        *os.File
	isTerminal func(fd int) bool
}

// NewTerminalBackend creates a backend reading from in and drawing to out
func NewTerminalBackend(in, out *os.File) *TerminalBackend {
	return &TerminalBackend{
		in:         in,
		out:        out,
		isTerminal: term.IsTerminal,
	}
}

func (b *TerminalBackend) Name() string { return constants.BackendTerminal }

func (b *TerminalBackend) Init() error {
	if b.in == nil || b.out == nil {
		return unavailable(b.Name(), "no standard streams")
	}
	if !b.isTerminal(int(b.in.Fd())) || !b.isTerminal(int(b.out.Fd())) {
		return unavailable(b.Name(), "stdin and stdout are not both terminals")
	}
	return nil
}

// Display blocks until the note is acknowledged. Esc and Ctrl+C close it
// too, like the window close button would.
func (b *TerminalBackend) Display(req Request) error {
	form := huh.NewForm(huh.NewGroup(newErrorNote(req))).
		WithInput(b.in).
		WithOutput(b.out).
		WithTheme(errorTheme()).
		WithShowHelp(false)

	if err := form.Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	return nil
}

func newErrorNote(req Request) *huh.Note {
	return huh.NewNote().
		Title(req.Title).
		Description(noteEscaper.Replace(req.Message)).
		Next(true).
		NextLabel(constants.AcknowledgeLabel)
}

// noteEscaper backslash-escapes the characters huh renders as emphasis
var noteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
)

// errorTheme is the base huh theme with an error-red title and button
func errorTheme() *huh.Theme {
	theme := huh.ThemeBase()
	red := lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5F5F"}
	muted := lipgloss.AdaptiveColor{Light: "#424242", Dark: "#D0D0D0"}

	theme.Focused.Title = theme.Focused.Title.Foreground(red).Bold(true)
	theme.Focused.NoteTitle = theme.Focused.NoteTitle.Foreground(red).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.Next = theme.Focused.Next.Background(red).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(red)

	theme.Blurred = theme.Focused
	return theme
}
