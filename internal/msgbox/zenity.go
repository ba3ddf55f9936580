package msgbox

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"msgbox/internal/constants"
)

// runFunc runs a command to completion and returns its exit status and
// whatever it wrote to stderr
type runFunc func(name string, args ...string) (int, string, error)

func runCommand(name string, args ...string) (int, string, error) {
	var stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return 0, stderr.String(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), stderr.String(), nil
	}
	return -1, stderr.String(), err
}

// ZenityBackend shows the dialog through a zenity-compatible helper
// (zenity, qarma, matedialog). It works in builds without cgo.
type ZenityBackend struct {
	tools    []string
	tool     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	run      runFunc
}

// NewZenityBackend creates a backend probing tools on PATH in order
func NewZenityBackend(tools []string) *ZenityBackend {
	if len(tools) == 0 {
		tools = constants.DefaultZenityTools
	}
	return &ZenityBackend{
		tools:    tools,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func (b *ZenityBackend) Name() string { return constants.BackendZenity }

func (b *ZenityBackend) Init() error {
	if err := displayAvailable(b.getenv, b.Name()); err != nil {
		return err
	}
	for _, tool := range b.tools {
		if path, err := b.lookPath(tool); err == nil {
			b.tool = path
			dbg("zenity: using %s", path)
			return nil
		}
	}
	return unavailable(b.Name(), "none of %v found on PATH", b.tools)
}

// Display runs the helper and waits for it. Exit status 0 is OK, 1 is the
// window being closed; both count as dismissal. GTK also exits 1 when the
// advertised display cannot be opened, which stderr tells apart.
func (b *ZenityBackend) Display(req Request) error {
	code, stderr, err := b.run(b.tool, zenityArgs(req)...)
	if err != nil {
		return fmt.Errorf("running %s: %w", b.tool, err)
	}
	switch code {
	case 0:
		return nil
	case 1:
		if strings.Contains(stderr, "cannot open display") {
			return unavailable(b.Name(), "%s: %s", b.tool, strings.TrimSpace(stderr))
		}
		return nil
	default:
		return fmt.Errorf("%s exited with status %d", b.tool, code)
	}
}

// zenityArgs passes title and text as single arguments with markup off,
// so the strings reach the window verbatim
func zenityArgs(req Request) []string {
	return []string{
		"--error",
		"--no-markup",
		"--title=" + req.Title,
		"--text=" + req.Message,
		"--ok-label=" + constants.AcknowledgeLabel,
	}
}
