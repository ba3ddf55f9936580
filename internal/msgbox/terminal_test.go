package msgbox

import (
	"os"
	"strings"
	"testing"

	apperrors "msgbox/internal/errors"
)

func TestTerminalInitRequiresTTY(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	b := NewTerminalBackend(r, w)
	if err := b.Init(); !apperrors.IsUnavailable(err) {
		t.Errorf("Expected pipes to be rejected, got %v", err)
	}
}

func TestTerminalInitWithTTY(t *testing.T) {
	b := NewTerminalBackend(os.Stdin, os.Stdout)
	b.isTerminal = func(int) bool { return true }

	if err := b.Init(); err != nil {
		t.Errorf("Expected Init to succeed on terminals, got %v", err)
	}
}

func TestTerminalInitNilStreams(t *testing.T) {
	b := NewTerminalBackend(nil, nil)
	if err := b.Init(); !apperrors.IsUnavailable(err) {
		t.Errorf("Expected unavailable without streams, got %v", err)
	}
}

func TestErrorTheme(t *testing.T) {
	theme := errorTheme()
	if theme == nil {
		t.Fatal("Expected a theme")
	}
	if !theme.Focused.NoteTitle.GetBold() {
		t.Error("Expected a bold note title")
	}
	if theme.Blurred.NoteTitle.GetForeground() != theme.Focused.NoteTitle.GetForeground() {
		t.Error("Expected blurred styles to match focused ones")
	}
}

func TestErrorNoteKeepsMessageVerbatim(t *testing.T) {
	testCases := []string{
		"File not found",
		"100% done %s %d",
		"snake_case_name and *stars* and `ticks`",
		`C:\path\to\file_1.txt`,
	}

	for _, message := range testCases {
		view := newErrorNote(Request{Message: message, Title: "Error"}).View()
		if !strings.Contains(view, message) {
			t.Errorf("Expected %q in note, got %q", message, view)
		}
	}
}
