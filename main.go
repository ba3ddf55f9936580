package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/shayne/yargs"
	"golang.org/x/term"

	"msgbox/internal/config"
	"msgbox/internal/constants"
	apperrors "msgbox/internal/errors"
	"msgbox/internal/msgbox"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// GTK, Cocoa and GLFW all want the main thread; keep main on it
func init() {
	runtime.LockOSThread()
}

const usage = `Usage: msgbox [--title T] [--backend native,fyne,zenity,terminal] [-d] [message...]
       msgbox --init-config

Shows a modal error dialog and waits until it is dismissed.
The message is read from stdin when no message arguments are given.`

type cliFlags struct {
	Title      string `flag:"title" short:"t" help:"window title (default \"Error\")"`
	Backend    string `flag:"backend" short:"b" help:"comma-separated backend order: native, fyne, zenity, terminal"`
	Debug      bool   `flag:"debug" short:"d" help:"enable debug mode"`
	InitConfig bool   `flag:"init-config" help:"write the default configuration file and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if hasHelpFlag(args) {
		fmt.Fprintln(os.Stdout, usage)
		return 0
	}
	result, err := yargs.ParseFlags[cliFlags](args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	flags := result.Flags
	debugMode = flags.Debug

	configManager := config.NewManager()
	if flags.InitConfig {
		if err := configManager.Save(config.Default()); err != nil {
			log.Printf("Error writing configuration: %v", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, configManager.Path())
		return 0
	}

	cfg, err := configManager.Load()
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return 1
	}
	if cfg.Debug {
		debugMode = true
	}
	msgbox.SetDebug(debugPrint)

	if flags.Backend != "" {
		cfg.Backend.Order = config.ParseBackendList(flags.Backend)
	}

	stdinIsTTY := term.IsTerminal(int(os.Stdin.Fd()))
	message, err := resolveMessage(result.Args, os.Stdin, stdinIsTTY)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	req := msgbox.Request{Message: message, Title: resolveTitle(flags.Title)}
	debugPrint("showing %q via %v", req.Title, cfg.Backend.Order)

	backends := msgbox.NewBackends(cfg)
	if fb, ok := hostedFyne(backends, os.Getenv); ok {
		return exitCode(showWithFyne(fb, backends, req))
	}
	return exitCode(showOnMainThread(backends, req))
}

// showOnMainThread hands the main thread to the dispatcher while a
// goroutine waits for the dialog
func showOnMainThread(backends []msgbox.Backend, req msgbox.Request) error {
	dispatcher := msgbox.NewDispatcher()
	displayer := msgbox.NewDisplayer(backends, msgbox.WithDispatcher(dispatcher))

	result := make(chan error, 1)
	go func() {
		result <- displayer.Show(req)
		dispatcher.Close()
	}()
	dispatcher.Loop()
	return <-result
}

// showWithFyne runs the fyne loop on the main thread; the dialog is
// requested from a goroutine once the loop is up. If the loop ends without
// ever starting, the remaining backends get the main thread instead.
func showWithFyne(fb *msgbox.FyneBackend, backends []msgbox.Backend, req msgbox.Request) error {
	displayer := msgbox.NewDisplayer(backends)
	defer displayer.Close()

	result := make(chan error, 1)
	go func() {
		if err := waitForLoop(fb.Started(), fb.Stopped()); err != nil {
			result <- err
			return
		}
		result <- displayer.Show(req)
		fb.Quit()
	}()
	fb.Run()

	err := <-result
	if errors.Is(err, errLoopNotStarted) {
		debugPrint("fyne event loop never started, trying %d other backends", len(backends)-1)
		return showOnMainThread(backends[1:], req)
	}
	return err
}

var errLoopNotStarted = errors.New("fyne event loop never started")

// waitForLoop blocks until the loop has started or has stopped
func waitForLoop(started, stopped <-chan struct{}) error {
	select {
	case <-started:
		return nil
	default:
	}
	select {
	case <-started:
		return nil
	case <-stopped:
		return errLoopNotStarted
	}
}

// hostedFyne returns the fyne backend when it is the preferred one and a
// display is there for its loop
func hostedFyne(backends []msgbox.Backend, getenv func(string) string) (*msgbox.FyneBackend, bool) {
	if len(backends) == 0 {
		return nil, false
	}
	fb, ok := backends[0].(*msgbox.FyneBackend)
	if !ok {
		return nil, false
	}
	if err := fb.CanHost(getenv); err != nil {
		debugPrint("not hosting fyne: %v", err)
		return nil, false
	}
	return fb, true
}

// resolveMessage joins the positional arguments, or reads stdin when there
// are none. A single trailing newline from stdin is dropped.
func resolveMessage(args []string, stdin io.Reader, stdinIsTTY bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if stdinIsTTY {
		return "", errors.New("no message given")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading message from stdin: %w", err)
	}
	message := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(message, "\r"), nil
}

func resolveTitle(title string) string {
	if title == "" {
		return constants.DefaultTitle
	}
	return title
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	log.Printf("Error: %v", err)
	if errors.Is(err, apperrors.ErrNoBackend) {
		fmt.Fprintf(os.Stderr, "no dialog backend could be used; set %s or --backend\n", constants.EnvBackend)
	}
	return 1
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
