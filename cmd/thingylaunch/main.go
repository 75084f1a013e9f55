// Package main is the entry point for the thingylaunch popup launcher.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gahr/thingylaunch/internal/bookmark"
	"github.com/gahr/thingylaunch/internal/completion"
	"github.com/gahr/thingylaunch/internal/config"
	"github.com/gahr/thingylaunch/internal/history"
	"github.com/gahr/thingylaunch/internal/launcher"
	"github.com/gahr/thingylaunch/internal/spawn"
	"github.com/gahr/thingylaunch/internal/tui"
)

const version = "1.0.0"

const helpText = `thingylaunch - popup command launcher for the terminal

USAGE:
    thingylaunch [OPTIONS]

OPTIONS:
    -h, --help       Show this help message
    -v, --version    Show version information
    -fg COLOR        Foreground color (hex, e.g. "#d0d0d0")
    -bg COLOR        Background color (hex)
    --config PATH    Use an alternate config file
    --init           Create a template config file
    --no-history     Do not load or write command history
    --debug          Append diagnostics to debug.log

KEYBINDINGS:
    Enter        Run the command and exit
    Esc          Abort
    Tab          Cycle executable completions for the typed prefix
    Up/Down      Browse command history
    Left/Right   Move the cursor
    Home/End     Jump to start/end of line
    Ctrl+K       Clear the line
    Ctrl+W       Erase the previous word
    Ctrl+V       Paste the clipboard
    Alt+<key>    Run the bookmark bound to <key>

CONFIGURATION:
    Config file: ~/.config/thingylaunch/config.yaml
    Run 'thingylaunch --init' to create a template.
`

const configTemplate = `# thingylaunch configuration
# Location: ~/.config/thingylaunch/config.yaml

ui:
  foreground: "#000000"
  background: "#ffffff"
  # Width of the input field in terminal cells.
  width: 64

# Shell used to run commands. Empty means $SHELL, falling back to /bin/sh.
# shell: /bin/zsh

# Where command history is stored. Empty means
# ~/.config/thingylaunch/history.db
# history_file: ""

# Bookmarks: press Alt+<key> to run the command immediately.
# bookmarks:
#   f: firefox
#   t: xterm
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		noHistory   bool
		debug       bool
		configPath  string
		fgColor     string
		bgColor     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&noHistory, "no-history", false, "Do not load or write command history")
	flag.BoolVar(&debug, "debug", false, "Append diagnostics to debug.log")
	flag.StringVar(&configPath, "config", "", "Alternate config file")
	flag.StringVar(&fgColor, "fg", "", "Foreground color")
	flag.StringVar(&bgColor, "bg", "", "Background color")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("thingylaunch version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(configPath, fgColor, bgColor, noHistory, debug)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp wires the collaborators together and runs the popup.
func runApp(configPath, fgColor, bgColor string, noHistory, debug bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command-line colors win over the config file.
	if fgColor != "" {
		cfg.UI.Foreground = fgColor
	}
	if bgColor != "" {
		cfg.UI.Background = bgColor
	}

	var logger *log.Logger
	if debug {
		f, err := os.OpenFile("debug.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			logger = log.New(f, "thingylaunch: ", log.Ltime|log.Lshortfile)
		}
	}

	hist, err := openHistory(cfg, noHistory)
	if err != nil {
		// A locked or corrupt history database shouldn't keep the
		// launcher from coming up.
		fmt.Fprintf(os.Stderr, "Warning: %v (history disabled)\n", err)
		hist = history.NewMemory(nil)
	}
	defer hist.Close()

	books, err := bookmark.New(cfg.Bookmarks)
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	model := tui.New(cfg, tui.Deps{
		Completer: completion.New(completion.NewPathSource()),
		History:   hist,
		Bookmarks: books,
		Spawner:   spawn.New(cfg.Shell),
		Logger:    logger,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	if model.Status() == launcher.StatusLaunched {
		if err := model.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	return nil
}

func openHistory(cfg *config.Config, noHistory bool) (*history.Store, error) {
	if noHistory {
		return history.NewMemory(nil), nil
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return history.Open(path)
}
