package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}

	if cfg.DebugLog {
		f, err := tea.LogToFile(filepath.Join(cfg.DataDir, "debug.log"), "snapgrid")
		if err != nil {
			log.Fatalf("open debug log: %v", err)
		}
		defer f.Close()
	} else {
		// Nothing may write to the terminal behind Bubble Tea's back.
		log.SetOutput(io.Discard)
	}

	tokens := newTokenStore(filepath.Join(cfg.DataDir, "session"))
	api := newAPIClient(cfg.AuthBaseURL, cfg.ContentBaseURL)

	p := tea.NewProgram(newModel(cfg, api, tokens), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// logf is the app-wide debug log. It goes to the debug file when enabled
// and nowhere otherwise; user-facing feedback is the status line's job.
func logf(format string, args ...any) {
	log.Printf(format, args...)
}
