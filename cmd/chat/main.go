package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sakhiai/internal/client"
	"sakhiai/internal/config"
	"sakhiai/internal/history"
	"sakhiai/internal/session"
	"sakhiai/internal/tui"
)

func main() {
	cfg := config.LoadClient()

	store := history.Open(cfg.StateDir)
	gateway := client.New(cfg.ServerURL)
	sess := session.New(gateway, store, time.Duration(cfg.ReplyDelayMs)*time.Millisecond)

	program := tea.NewProgram(
		tui.New(sess, cfg.StateDir),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sakhiai: %v\n", err)
		os.Exit(1)
	}
}
