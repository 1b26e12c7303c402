package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matex-shoes/storefront/cmd/storefront/ui"
	"github.com/matex-shoes/storefront/internal/storefront"
	"github.com/matex-shoes/storefront/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	client := storefront.NewClient(cfg.APIURL)
	session := storefront.NewSession(client, cfg.ForceSoldOutIDs)

	p := tea.NewProgram(ui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(1)
	}
}
