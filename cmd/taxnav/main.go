package main

import (
	"errors"
	"flag"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taxnav/internal/adapters/filesystem"
	"taxnav/internal/adapters/tui"
	"taxnav/internal/application"
	"taxnav/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.RootPath(), "path to the taxonomy root")
	historyFlag := flag.String("history", config.HistoryPath(), "path to the history file")
	flag.Parse()

	store := filesystem.NewStore()

	nav, err := application.NewNavigator(store, *rootFlag)
	if err != nil {
		log.Fatal("failed to open taxonomy root", "root", *rootFlag, "err", err)
	}

	history, err := tui.LoadHistory(*historyFlag)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("could not read history", "path", *historyFlag, "err", err)
	}

	app := tui.NewApp(nav, history)

	p := tea.NewProgram(app)
	model, err := p.Run()
	if err != nil {
		log.Fatal("terminal error", "err", err)
	}

	if a, ok := model.(*tui.App); ok {
		if err := tui.SaveHistory(*historyFlag, a.History()); err != nil {
			log.Warn("could not write history", "path", *historyFlag, "err", err)
		}
	}
}
