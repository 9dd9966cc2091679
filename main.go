package main

import (
	"embed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/mwinters/dexduel/game"
	"github.com/mwinters/dexduel/global"
	"github.com/mwinters/dexduel/scoredb"
	"github.com/mwinters/dexduel/views/mainmenu"
)

//go:embed data
var dataFiles embed.FS

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// ESC never quits the program; views handle it to back out one screen
	newView, cmd := m.currentView.Update(msg)

	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	global.GlobalInit(dataFiles, true)

	var store game.ScoreStore

	db, err := scoredb.Open(global.Opt.ScoreDBLocation)
	if err != nil {
		// playable without persistence, high scores just won't survive
		log.Err(err).Msg("couldn't open score db, falling back to in-memory scores")
		store = game.MemoryScores{}
	} else {
		defer db.Close()
		store = db
	}

	m := model{
		currentView: mainmenu.NewModel(store),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("error running program")
	}
}
