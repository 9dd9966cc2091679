package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/mwinters/dexduel/game"
	"github.com/mwinters/dexduel/global"
	"github.com/mwinters/dexduel/rendering"
)

type optionsModel struct {
	nameInput textinput.Model
	store     game.ScoreStore
	filter    game.PoolFilter
}

func newOptionsModel(store game.ScoreStore, filter game.PoolFilter) optionsModel {
	input := textinput.New()
	input.Placeholder = "Trainer name"
	input.SetValue(global.Opt.LocalPlayerName)
	input.CharLimit = 24
	input.Focus()

	return optionsModel{
		nameInput: input,
		store:     store,
		filter:    filter,
	}
}

func (m optionsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m optionsModel) View() string {
	return rendering.GlobalCenter(lipgloss.JoinVertical(
		lipgloss.Center,
		"Options",
		m.nameInput.View(),
		rendering.FaintStyle.Render("enter to save, esc to go back"),
	))
}

func (m optionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return newModelWithFilter(m.store, m.filter), nil
		}

		if key.Matches(msg, global.SelectKey) {
			if name := m.nameInput.Value(); name != "" {
				global.Opt.LocalPlayerName = name
			}
			if err := global.SaveConfig(); err != nil {
				log.Err(err).Msg("couldn't save config")
			}

			return newModelWithFilter(m.store, m.filter), nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)

	return m, cmd
}
