package mainmenu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/mwinters/dexduel/game"
	"github.com/mwinters/dexduel/global"
	"github.com/mwinters/dexduel/rendering"
	"github.com/mwinters/dexduel/rendering/components"
	"github.com/mwinters/dexduel/views/quizview"
)

type MainMenuModel struct {
	buttons components.MenuButtons
	store   game.ScoreStore
	filter  game.PoolFilter
}

func NewModel(store game.ScoreStore) MainMenuModel {
	return newModelWithFilter(store, game.PoolAll)
}

func newModelWithFilter(store game.ScoreStore, filter game.PoolFilter) MainMenuModel {
	buttons := make([]components.ViewButton, 0, len(game.Modes)+2)

	for _, mode := range game.Modes {
		mode := mode

		best, err := store.HighScore(mode)
		if err != nil {
			log.Err(err).Str("mode", string(mode)).Msg("couldn't read high score for menu")
		}

		buttons = append(buttons, components.ViewButton{
			Name: mode.Title(),
			Hint: fmt.Sprintf("Best: %d", best),
			OnClick: func() tea.Model {
				return quizview.NewModel(mode, filter, store, func() tea.Model {
					return newModelWithFilter(store, filter)
				})
			},
		})
	}

	buttons = append(buttons, components.ViewButton{
		Name: "Move Pool: " + string(filter),
		OnClick: func() tea.Model {
			return newModelWithFilter(store, nextFilter(filter))
		},
	})
	buttons = append(buttons, components.ViewButton{
		Name: "Options",
		OnClick: func() tea.Model {
			return newOptionsModel(store, filter)
		},
	})

	return MainMenuModel{
		buttons: components.NewMenuButtons(buttons),
		store:   store,
		filter:  filter,
	}
}

func nextFilter(filter game.PoolFilter) game.PoolFilter {
	for i, f := range game.PoolFilters {
		if f == filter {
			return game.PoolFilters[(i+1)%len(game.PoolFilters)]
		}
	}

	return game.PoolAll
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "DexDuel!"
	sub := rendering.FaintStyle.Render("Trainer: " + global.Opt.LocalPlayerName)

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, sub, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, nil
	}

	return m, nil
}
