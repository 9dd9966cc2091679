package quizview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwinters/dexduel/game"
	"github.com/mwinters/dexduel/rendering"
)

func (m QuizModel) View() string {
	session := m.engine.Session()

	header := fmt.Sprintf("%s — Streak: %d  Best: %d", session.Mode.Title(), session.Score, session.Best)

	var body string
	switch session.Status {
	case game.StatusLoading:
		body = "Loading..."

	case game.StatusGameOver:
		body = m.gameOverView(session)

	default:
		if session.Round == nil {
			body = lipgloss.JoinVertical(
				lipgloss.Center,
				"No question could be drawn from the current move pool.",
				rendering.FaintStyle.Render("press r to redraw, esc for menu"),
			)
			break
		}

		switch session.Mode {
		case game.ModeStatDuel:
			body = m.statDuelView(session)
		case game.ModeMoveMatch:
			body = m.moveMatchView(session)
		case game.ModeTrueFalse:
			body = m.trueFalseView(session)
		case game.ModeDexGuess:
			body = m.dexGuessView(session)
		}
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, "", body))
}

func (m QuizModel) statDuelView(session game.Session) string {
	r := session.Round
	question := fmt.Sprintf("Who has the higher %s?", game.StatLabels[r.Stat])

	switch session.Status {
	case game.StatusRevealing:
		progress := m.revealProgress()
		return lipgloss.JoinVertical(
			lipgloss.Center,
			question,
			lipgloss.JoinHorizontal(
				lipgloss.Center,
				m.statPanel(r.Left, r.Stat, progress, rendering.PanelStyle),
				m.statPanel(r.Right, r.Stat, progress, rendering.PanelStyle),
			),
		)

	case game.StatusResult:
		leftStyle, rightStyle := rendering.WrongPanelStyle, rendering.CorrectPanelStyle
		if game.Winner(r) == game.SideLeft {
			leftStyle, rightStyle = rightStyle, leftStyle
		}

		return lipgloss.JoinVertical(
			lipgloss.Center,
			question,
			lipgloss.JoinHorizontal(
				lipgloss.Center,
				m.statPanel(r.Left, r.Stat, 1, leftStyle),
				m.statPanel(r.Right, r.Stat, 1, rightStyle),
			),
			m.verdictLine(session),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			m.choicePanel(r.Left.Name, game.SideLeft),
			m.choicePanel(r.Right.Name, game.SideRight),
		),
		rendering.FaintStyle.Render("←/→ to pick, enter to lock in"),
	)
}

// statPanel shows a creature with its stat bar filled to the eased progress.
func (m QuizModel) statPanel(c *game.Creature, stat string, progress float64, style lipgloss.Style) string {
	shown := int(progress * float64(c.Stat(stat)))
	bar := rendering.StatBar(shown, maxStatValue)

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		game.DisplayName(c.Name),
		bar,
		fmt.Sprintf("%s: %d", game.StatLabels[stat], shown),
	))
}

// Dataset stats top out below this; used to scale the reveal bars.
const maxStatValue = 255

func (m QuizModel) moveMatchView(session game.Session) string {
	r := session.Round
	question := fmt.Sprintf("Who learns %s?", game.DisplayName(r.Move))

	if session.Status == game.StatusResult {
		leftStyle, rightStyle := rendering.WrongPanelStyle, rendering.CorrectPanelStyle
		if game.Winner(r) == game.SideLeft {
			leftStyle, rightStyle = rightStyle, leftStyle
		}

		return lipgloss.JoinVertical(
			lipgloss.Center,
			question,
			lipgloss.JoinHorizontal(
				lipgloss.Center,
				leftStyle.Render(game.DisplayName(r.Left.Name)),
				rightStyle.Render(game.DisplayName(r.Right.Name)),
			),
			m.verdictLine(session),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			m.choicePanel(r.Left.Name, game.SideLeft),
			m.choicePanel(r.Right.Name, game.SideRight),
		),
		rendering.FaintStyle.Render("←/→ to pick, enter to lock in"),
	)
}

func (m QuizModel) trueFalseView(session game.Session) string {
	r := session.Round
	statement := fmt.Sprintf("%s learns %s.", game.DisplayName(r.Focus.Name), game.DisplayName(r.Move))

	if session.Status == game.StatusResult {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			statement,
			m.verdictLine(session),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		statement,
		rendering.FaintStyle.Render("t for true, f for false"),
	)
}

func (m QuizModel) dexGuessView(session game.Session) string {
	r := session.Round

	if session.Status == game.StatusResult {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			rendering.PanelStyle.Width(60).Render(r.Focus.Flavor),
			fmt.Sprintf("It was %s!", game.DisplayName(r.Answer)),
			m.verdictLine(session),
		)
	}

	lines := []string{
		rendering.PanelStyle.Width(60).Render(r.Focus.Flavor),
		m.input.View(),
	}
	for _, name := range m.completions {
		lines = append(lines, rendering.FaintStyle.Render(game.DisplayName(name)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m QuizModel) gameOverView(session game.Session) string {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Streak: %d", session.Score),
		fmt.Sprintf("Best: %d", session.Best),
	}

	if r := session.Round; r != nil && session.Mode == game.ModeDexGuess {
		lines = append(lines, fmt.Sprintf("It was %s.", game.DisplayName(r.Answer)))
	}

	lines = append(lines, rendering.FaintStyle.Render("r to play again, esc for menu"))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m QuizModel) choicePanel(name string, side int) string {
	style := rendering.PanelStyle
	if m.choice == side {
		style = rendering.HighlightedPanelStyle
	}

	return style.Render(game.DisplayName(name))
}

func (m QuizModel) verdictLine(session game.Session) string {
	if session.Correct {
		return rendering.CorrectStyle.Render("Correct!")
	}

	return rendering.WrongStyle.Render("Wrong!")
}
