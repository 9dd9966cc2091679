package quizview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwinters/dexduel/game"
	"github.com/mwinters/dexduel/global"
	"github.com/mwinters/dexduel/tone"
)

// ~20 animation frames per second during the reveal
const revealTickTime = 50 * time.Millisecond

type QuizModel struct {
	engine *game.Engine
	ret    func() tea.Model
	player tone.Player

	choice      int
	input       textinput.Model
	completions []string

	revealStart   time.Time
	revealElapsed time.Duration
}

// taskMsg delivers an engine timer. The generation is checked by the engine
// itself; a msg scheduled before a restart, or by a view the player already
// backed out of, lands as a no-op.
type taskMsg struct {
	gen int
	ev  game.Event
}

// revealTickMsg drives the stat bar animation frames. Display only: the
// revealing -> result transition comes from its own taskMsg deadline, so a
// stalled frame can never hold the session in revealing.
type revealTickMsg struct {
	gen int
	t   time.Time
}

func NewModel(mode game.Mode, filter game.PoolFilter, store game.ScoreStore, ret func() tea.Model) QuizModel {
	pool := game.ResolvePool(filter, global.CURATED)
	generator := game.NewGenerator(global.CATALOG, pool, nil)
	engine := game.NewEngine(mode, generator, store)

	// the catalog is already in memory, loading resolves immediately
	engine.Apply(game.StartEvent{})

	input := textinput.New()
	input.Placeholder = "Who is it?"
	input.CharLimit = 32
	input.Focus()

	return QuizModel{
		engine: engine,
		ret:    ret,
		player: tone.Bell{},
		input:  input,
	}
}

func (m QuizModel) Init() tea.Cmd {
	if m.engine.Session().Mode == game.ModeDexGuess {
		return textinput.Blink
	}

	return nil
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	session := m.engine.Session()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			// dropping the model here is the cancellation: pending taskMsgs
			// address an engine no view owns anymore
			return m.ret(), nil
		}

		return m.handleKey(msg, session)

	case taskMsg:
		return m.applyTimed(msg.gen, msg.ev)

	case revealTickMsg:
		if msg.gen != session.Gen || session.Status != game.StatusRevealing {
			return m, nil
		}

		m.revealElapsed = time.Since(m.revealStart)
		return m, m.revealTick(session.Gen)
	}

	if session.Mode == game.ModeDexGuess && session.Status == game.StatusReady {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.completions = game.Autocomplete(global.CATALOG, m.input.Value())

		return m, cmd
	}

	return m, nil
}

func (m QuizModel) handleKey(msg tea.KeyMsg, session game.Session) (tea.Model, tea.Cmd) {
	switch session.Status {
	case game.StatusReady:
		if session.Round == nil {
			// silent stall; let the player ask for another draw
			if key.Matches(msg, global.RestartKey) {
				m.engine.Apply(game.RedrawEvent{})
			}
			return m, nil
		}

		return m.handleGuessKey(msg, session)

	case game.StatusGameOver:
		if key.Matches(msg, global.RestartKey) {
			return m.apply(game.RestartEvent{})
		}
	}

	return m, nil
}

func (m QuizModel) handleGuessKey(msg tea.KeyMsg, session game.Session) (tea.Model, tea.Cmd) {
	switch session.Mode {
	case game.ModeStatDuel, game.ModeMoveMatch:
		switch {
		case key.Matches(msg, global.MoveLeftKey):
			m.choice = game.SideLeft
		case key.Matches(msg, global.MoveRightKey):
			m.choice = game.SideRight
		case key.Matches(msg, global.SelectKey):
			return m.apply(game.GuessEvent{Guess: game.Guess{Side: m.choice}})
		}

	case game.ModeTrueFalse:
		switch {
		case key.Matches(msg, global.TrueKey):
			return m.apply(game.GuessEvent{Guess: game.Guess{Claim: true}})
		case key.Matches(msg, global.FalseKey):
			return m.apply(game.GuessEvent{Guess: game.Guess{Claim: false}})
		}

	case game.ModeDexGuess:
		if key.Matches(msg, global.SelectKey) {
			guess := m.input.Value()
			m.input.SetValue("")
			m.completions = nil

			return m.apply(game.GuessEvent{Guess: game.Guess{Text: guess}})
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.completions = game.Autocomplete(global.CATALOG, m.input.Value())

		return m, cmd
	}

	return m, nil
}

func (m QuizModel) apply(ev game.Event) (tea.Model, tea.Cmd) {
	before := m.engine.Session().Status
	tasks := m.engine.Apply(ev)

	return m.afterApply(before, tasks)
}

func (m QuizModel) applyTimed(gen int, ev game.Event) (tea.Model, tea.Cmd) {
	before := m.engine.Session().Status
	tasks := m.engine.ApplyTimed(gen, ev)

	return m.afterApply(before, tasks)
}

func (m QuizModel) afterApply(before game.Status, tasks []game.Task) (tea.Model, tea.Cmd) {
	session := m.engine.Session()
	cmds := make([]tea.Cmd, 0, len(tasks)+1)

	for _, task := range tasks {
		task := task
		cmds = append(cmds, tea.Tick(task.After, func(time.Time) tea.Msg {
			return taskMsg{gen: task.Gen, ev: task.Event}
		}))
	}

	if before != session.Status {
		switch session.Status {
		case game.StatusRevealing:
			m.revealStart = time.Now()
			m.revealElapsed = 0
			cmds = append(cmds, m.revealTick(session.Gen))

		case game.StatusResult, game.StatusGameOver:
			m.player.Verdict(session.Correct)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m QuizModel) revealTick(gen int) tea.Cmd {
	return tea.Tick(revealTickTime, func(t time.Time) tea.Msg {
		return revealTickMsg{gen: gen, t: t}
	})
}

// revealProgress is the eased animation progress in [0,1].
func (m QuizModel) revealProgress() float64 {
	return game.EaseOutCubic(float64(m.revealElapsed) / float64(game.RevealDuration))
}
