package game

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Status is the session's position in the quiz loop.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusRevealing
	StatusResult
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusRevealing:
		return "revealing"
	case StatusResult:
		return "result"
	case StatusGameOver:
		return "gameover"
	}

	return "unknown"
}

const (
	// RevealDuration is how long the stat duel bar animation runs before the
	// verdict shows, whether or not any frames actually rendered.
	RevealDuration = 1500 * time.Millisecond

	// ResultPause is the hold on the verdict screen before the next round or
	// game over. Dex guess skips it on a wrong answer.
	ResultPause = 1200 * time.Millisecond
)

// EaseOutCubic maps animation progress in [0,1] through 1-(1-p)^3. Display
// only; state transitions key off the deadline, not the curve.
func EaseOutCubic(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	inv := 1 - p
	return 1 - inv*inv*inv
}

// Session is the complete state of one play-through. It is a plain value:
// the Engine owns the single mutable copy and hands out snapshots, so the
// presentation layer can never mutate engine state directly.
type Session struct {
	Mode    Mode
	Status  Status
	Round   *Round
	Guess   Guess
	Correct bool
	Score   int
	Best    int
	CarryID int

	// Gen identifies one run. Scheduled tasks are tagged with the generation
	// they were created under; a task whose generation is stale is dropped,
	// which is what makes timer cancellation on restart airtight. Generations
	// come from a process-wide counter, never reused across engines, so a
	// timer left over from an abandoned view can't fire into a freshly built
	// session for the same mode either.
	Gen int
}

var genCounter atomic.Int64

func nextGen() int {
	return int(genCounter.Add(1))
}

// Event is an input to the session transition function: either a forwarded
// user action or a fired timer.
type Event interface {
	isEvent()
}

type (
	// StartEvent moves a loaded session into ready with its first round.
	StartEvent struct{}
	// GuessEvent submits the player's answer for the current round.
	GuessEvent struct{ Guess Guess }
	// RedrawEvent retries round generation after a silent stall.
	RedrawEvent struct{}
	// RevealDoneEvent fires when the stat duel reveal deadline passes.
	RevealDoneEvent struct{}
	// ResultDoneEvent fires when the verdict pause ends.
	ResultDoneEvent struct{}
	// RestartEvent leaves game over for a fresh run.
	RestartEvent struct{}
)

func (StartEvent) isEvent()      {}
func (GuessEvent) isEvent()      {}
func (RedrawEvent) isEvent()     {}
func (RevealDoneEvent) isEvent() {}
func (ResultDoneEvent) isEvent() {}
func (RestartEvent) isEvent()    {}

// Task is a timer the caller must schedule. When it fires, feed its Event
// back through Engine.ApplyTimed with the recorded generation.
type Task struct {
	Gen   int
	After time.Duration
	Event Event
}

// Engine drives one session. All access happens on the single control
// goroutine (the bubbletea update loop); there is no locking by design.
type Engine struct {
	generator *Generator
	store     ScoreStore
	session   Session

	// constraints for the next stat duel draw: the carried survivor and the
	// pair just played. Kept on the engine so a manual redraw after a stall
	// retries under the same constraints instead of dropping the streak.
	carry     *Creature
	prevLeft  int
	prevRight int
}

func NewEngine(mode Mode, generator *Generator, store ScoreStore) *Engine {
	best, err := store.HighScore(mode)
	if err != nil {
		log.Err(err).Str("mode", string(mode)).Msg("couldn't read high score")
	}

	return &Engine{
		generator: generator,
		store:     store,
		session: Session{
			Mode:   mode,
			Status: StatusLoading,
			Best:   best,
			Gen:    nextGen(),
		},
	}
}

// Session returns a snapshot for rendering.
func (e *Engine) Session() Session {
	return e.session
}

// ApplyTimed delivers a timer-driven event. Events from a stale generation
// are dropped; a late callback can never mutate a session it doesn't belong
// to.
func (e *Engine) ApplyTimed(gen int, ev Event) []Task {
	if gen != e.session.Gen {
		log.Debug().Int("gen", gen).Int("current", e.session.Gen).Msg("dropping stale timer event")
		return nil
	}

	return e.Apply(ev)
}

// Apply runs the transition function for one event and returns any timers to
// schedule. Events that don't apply to the current status are ignored.
func (e *Engine) Apply(ev Event) []Task {
	s := e.session

	switch ev := ev.(type) {
	case StartEvent:
		if s.Status != StatusLoading {
			return nil
		}
		s.Status = StatusReady
		e.carry, e.prevLeft, e.prevRight = nil, 0, 0
		e.nextRound(&s)

	case RedrawEvent:
		if s.Status != StatusReady || s.Round != nil {
			return nil
		}
		// same constraints as the draw that stalled, so a redraw after a won
		// stat duel keeps the carried survivor and still can't repeat the pair
		e.nextRound(&s)

	case GuessEvent:
		if s.Status != StatusReady || s.Round == nil {
			return nil
		}
		s.Guess = ev.Guess

		if s.Mode == ModeStatDuel {
			s.Status = StatusRevealing
			e.session = s
			return []Task{{Gen: s.Gen, After: RevealDuration, Event: RevealDoneEvent{}}}
		}

		e.session = s
		return e.enterResult()

	case RevealDoneEvent:
		if s.Status != StatusRevealing {
			return nil
		}
		return e.enterResult()

	case ResultDoneEvent:
		if s.Status != StatusResult {
			return nil
		}
		if s.Correct {
			s.Score++
			s.Status = StatusReady

			e.carry, e.prevLeft, e.prevRight = e.advanceCarry(&s)
			e.nextRound(&s)
		} else {
			e.gameOver(&s)
		}

	case RestartEvent:
		if s.Status != StatusGameOver {
			return nil
		}
		s = Session{
			Mode:   s.Mode,
			Status: StatusReady,
			Best:   s.Best,
			Gen:    nextGen(),
		}
		e.carry, e.prevLeft, e.prevRight = nil, 0, 0
		e.nextRound(&s)
	}

	e.session = s
	return nil
}

// enterResult computes the verdict and either pauses on it or, for a wrong
// dex guess, ends the game immediately.
func (e *Engine) enterResult() []Task {
	s := e.session
	s.Status = StatusResult
	s.Correct = Check(s.Round, s.Guess)

	if !s.Correct && s.Mode == ModeDexGuess {
		e.gameOver(&s)
		e.session = s
		return nil
	}

	e.session = s
	return []Task{{Gen: s.Gen, After: ResultPause, Event: ResultDoneEvent{}}}
}

// advanceCarry applies the stat duel carry-over rule after a won round: the
// member of the pair that was NOT carried into it survives as the next left,
// so the engine alternates survivors instead of pinning one creature, and
// the winner's id becomes the new carry marker. Returns the survivor plus
// the pair just played, which the generator must not repeat.
func (e *Engine) advanceCarry(s *Session) (*Creature, int, int) {
	if s.Mode != ModeStatDuel || s.Round == nil {
		return nil, 0, 0
	}

	r := s.Round
	winner := r.Left
	if Winner(r) == SideRight {
		winner = r.Right
	}

	var survivor *Creature
	switch s.CarryID {
	case r.Left.ID:
		survivor = r.Right
	case r.Right.ID:
		survivor = r.Left
	default:
		// first win of the run, nothing was carried in
		survivor = winner
	}

	s.CarryID = winner.ID
	return survivor, r.Left.ID, r.Right.ID
}

// nextRound asks the generator for a question under the engine's current
// draw constraints. On ErrNoRound the session stays in ready with no round;
// the view offers a manual redraw.
func (e *Engine) nextRound(s *Session) {
	round, err := e.generator.Next(s.Mode, e.carry, e.prevLeft, e.prevRight)
	if err != nil {
		log.Warn().Err(err).Str("mode", string(s.Mode)).Msg("round generation stalled")
		s.Round = nil
		return
	}

	s.Round = round
}

// gameOver persists the best score. Zero scores are never written; the store
// itself also refuses to let a high score decrease.
func (e *Engine) gameOver(s *Session) {
	s.Status = StatusGameOver

	if s.Score > s.Best {
		s.Best = s.Score
	}

	if s.Score > 0 {
		if err := e.store.SetHighScore(s.Mode, s.Score); err != nil {
			log.Err(err).Str("mode", string(s.Mode)).Msg("couldn't persist high score")
		}
	}
}
