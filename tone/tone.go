// Package tone is the feedback-sound seam. Real synthesis is out of scope;
// the default player just rings the terminal bell on a wrong answer.
package tone

import "os"

type Player interface {
	Verdict(correct bool)
}

type Bell struct{}

func (Bell) Verdict(correct bool) {
	if !correct {
		// BEL; harmless if the terminal has the bell disabled
		os.Stderr.Write([]byte{'\a'})
	}
}

// Mute is used by tests and headless runs.
type Mute struct{}

func (Mute) Verdict(bool) {}
