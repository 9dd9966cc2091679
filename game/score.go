package game

// ScoreStore is the narrow persistence seam: one integer per mode, read once
// at engine startup, written on game over. Implementations must keep the
// stored value monotonically non-decreasing.
type ScoreStore interface {
	HighScore(mode Mode) (int, error)
	SetHighScore(mode Mode, score int) error
}

// MemoryScores is an in-process ScoreStore, used by tests and as the
// fallback when the score database can't be opened.
type MemoryScores map[Mode]int

func (m MemoryScores) HighScore(mode Mode) (int, error) {
	return m[mode], nil
}

func (m MemoryScores) SetHighScore(mode Mode, score int) error {
	if score > m[mode] {
		m[mode] = score
	}

	return nil
}
