package sim

// ScoreKeeper tracks the current round's score and the best score seen
// since the keeper was created.
type ScoreKeeper struct {
	current int
	best    int
}

// Add increases the current score.
func (s *ScoreKeeper) Add(n int) {
	s.current += n
}

// Refresh raises best to current if current is higher.
func (s *ScoreKeeper) Refresh() {
	s.best = max(s.best, s.current)
}

// ResetRound zeroes the current score. Best is kept.
func (s *ScoreKeeper) ResetRound() {
	s.current = 0
}

// Current returns the current round's score.
func (s ScoreKeeper) Current() int {
	return s.current
}

// Best returns the best score.
func (s ScoreKeeper) Best() int {
	return s.best
}
