package game

// revealDoneMsg is sent when the feedback display period ends. It carries the
// session and reveal it was scheduled for so stale ticks can be dropped.
type revealDoneMsg struct {
	sessionID string
	seq       int
}

// nextMsg is sent when the Next button is pressed.
type nextMsg struct{}
