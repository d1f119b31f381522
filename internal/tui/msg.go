package tui

// activeKeyMsg feeds an accepted selection back into a controlled deck.
type activeKeyMsg struct{ key string }
