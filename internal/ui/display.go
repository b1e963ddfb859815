// Package ui provides terminal rendering using tcell.
package ui

import "context"

// KeyCode identifies a key independent of the terminal library.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyF11
	KeyRune
	KeyOther
)

// Key is a single key press.
type Key struct {
	Code KeyCode
	Rune rune // Set when Code is KeyRune
	Ctrl bool
	Alt  bool
}

// Display is the window the game draws into and reads keys from.
type Display interface {
	// Blit composites the console onto the display at 1:1 scale.
	Blit(con *Console)
	// Flush presents the composited frame and waits out the frame limiter.
	Flush(ctx context.Context) error
	// WaitForKeypress blocks until a key is pressed. It returns the zero Key
	// once the window has been closed.
	WaitForKeypress() Key
	WindowClosed() bool
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	// SetFPS sets the target frame rate used by Flush.
	SetFPS(fps int)
	Close()
}
