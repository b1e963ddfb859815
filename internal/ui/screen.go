package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"
)

const helpText = "arrows: move  ctrl+enter/F11: fullscreen  esc: quit"

// ScreenConfig holds the root console settings.
type ScreenConfig struct {
	Width  int // Root console width in cells
	Height int // Root console height in cells
	Title  string
}

// Screen is a Display backed by a tcell terminal screen.
type Screen struct {
	screen     tcell.Screen
	cfg        ScreenConfig
	limiter    *rate.Limiter
	fullscreen bool
	closed     bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(cfg ScreenConfig) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s, cfg)
}

func newScreen(s tcell.Screen, cfg ScreenConfig) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, cfg: cfg}, nil
}

// Blit clears the terminal and copies the console onto it. Windowed mode
// draws at the origin with a status line below; fullscreen mode centres the
// console and drops the status line.
func (s *Screen) Blit(con *Console) {
	s.screen.Clear()

	rootW, rootH := s.rootSize()
	conW, conH := con.Size()

	offX, offY := 0, 0
	if s.fullscreen {
		offX = max(0, (rootW-conW)/2)
		offY = max(0, (rootH-conH)/2)
	}

	for y := 0; y < conH; y++ {
		for x := 0; x < conW; x++ {
			sx, sy := offX+x, offY+y
			if sx >= rootW || sy >= rootH {
				continue
			}
			cell, _ := con.Cell(x, y)
			style := tcell.StyleDefault.Foreground(cell.Foreground).Background(cell.Background)
			s.screen.SetContent(sx, sy, cell.Rune, nil, style)
		}
	}

	if !s.fullscreen && conH < rootH {
		s.drawText(0, conH, s.cfg.Title+"  "+helpText, rootW)
	}
}

// Flush shows the frame, then blocks until the frame limiter allows the next one.
func (s *Screen) Flush(ctx context.Context) error {
	s.screen.Show()
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}

// WaitForKeypress waits for the next key. Ctrl+C and a finalized screen
// both count as closing the window.
func (s *Screen) WaitForKeypress() Key {
	for !s.closed {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			s.closed = true
		case *tcell.EventKey:
			if isInterrupt(ev) {
				s.closed = true
				continue
			}
			return translateKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
	return Key{}
}

// WindowClosed reports whether the user closed the window.
func (s *Screen) WindowClosed() bool {
	return s.closed
}

// IsFullscreen reports whether the console is centred without a status line.
func (s *Screen) IsFullscreen() bool {
	return s.fullscreen
}

// SetFullscreen switches between windowed and fullscreen layout.
func (s *Screen) SetFullscreen(fullscreen bool) {
	s.fullscreen = fullscreen
}

// SetFPS limits Flush to fps frames per second. Zero or less disables the limit.
func (s *Screen) SetFPS(fps int) {
	if fps <= 0 {
		s.limiter = nil
		return
	}
	s.limiter = rate.NewLimiter(rate.Limit(fps), 1)
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// rootSize is the configured root console clipped to the terminal.
func (s *Screen) rootSize() (int, int) {
	w, h := s.screen.Size()
	return min(w, s.cfg.Width), min(h, s.cfg.Height)
}

func (s *Screen) drawText(x, y int, text string, maxWidth int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}

func translateKey(ev *tcell.EventKey) Key {
	mods := ev.Modifiers()
	k := Key{
		Ctrl: mods&tcell.ModCtrl != 0,
		Alt:  mods&tcell.ModAlt != 0,
	}

	switch ev.Key() {
	case tcell.KeyUp:
		k.Code = KeyUp
	case tcell.KeyDown:
		k.Code = KeyDown
	case tcell.KeyLeft:
		k.Code = KeyLeft
	case tcell.KeyRight:
		k.Code = KeyRight
	case tcell.KeyEnter:
		k.Code = KeyEnter
	case tcell.KeyEscape:
		k.Code = KeyEscape
	case tcell.KeyF11:
		k.Code = KeyF11
	case tcell.KeyRune:
		k.Code = KeyRune
		k.Rune = ev.Rune()
	default:
		k.Code = KeyOther
	}
	return k
}

var _ Display = (*Screen)(nil)
