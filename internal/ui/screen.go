// Package ui provides terminal rendering and input using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// baseStyle is the backdrop every frame is cleared to.
var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the drawing surface of the game: a tcell screen with mouse
// reporting on and the cursor hidden.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initialises s; tests pass a tcell.SimulationScreen.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(baseStyle)
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for the next terminal event. It returns nil once the
// screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear resets the back buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text from (x, y) and returns the column after it.
// Wide runes take two columns.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// DrawCentered writes text centred on row y.
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	s.DrawText(max((w-runewidth.StringWidth(text))/2, 0), y, text, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}
