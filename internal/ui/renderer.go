package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scavenger/internal/entity"
	"github.com/samdwyer/scavenger/internal/world"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	columns int
	rows    int
	originX int
	originY int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the scene for a columns x rows board plus its outer ring,
// then the HUD. While the banner is set only the banner is drawn.
func (r *Renderer) Render(scene *Scene, columns, rows int) {
	r.screen.Clear()
	r.layout(columns, rows)

	if banner := scene.Text(entity.TextBanner); banner != "" {
		_, h := r.screen.Size()
		r.screen.DrawCentered(h/2, banner, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
		r.screen.Show()
		return
	}

	for _, o := range scene.Objects() {
		x, y := r.cellToScreen(o.Pos)
		r.screen.SetContent(x, y, o.Glyph(), r.objectStyle(o))
	}

	food := scene.Text(entity.TextFood)
	r.screen.DrawText(r.originX, r.originY+rows+3, food, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.Show()
}

// layout centres the board on the screen.
func (r *Renderer) layout(columns, rows int) {
	r.columns, r.rows = columns, rows
	w, h := r.screen.Size()
	r.originX = max((w-(columns+2)*cellWidth)/2, 0)
	r.originY = max((h-(rows+4))/2, 0)
}

// cellToScreen maps a board position to a terminal cell. Board y grows
// upwards, terminal y grows downwards.
func (r *Renderer) cellToScreen(pos world.Vec) (int, int) {
	cx := int(math.Round(pos.X))
	cy := int(math.Round(pos.Y))
	return r.originX + (cx+1)*cellWidth, r.originY + (r.rows - cy)
}

// ScreenToCell maps a terminal position back to a board cell, as laid out
// by the last Render call.
func (r *Renderer) ScreenToCell(x, y int) world.Cell {
	return world.Cell{
		X: (x-r.originX)/cellWidth - 1,
		Y: r.rows - (y - r.originY),
	}
}

// objectStyle returns the style for an object, highlighting running animations.
func (r *Renderer) objectStyle(o *Object) tcell.Style {
	style := tcell.StyleDefault.Foreground(o.Def.TCellColor())
	switch o.Anim {
	case entity.AnimPlayerChop:
		return style.Background(tcell.ColorOlive).Bold(true)
	case entity.AnimPlayerHit:
		return style.Background(tcell.ColorMaroon).Bold(true)
	case entity.AnimEnemyAttack:
		return style.Reverse(true)
	}
	if o.Def.ID == entity.PlayerPrefab {
		return style.Bold(true)
	}
	return style
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string) {
	_, h := r.screen.Size()
	r.screen.DrawText(0, h-1, msg, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}
