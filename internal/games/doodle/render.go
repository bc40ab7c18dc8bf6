package doodle

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// view maps world coordinates onto screen cells.
type view struct {
	sx, sy float64
}

func newView(dst *core.Screen, vp config.DoodleViewport) view {
	return view{
		sx: float64(dst.Width()) / vp.Width,
		sy: float64(dst.Height()) / vp.Height,
	}
}

func (v view) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v view) row(y float64) int { return int(math.Floor(y * v.sy)) }

// span returns the screen columns covered by a world box, at least one.
func (v view) span(b core.Box) (x0, x1 int) {
	x0, x1 = v.col(b.Left()), v.col(b.Right())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	return x0, x1
}

// drawSprite paints frame across the box's columns on row y.
// Spaces in the pattern leave the background untouched.
func drawSprite(dst *core.Screen, x0, x1, y int, f Frame) {
	runes := []rune(f.Pattern)
	if len(runes) == 0 {
		return
	}
	for x := x0; x < x1; x++ {
		r := runes[(x-x0)%len(runes)]
		if r != ' ' {
			dst.SetColored(x, y, r, f.Color)
		}
	}
}

func (g *Game) drawWorld(dst *core.Screen, v view, s *Session) {
	for _, p := range s.Field().Platforms() {
		if p.Removed() {
			continue
		}
		b := p.Box()
		x0, x1 := v.span(b)
		drawSprite(dst, x0, x1, v.row(b.Top()), p.Frame())
	}
	g.drawActor(dst, v, s.Actor())
}

func (g *Game) drawActor(dst *core.Screen, v view, a *Actor) {
	frame := g.assets.ActorRight
	switch a.Facing() {
	case FacingLeft:
		frame = g.assets.ActorLeft
	case FacingFront:
		frame = g.assets.ActorFront
	}

	b := a.Box()
	x0, x1 := v.span(b)
	if x1-x0 < 2 {
		x1 = x0 + 2
	}
	y := v.row(b.Center().Y)
	drawSprite(dst, x0, x1, y, frame)

	if h := a.Hat(); h != nil {
		drawSprite(dst, x0, x1, y-1, h.Frame())
	}
}

func (g *Game) drawHUD(dst *core.Screen, score int, banner string) {
	hud := fmt.Sprintf(" %d  HI: %d ", score, g.highScore)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if banner != "" {
		x := (dst.Width() - utf8.RuneCountInString(banner)) / 2
		dst.DrawTextColored(x, 2, banner, core.ColorYellow)
	}
}

func (g *Game) drawTitle(dst *core.Screen, v view) {
	t := g.title
	top := v.row(t.banner.Top())
	for y := top; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '█', core.ColorGreen)
	}
	label := "START"
	x := (dst.Width() - len(label)) / 2
	dst.DrawTextColored(x, top+(dst.Height()-top)/2, label, core.ColorBrightWhite)

	g.drawActor(dst, v, t.actor)

	dst.DrawTextCentered(2, "T U I   D O O D L E")
	dst.DrawTextCentered(4, fmt.Sprintf("HI: %d", g.highScore))
	dst.DrawTextCentered(6, "Press SPACE to start")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
