package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlane/actor"
	"github.com/lixenwraith/starlane/curve"
	"github.com/lixenwraith/starlane/geom"
	"github.com/lixenwraith/starlane/parameter"
	"github.com/lixenwraith/starlane/status"
)

// Renderer scales world coordinates onto the terminal grid
// The bottom StatusLines rows are reserved for the status bar
type Renderer struct {
	screen tcell.Screen
	field  geom.Bounds

	ShowPaths    bool
	ShowHitboxes bool
}

// NewRenderer creates a renderer drawing field onto screen
func NewRenderer(screen tcell.Screen, field geom.Bounds) *Renderer {
	return &Renderer{screen: screen, field: field}
}

func (r *Renderer) gridSize() (cols, rows int) {
	w, h := r.screen.Size()
	return w, max(h-parameter.StatusLines, 0)
}

// ToCell maps a world point to a playfield cell; false when off the grid
func (r *Renderer) ToCell(p geom.Point) (x, y int, ok bool) {
	cols, rows := r.gridSize()
	if cols == 0 || rows == 0 || r.field.Width() <= 0 || r.field.Height() <= 0 {
		return 0, 0, false
	}
	fx := (p.X - r.field.Left) / r.field.Width()
	fy := (p.Y - r.field.Top) / r.field.Height()
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	x, y = int(fx*float64(cols)), int(fy*float64(rows))
	if x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func (r *Renderer) plot(p geom.Point, ch rune, style tcell.Style) {
	if x, y, ok := r.ToCell(p); ok {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

// DrawPath marks every move with a path dot and every fire signal at the
// position it fires from
func (r *Renderer) DrawPath(p curve.Path) {
	pathStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPath)
	fireStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbFireMark)

	var last geom.Point
	seen := false
	for _, e := range p {
		if loc, ok := e.Location(); ok {
			last, seen = loc, true
			r.plot(loc, parameter.PathGlyph, pathStyle)
			continue
		}
		if seen && e.Action == curve.ActionFire {
			r.plot(last, parameter.FireMarkGlyph, fireStyle)
		}
	}
}

// DrawBoxes shades every cell covered by the boxes placed at origin
func (r *Renderer) DrawBoxes(boxes []geom.Bounds, origin geom.Point) {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHitbox)
	for _, b := range geom.TranslateAll(boxes, origin) {
		x0, y0, ok0 := r.ToCell(geom.Pt(max(b.Left, r.field.Left), max(b.Top, r.field.Top)))
		x1, y1, ok1 := r.ToCell(geom.Pt(min(b.Right, r.field.Right-1), min(b.Bottom, r.field.Bottom-1)))
		if !ok0 || !ok1 {
			continue
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y, parameter.HitboxGlyph, nil, style)
			}
		}
	}
}

// DrawText writes text left to right starting at cell (x, y)
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if x >= w {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Frame draws the world and the status bar, then shows the screen
func (r *Renderer) Frame(w *actor.World, reg *status.Registry) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	if r.ShowPaths {
		for _, e := range w.Enemies() {
			walker := e.Walker()
			r.DrawPath(walker.Path()[walker.Index():])
		}
	}

	if r.ShowHitboxes {
		for _, e := range w.Enemies() {
			r.DrawBoxes(e.Hitbox(w.Player), e.Position())
		}
		r.DrawBoxes(w.Player.Hitbox(nil), w.Player.Position())
	}

	enemyStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbEnemy)
	for _, e := range w.Enemies() {
		glyph := parameter.EnemyGlyphA
		if e.Frame()%2 == 1 {
			glyph = parameter.EnemyGlyphB
		}
		r.plot(e.Position(), glyph, enemyStyle)
	}

	for _, p := range w.Projectiles() {
		color := RgbShotEnemy
		if p.Team() == actor.TeamPlayer {
			color = RgbShotPlayer
		}
		r.plot(p.Position(), parameter.ProjectileGlyph, tcell.StyleDefault.Background(RgbBackground).Foreground(color))
	}

	if w.Player.Alive() {
		color := RgbPlayer
		if w.Player.Invulnerable() && w.TickCount()%8 < 4 {
			color = RgbPlayerHurt
		}
		r.plot(w.Player.Position(), parameter.PlayerGlyph, tcell.StyleDefault.Background(RgbBackground).Foreground(color).Bold(true))
	}

	r.drawStatusBar(w, reg)
	r.screen.Show()
}

func (r *Renderer) drawStatusBar(w *actor.World, reg *status.Registry) {
	_, rows := r.gridSize()
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)

	var sb strings.Builder
	fmt.Fprintf(&sb, "HP %d  enemies %d  tick %d", w.Player.Health(), len(w.Enemies()), w.TickCount())
	if reg != nil {
		for _, s := range reg.Snapshot() {
			if strings.HasPrefix(s.Name, "hit.") || s.Name == "world.destroyed" {
				fmt.Fprintf(&sb, "  %s %g", s.Name, s.Value)
			}
		}
	}
	if !w.Player.Alive() {
		sb.WriteString("  GAME OVER")
	}
	r.DrawText(0, rows, sb.String(), style)
}
