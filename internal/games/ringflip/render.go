package ringflip

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/games/ringflip/ring"
)

// Visual characters for rendering
const (
	PlayerChar   = '●'
	ShieldedChar = '◉'
	RimChar      = 'O'
	HoopChar     = '─'
	FadeChar     = '·'
	BoundaryChar = '═'
)

var ringColors = map[ring.Type]core.Color{
	ring.Normal:      core.ColorWhite,
	ring.ColorChange: core.ColorMagenta,
	ring.Slanted:     core.ColorCyan,
	ring.Shield:      core.ColorBlue,
	ring.GravityFlip: core.ColorOrange,
}

var popupColors = [...]core.Color{core.ColorYellow, core.ColorYellow, core.ColorOrange, core.ColorPink}

// view maps world coordinates onto the screen. Row 0 holds the HUD, the
// ceiling is drawn on row 1 and the floor on the last row.
type view struct {
	left        float64 // world x at column 0
	ceiling     float64
	rowsPerUnit float64
	colsPerUnit float64
}

func (g *Game) view(dst *core.Screen) view {
	w := g.cfg.World
	rows := float64(dst.Height() - 2)
	rpu := rows / (w.Ceiling - w.Floor)
	return view{
		left:        g.player.Position().X - w.CameraLead,
		ceiling:     w.Ceiling,
		rowsPerUnit: rpu,
		colsPerUnit: 2 * rpu, // terminal cells are about twice as tall as wide
	}
}

func (v view) cell(p core.Vec2) (x, y int) {
	x = int(math.Round((p.X - v.left) * v.colsPerUnit))
	y = 1 + int(math.Round((v.ceiling-p.Y)*v.rowsPerUnit))
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseHome:
		g.renderHome(dst)
		return
	case PhasePlaying, PhaseOver:
		g.renderWorld(dst)
		g.renderHUD(dst)
	}

	if g.paused {
		g.drawPanel(dst, core.ColorYellow, "PAUSED", "", "Press P to resume")
	}
	if g.phase == PhaseOver {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderWorld(dst *core.Screen) {
	v := g.view(dst)

	dst.DrawHLine(0, 1, dst.Width(), BoundaryChar, core.ColorGray)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), BoundaryChar, core.ColorGray)

	for _, r := range g.engine.Rings() {
		g.drawRing(dst, v, r)
	}

	ch := PlayerChar
	if g.session.HasShield() {
		ch = ShieldedChar
	}
	color := g.player.Color()
	// Blink while immune.
	if g.session.Immunity() > 0 && (g.tickCount/4)%2 == 0 {
		color = core.ColorWhite
	}
	x, y := v.cell(g.player.Position())
	dst.SetColored(x, y, ch, color)

	if !g.player.Airborne() && g.phase == PhasePlaying {
		dst.DrawTextCentered(dst.Height()/2+2, "Press SPACE to fly", core.ColorGray)
	}
}

func (g *Game) drawRing(dst *core.Screen, v view, r *ring.Ring) {
	hw := g.cfg.Rings.HalfWidth
	color := ringColors[r.Type()]
	body := HoopChar
	if r.Fading() {
		color = core.ColorGray
		body = FadeChar
	}

	left := r.Rim(ring.Left, hw)
	right := r.Rim(ring.Right, hw)
	steps := max(int(2*hw*v.colsPerUnit), 1)
	for i := 1; i < steps; i++ {
		p := left.Add(right.Sub(left).Scale(float64(i) / float64(steps)))
		x, y := v.cell(p)
		dst.SetColored(x, y, body, color)
	}

	for _, p := range []core.Vec2{left, right} {
		x, y := v.cell(p)
		dst.SetColored(x, y, RimChar, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	level := strings.ToUpper(g.profiles.Current().String())
	dst.DrawTextColored(1, 0, fmt.Sprintf("%s MODE: %d", level, g.session.Score()), core.ColorWhite)

	best := fmt.Sprintf("ALL TIME BEST: %d", g.stats.AllTimeBest)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	var tags []string
	if g.session.HasShield() {
		tags = append(tags, "[SHIELD]")
	}
	if g.player.IsGravityInverted() {
		tags = append(tags, "[GRAVITY ↑]")
	}
	if len(tags) > 0 {
		dst.DrawTextCentered(0, strings.Join(tags, " "), core.ColorCyan)
	}

	if g.popup.ttl > 0 && g.phase == PhasePlaying {
		dst.DrawTextCentered(3, g.popup.text, popupColors[min(g.popup.level, len(popupColors)-1)])
	}
}

func (g *Game) renderHome(dst *core.Screen) {
	top := max(dst.Height()/2-7, 0)
	dst.DrawTextCentered(top, "R I N G   F L I P", core.ColorYellow)
	dst.DrawTextCentered(top+1, "fly through the rings, mind the gravity", core.ColorGray)

	for i, lvl := range []string{"EASY", "MEDIUM", "HARD"} {
		line := "   " + lvl + "   "
		color := core.ColorGray
		if i == int(g.profiles.Current()) {
			line = "▶  " + lvl + "  ◀"
			color = core.ColorWhite
		}
		dst.DrawTextCentered(top+4+i*2, line, color)
	}

	dst.DrawTextCentered(top+11, fmt.Sprintf("ALL TIME BEST: %d", g.stats.AllTimeBest), core.ColorCyan)
	dst.DrawTextCentered(top+13, "↑/↓ difficulty   SPACE/ENTER play   Q quit", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Score: %d", g.last.FinalScore),
		"",
		fmt.Sprintf("Today's Best    %5d", g.stats.DailyBest),
		fmt.Sprintf("Week's Best     %5d", g.stats.WeeklyBest),
		fmt.Sprintf("All-Time Best   %5d", g.stats.AllTimeBest),
	}
	if g.last.Records.AllTime {
		lines = append(lines, "", "NEW BEST!")
	}
	g.drawPanel(dst, core.ColorRed, "GAME OVER", strings.Join(lines, "\n"), "R restart  B home  Q quit")
}

// drawPanel draws a centered box with a title, body lines and a footer.
func (g *Game) drawPanel(dst *core.Screen, color core.Color, title, body, footer string) {
	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}

	width := len([]rune(footer)) + 6
	for _, l := range append(lines, title) {
		width = max(width, len([]rune(l))+6)
	}
	height := len(lines) + 6

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawHLine(box.X+1, y, width-2, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, color)

	dst.DrawTextCentered(box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
	dst.DrawTextCentered(box.Bottom()-2, footer, core.ColorGray)
}
