package jungle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/junglerun/internal/core"
	"github.com/vovakirdan/junglerun/internal/effects"
	"github.com/vovakirdan/junglerun/internal/sim"
)

// Glyphs
const (
	GroundGlyph   = '▓'
	PlatformGlyph = '='
	PlayerGlyph   = '█'
	ShotGlyph     = '-'
	PoweredGlyph  = '≡'
	HostileGlyph  = '*'
	TrailGlyph    = '·'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

// hudRows is the height of the HUD above the play area.
const hudRows = 2

// Minimum terminal size for a readable frame.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// flashPeriod is the number of ticks per on/off phase of the invincibility
// flash.
const flashPeriod = 6

var enemyGlyphs = map[core.EnemyKind]rune{
	core.EnemyWalker: 'W',
	core.EnemyChaser: 'c',
	core.EnemyBoss:   'B',
}

var enemyColors = map[core.EnemyKind]core.Color{
	core.EnemyWalker: core.ColorGreen,
	core.EnemyChaser: core.ColorBrown,
	core.EnemyBoss:   core.ColorMagenta,
}

var powerUpGlyphs = map[core.PowerUpKind]rune{
	core.PowerUpHeal:      '+',
	core.PowerUpExtraLife: '1',
	core.PowerUpFire:      'F',
	core.PowerUpSpeed:     '>',
	core.PowerUpShield:    'O',
	core.PowerUpMultiShot: 'M',
}

// viewport maps world units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, world core.Rect) viewport {
	return viewport{
		sx:  float64(dst.Width()) / world.W,
		sy:  float64(dst.Height()-hudRows) / world.H,
		top: hudRows,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// rect returns the cell box of r, never smaller than one cell.
func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.point(r.X, r.Y)
	x2, y2 := v.point(r.Right(), r.Bottom())
	return x, y, max(x2-x, 1), max(y2-y, 1)
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(dst, snap.World)

	g.renderHUD(dst, snap)
	renderPlatforms(dst, v, snap)
	renderPowerUps(dst, v, snap)
	renderEnemies(dst, v, snap)
	renderProjectiles(dst, v, snap)
	renderPlayer(dst, v, snap)
	renderEffects(dst, v, g.feed.Effects())
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, level and health on row 0 and the active powers
// on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	st := snap.State

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorGold)

	level := fmt.Sprintf("Level %d: %s", snap.Level, snap.LevelName)
	dst.DrawTextCentered(0, level, core.ColorBrightWhite)

	hearts := strings.Repeat(string(HeartFull), st.Health) +
		strings.Repeat(string(HeartEmpty), max(st.MaxHealth-st.Health, 0))
	if st.ExtraLives > 0 {
		hearts += fmt.Sprintf(" x%d", st.ExtraLives)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorBrightRed)

	powers := powersLine(snap.Player)
	if powers == "" {
		dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
		return
	}
	dst.DrawTextColor(1, 1, powers, core.ColorBrightCyan)
}

// powersLine lists active powers with whole seconds remaining.
func powersLine(p sim.PlayerView) string {
	var parts []string
	for i, ms := range p.Powers {
		if ms <= 0 {
			continue
		}
		secs := int(ms+999) / 1000
		parts = append(parts, fmt.Sprintf("%s %ds", sim.Power(i), secs))
	}
	if p.Powered && p.Powers[sim.PowerFire] <= 0 {
		parts = append(parts, "POWERED")
	}
	return strings.Join(parts, "  ")
}

func renderPlatforms(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for i, r := range snap.Platforms {
		x, y, w, h := v.rect(r)
		glyph, color := PlatformGlyph, core.ColorGreen
		if i == 0 {
			glyph, color = GroundGlyph, core.ColorBrown
		} else {
			h = 1
		}
		dst.DrawRect(x, y, w, h, glyph, color)
	}
}

func renderPowerUps(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, u := range snap.PowerUps {
		cx, cy := u.Rect.Center()
		x, y := v.point(cx, cy)
		dst.SetColor(x, y, powerUpGlyphs[u.Kind], effects.PowerUpColor(u.Kind))
	}
}

func renderEnemies(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, e := range snap.Enemies {
		x, y, w, h := v.rect(e.Rect)
		dst.DrawRect(x, y, w, h, enemyGlyphs[e.Kind], enemyColors[e.Kind])

		// Health bar above damaged enemies
		if e.HealthFraction < 1 && y > hudRows {
			filled := max(int(float64(w)*e.HealthFraction+0.5), 1)
			dst.DrawHLine(x, y-1, filled, '▬', core.ColorRed)
		}
	}
}

func renderProjectiles(dst *core.Screen, v viewport, snap sim.Snapshot) {
	for _, p := range snap.Projectiles {
		for _, pt := range p.Trail {
			x, y := v.point(pt.X, pt.Y+p.Rect.H/2)
			dst.SetColor(x, y, TrailGlyph, core.ColorGray)
		}

		cx, cy := p.Rect.Center()
		x, y := v.point(cx, cy)
		switch {
		case p.Owner == sim.OwnerHostile:
			dst.SetColor(x, y, HostileGlyph, core.ColorRed)
		case p.Powered:
			dst.SetColor(x, y, PoweredGlyph, core.ColorBrightRed)
		default:
			dst.SetColor(x, y, ShotGlyph, core.ColorBrightYellow)
		}
	}
}

func renderPlayer(dst *core.Screen, v viewport, snap sim.Snapshot) {
	p := snap.Player
	if p.Invincible && (snap.Tick/flashPeriod)%2 == 1 {
		return
	}
	color := core.ColorBrightCyan
	switch {
	case p.Powers[sim.PowerShield] > 0:
		color = core.ColorBrightBlue
	case p.Powered:
		color = core.ColorBrightRed
	}
	x, y, w, h := v.rect(p.Rect)
	dst.DrawRect(x, y, w, h, PlayerGlyph, color)

	// Eye on the facing side
	eye := x + w - 1
	if p.Facing == sim.FacingLeft {
		eye = x
	}
	dst.SetColor(eye, y, 'o', core.ColorBrightWhite)
}

func renderEffects(dst *core.Screen, v viewport, fx []effects.Effect) {
	for _, e := range fx {
		switch e := e.(type) {
		case *effects.Particle:
			x, y := v.point(e.X, e.Y)
			glyph := '.'
			if e.Alpha() > 0.5 {
				glyph = '*'
			}
			dst.SetColor(x, y, glyph, e.Color)
		case *effects.Popup:
			x, y := v.point(e.X, e.Y())
			dst.DrawTextColor(x-len(e.Text)/2, y, e.Text, e.Color)
		}
	}
}

// renderOverlay draws the border flash and the pause and end boxes.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	if snap.Player.Invincible && (snap.Tick/flashPeriod)%2 == 0 {
		dst.DrawBox(0, hudRows, dst.Width(), dst.Height()-hudRows, core.ColorRed)
	}

	st := g.State()
	switch {
	case st.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case st.GameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	case st.Won:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", st.Score))
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
