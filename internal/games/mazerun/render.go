package mazerun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/world"
)

// Visual characters for rendering
const (
	WallChar       = '█'
	FloorChar      = ' '
	TurretChar     = 'T'
	ProjectileChar = '•'
	PickupChar     = '$'
	SeekerChar     = 'S'
	ObstacleChar   = '▒'
	HeartChar      = '♥'
	BorderHoriz    = '─'
)

// PlayerGlyphs are indexed by on-screen facing (up, right, down, left).
var PlayerGlyphs = [4]rune{'▲', '▶', '▼', '◀'}

type glyph struct {
	r     rune
	color core.Color
	layer int // higher draws on top
}

func actorGlyph(a world.ActorView, camera int) glyph {
	switch a.Kind {
	case world.KindPlayer:
		f := int(math.Round(a.Angle)) + camera
		return glyph{PlayerGlyphs[((f%4)+4)%4], core.ColorBrightYellow, 5}
	case world.KindTurret:
		return glyph{TurretChar, core.ColorBrightRed, 4}
	case world.KindSeeker:
		return glyph{SeekerChar, core.ColorBrightMagenta, 3}
	case world.KindProjectile:
		if a.Owner == world.NoActor {
			return glyph{ProjectileChar, core.ColorWhite, 2}
		}
		return glyph{ProjectileChar, core.ColorOrange, 2}
	case world.KindObstacle:
		return glyph{ObstacleChar, core.ColorGray, 1}
	default:
		return glyph{PickupChar, core.ColorYellow, 0}
	}
}

// Render draws the HUD, the map around the player and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.world == nil {
		g.drawCenteredBox(dst, "NO LEVEL", trimTo(fmt.Sprint(g.err), dst.Width()-4))
		return
	}

	snap := g.world.Snapshot()
	g.renderHUD(dst, snap)
	DrawMap(dst, snap, core.NewRect(0, 2, dst.Width(), dst.Height()-3))
	dst.DrawTextCentered(dst.Height()-1, "WASD move  SPACE fire  [ ] rotate  P pause")
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, health and actor counts.
func (g *Game) renderHUD(dst *core.Screen, snap world.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	hearts := strings.Repeat(string(HeartChar), max(snap.PlayerHP, 0))
	hp := "HP: " + hearts
	x := (dst.Width() - len([]rune(hp))) / 2
	dst.DrawText(x, 0, "HP: ")
	dst.DrawTextColored(x+4, 0, hearts, core.ColorBrightRed)

	right := fmt.Sprintf("T:%d S:%d $:%d",
		snap.CountKind(world.KindTurret),
		snap.CountKind(world.KindSeeker),
		snap.CountKind(world.KindPickup),
	)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

// DrawMap renders the snapshot into area, rotated by the snapshot camera
// and scrolled to keep the player in view.
func DrawMap(dst *core.Screen, snap world.Snapshot, area core.Rect) {
	turns := snap.Camera

	// Focus on the player, or the map centre once it is gone.
	fx, fy := snap.Width/2, snap.Height/2
	for _, a := range snap.Actors {
		if a.ID == snap.PlayerID {
			fx, fy = int(math.Round(a.Pos.X)), int(math.Round(a.Pos.Y))
		}
	}

	rfx, rfy, rw, rh := core.RotateQuarter(fx, fy, snap.Width, snap.Height, turns)
	view := core.Viewport(rfx, rfy, rw, rh, area.W, area.H)
	padX := max((area.W-rw)/2, 0)
	padY := max((area.H-rh)/2, 0)

	toScreen := func(x, y int) (int, int, bool) {
		rx, ry, _, _ := core.RotateQuarter(x, y, snap.Width, snap.Height, turns)
		if !view.Contains(rx, ry) {
			return 0, 0, false
		}
		return area.X + padX + rx - view.X, area.Y + padY + ry - view.Y, true
	}

	for y := range snap.Height {
		for x := range snap.Width {
			sx, sy, ok := toScreen(x, y)
			if !ok {
				continue
			}
			if snap.CellType(x, y) == maze.Wall {
				dst.SetColored(sx, sy, WallChar, core.ColorGray)
			} else {
				dst.Set(sx, sy, FloorChar)
			}
		}
	}

	// Stack per screen cell so the highest layer wins regardless of
	// actor order.
	top := make(map[[2]int]glyph)
	for _, a := range snap.Actors {
		sx, sy, ok := toScreen(int(math.Round(a.Pos.X)), int(math.Round(a.Pos.Y)))
		if !ok {
			continue
		}
		gl := actorGlyph(a, turns)
		key := [2]int{sx, sy}
		if cur, seen := top[key]; seen && cur.layer >= gl.layer {
			continue
		}
		top[key] = gl
	}
	for pos, gl := range top {
		dst.SetColored(pos[0], pos[1], gl.r, gl.color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap world.Snapshot) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	blank := strings.Repeat(" ", boxW)
	for y := boxY; y < boxY+boxH; y++ {
		dst.DrawText(boxX, y, blank)
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func trimTo(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}
