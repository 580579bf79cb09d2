package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
	"github.com/vovakirdan/tui-bouncer/internal/engine"
)

// Visual characters for world entities.
const (
	GroundChar      = '═'
	BoxChar         = '▣'
	BrokenBoxChar   = '▢'
	MilestoneChar   = '◆'
	CollectibleChar = '✦'
	HazardChar      = '▲'
	BallChar        = '●'
)

// ballSpinFrames is the glyph cycle played while a RotateBall animation is
// active.
var ballSpinFrames = []rune{'◐', '◓', '◑', '◒'}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// worldView projects world coordinates through the camera onto screen cells.
type worldView struct {
	camera float64
	scaleX float64
	scaleY float64
}

func newWorldView(snap engine.Snapshot, world config.WorldConfig, screenW, screenH int) worldView {
	return worldView{
		camera: snap.Camera,
		scaleX: float64(screenW) / world.Width,
		scaleY: float64(screenH) / world.Height,
	}
}

// cell converts a world position to a screen cell.
func (v worldView) cell(wx, wy float64) (int, int) {
	return int((wx - v.camera) * v.scaleX), int(wy * v.scaleY)
}

// drawWorld renders a snapshot into the screen buffer: ground line,
// entities (dimmed once their terminal flag is set), the ball, and the HUD.
func drawWorld(dst *core.Screen, snap engine.Snapshot, world config.WorldConfig, spinFrame int) {
	dst.Clear()
	view := newWorldView(snap, world, dst.Width(), dst.Height())

	// Ground
	_, groundY := view.cell(snap.Camera, world.GroundLevel)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	// Boxes
	for _, b := range snap.Boxes {
		x, y := view.cell(b.X, b.Y)
		switch {
		case b.Broken:
			dst.SetColored(x, y, BrokenBoxChar, core.ColorGray)
		case b.Kind == engine.BoxMilestone:
			dst.SetColored(x, y, MilestoneChar, core.ColorBrightYellow)
		default:
			dst.SetColored(x, y, BoxChar, core.ColorYellow)
		}
	}

	// Collectibles
	for _, c := range snap.Collectibles {
		x, y := view.cell(c.X, c.Y)
		if c.Collected {
			dst.SetColored(x, y, CollectibleChar, core.ColorGray)
		} else {
			dst.SetColored(x, y, CollectibleChar, core.ColorBrightCyan)
		}
	}

	// Hazards
	for _, h := range snap.Hazards {
		x, y := view.cell(h.X, h.Y)
		if h.Hit {
			dst.SetColored(x, y, HazardChar, core.ColorGray)
		} else {
			dst.SetColored(x, y, HazardChar, core.ColorBrightRed)
		}
	}

	// Ball, spinning while the rotate animation runs
	bx, by := view.cell(snap.Ball.X, snap.Ball.Y)
	ballRune := BallChar
	if spinFrame > 0 {
		ballRune = ballSpinFrames[spinFrame%len(ballSpinFrames)]
	}
	dst.SetColored(bx, by, ballRune, core.ColorBrightWhite)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	if snap.PlayerName != "" {
		name := fmt.Sprintf(" %s ", snap.PlayerName)
		dst.DrawText(dst.Width()-len(name)-2, 0, name)
	}
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
