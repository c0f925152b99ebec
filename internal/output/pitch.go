package output

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

const (
	pitchRows = 16
	pitchCols = 40

	// zoneSpread is the falloff radius of one heat zone in field units.
	zoneSpread = 14.0
)

var intensityRamp = []rune{' ', '░', '░', '▒', '▒', '▓', '█'}

// RenderPitch draws the heat zones on a character pitch. The attacking
// third is at the top. Each cell shows the strongest influence reaching it,
// colored by the tactical band it sits in.
func RenderPitch(zones []tactics.HeatZone) string {
	grid := make([][]float64, pitchRows)
	for r := range grid {
		grid[r] = make([]float64, pitchCols)
	}

	for _, z := range zones {
		for r := 0; r < pitchRows; r++ {
			// Row 0 is y=100 (the attacking end).
			cellY := 100 * (1 - (float64(r)+0.5)/pitchRows)
			for c := 0; c < pitchCols; c++ {
				cellX := 100 * (float64(c) + 0.5) / pitchCols
				d := math.Hypot(cellX-z.X, cellY-z.Y)
				if d >= zoneSpread {
					continue
				}
				v := z.Intensity * (1 - d/zoneSpread)
				if v > grid[r][c] {
					grid[r][c] = v
				}
			}
		}
	}

	border := StyleMuted.Render("+" + strings.Repeat("-", pitchCols) + "+")

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteString("\n")
	for r := 0; r < pitchRows; r++ {
		sb.WriteString(StyleMuted.Render("|"))
		rowY := 100 * (1 - (float64(r)+0.5)/pitchRows)
		style := bandStyle(rowY)
		var line strings.Builder
		for c := 0; c < pitchCols; c++ {
			idx := int(grid[r][c] * float64(len(intensityRamp)-1))
			if idx >= len(intensityRamp) {
				idx = len(intensityRamp) - 1
			}
			line.WriteRune(intensityRamp[idx])
		}
		sb.WriteString(style.Render(line.String()))
		sb.WriteString(StyleMuted.Render("|"))
		sb.WriteString("\n")
	}
	sb.WriteString(border)
	return sb.String()
}

func bandStyle(y float64) lipgloss.Style {
	switch {
	case y > tactics.AttackThirdMin:
		return StyleBad
	case y < tactics.DefenseThirdMax:
		return StyleHeader
	default:
		return StyleGood
	}
}
