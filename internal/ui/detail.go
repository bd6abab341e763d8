package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-telsite/internal/geodesy"
	"github.com/litescript/ls-telsite/internal/telescope"
)

var (
	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// renderDetail renders the right-hand pane for the selected record.
func (m Model) renderDetail() string {
	if m.selected == nil {
		return labelStyle.Render("nothing selected")
	}
	rec := m.selected

	var b strings.Builder
	b.WriteString(detailHeaderStyle.Render(rec.FullName))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}

	row("Mnemonic", rec.Mnemonic)
	if rec.ObsCode != "" {
		row("MPC code", rec.ObsCode)
	}
	row("Longitude", fmt.Sprintf("%s  (%.6f deg E)",
		rec.LongitudeSexagesimal(m.separator), rec.LongitudeDeg()))
	row("Latitude", fmt.Sprintf("%s  (%.6f deg)",
		rec.GeodLatSexagesimal(m.separator), rec.GeodLatDeg()))
	row("Altitude", fmt.Sprintf("%.1f m", rec.AltM))
	row("Geocentric", fmt.Sprintf("%.9f rad, %.1f m", rec.GeocLatRad, rec.GeocDistM))
	row("Parallax", fmt.Sprintf("C=%+.6f S=%.6f", rec.ParallaxC, rec.ParallaxS))
	row("Limits", formatLimits(rec.Limits))

	return b.String()
}

// formatLimits renders a pointing-limit spec on one line.
func formatLimits(spec telescope.LimitsSpec) string {
	switch spec.Mount {
	case telescope.MountAzEl:
		return fmt.Sprintf("AZEL  el %s .. %s", degrees(spec.El.Min), degrees(spec.El.Max))
	case telescope.MountHADec:
		return fmt.Sprintf("HADEC  ha %s .. %s  dec %s .. %s",
			hours(spec.HA.Min), hours(spec.HA.Max),
			degrees(spec.Dec.Min), degrees(spec.Dec.Max))
	default:
		return "none"
	}
}

func degrees(rad float64) string {
	return fmt.Sprintf("%.1f°", geodesy.RadToDeg(rad))
}

func hours(rad float64) string {
	return fmt.Sprintf("%+.2fh", geodesy.RadToDeg(rad)/15)
}
