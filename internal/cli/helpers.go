package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubevision"
)

// Sticker styles, one per color, rendered as colored blocks.
var stickerStyles = map[cubevision.Color]lipgloss.Style{
	cubevision.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	cubevision.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("235")),
	cubevision.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubevision.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
	cubevision.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("235")),
	cubevision.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// faceRow renders one row of three stickers of a face.
func faceRow(s cubevision.CubeState, f cubevision.Face, row int, selected bool) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		c := s.Color(int(f)*9 + row*3 + col)
		cell := " " + c.String() + " "
		if selected {
			cell = "[" + c.String() + "]"
		}
		b.WriteString(stickerStyles[c].Render(cell))
	}
	return b.String()
}

// renderNet draws the unfolded cube as a colored cross net. selected
// highlights one face (pass -1 for none).
func renderNet(s cubevision.CubeState, selected cubevision.Face) string {
	pad := strings.Repeat(" ", 9)
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(s, cubevision.U, row, selected == cubevision.U))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(faceRow(s, cubevision.L, row, selected == cubevision.L))
		b.WriteString(faceRow(s, cubevision.F, row, selected == cubevision.F))
		b.WriteString(faceRow(s, cubevision.R, row, selected == cubevision.R))
		b.WriteString(faceRow(s, cubevision.B, row, selected == cubevision.B))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(faceRow(s, cubevision.D, row, selected == cubevision.D))
		b.WriteString("\n")
	}
	return b.String()
}

// renderReport formats a validation report for terminal output.
func renderReport(rep cubevision.ValidationReport) string {
	var b strings.Builder
	if rep.Valid {
		b.WriteString(okStyle.Render("✓ valid cube state"))
	} else {
		b.WriteString(errStyle.Render(fmt.Sprintf("✗ invalid cube state (%d errors)", len(rep.Errors))))
		for _, e := range rep.Errors {
			b.WriteString("\n  " + e.String())
		}
	}
	if len(rep.Corrections) > 0 {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf("%d correction(s) applied:", len(rep.Corrections))))
		for _, c := range rep.Corrections {
			switch c.Kind {
			case cubevision.CorrectionReorder:
				b.WriteString("\n  faces reordered by center color")
			case cubevision.CorrectionRotate:
				b.WriteString(fmt.Sprintf("\n  face %s rotated %d°", c.Face, c.Degrees))
			}
		}
	}
	return b.String()
}

// faceLetterAliases maps sticker color letters onto canonical face
// letters so cube strings can be given in either alphabet.
var faceLetterAliases = map[rune]rune{
	'W': 'U', 'Y': 'D', 'G': 'F', 'O': 'L',
	'U': 'U', 'R': 'R', 'F': 'F', 'D': 'D', 'L': 'L', 'B': 'B',
}

// parseCubeArg parses a 54-character cube string given in either the
// URFDLB face alphabet or the WRGYOB color alphabet.
func parseCubeArg(arg string) (cubevision.CubeState, error) {
	arg = strings.ToUpper(strings.TrimSpace(arg))
	var b strings.Builder
	for _, r := range arg {
		canon, ok := faceLetterAliases[r]
		if !ok {
			return cubevision.CubeState{}, fmt.Errorf("%w: unexpected character %q", cubevision.ErrBadStateString, r)
		}
		b.WriteRune(canon)
	}
	return cubevision.ParseState(b.String())
}
