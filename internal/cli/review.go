package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var reviewCmd = &cobra.Command{
	Use:   "review <cubestring>",
	Short: "Interactively review and fix a captured cube state",
	Long: `Review opens an interactive view of a cube state. Select a face with
the arrow keys and rotate it in place with 'r' to fix faces that were
photographed at the wrong orientation. Validation runs live after
every change.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	state, err := parseCubeArg(args[0])
	if err != nil {
		return err
	}

	m := newReviewModel(state)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	result := final.(reviewModel)
	fmt.Printf("Cube string: %s\n", result.state.String())
	if !result.report.Valid {
		fmt.Println(errStyle.Render("State is still invalid."))
	}
	return nil
}

var (
	reviewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	reviewHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// reviewModel is the bubbletea model for the interactive review screen.
type reviewModel struct {
	state  cubevision.CubeState
	report cubevision.ValidationReport
	sel    cubevision.Face
}

func newReviewModel(state cubevision.CubeState) reviewModel {
	return reviewModel{
		state:  state,
		report: cubevision.Validate(state),
		sel:    cubevision.U,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.sel = (m.sel + 5) % 6

		case "right", "l", "tab":
			m.sel = (m.sel + 1) % 6

		case "r":
			m.state = m.state.RotateFace(m.sel, 1)
			m.report = cubevision.Validate(m.state)

		case "R":
			m.state = m.state.RotateFace(m.sel, 3)
			m.report = cubevision.Validate(m.state)

		case "c":
			if !m.report.Valid {
				m.state, m.report = cubevision.Correct(m.state, m.report)
			}
		}
	}
	return m, nil
}

func (m reviewModel) View() string {
	s := reviewTitleStyle.Render("Cube review") + "\n\n"
	s += renderNet(m.state, m.sel) + "\n"
	s += renderReport(m.report) + "\n\n"
	s += reviewHelpStyle.Render(fmt.Sprintf("face: %s  ←/→ select  r rotate cw  R rotate ccw  c auto-correct  q quit", m.sel))
	return s
}
