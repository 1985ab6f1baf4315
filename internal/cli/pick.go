package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// viewPreset is a named region and orientation offered by the picker.
type viewPreset struct {
	Name        string
	Orientation string
	X, Y        string
}

var viewPresets = []viewPreset{
	{Name: "Full rink", Orientation: "horizontal"},
	{Name: "Full rink", Orientation: "vertical"},
	{Name: "Half rink", Orientation: "horizontal", X: "half"},
	{Name: "Half rink", Orientation: "vertical", X: "half"},
	{Name: "Offensive zone", Orientation: "horizontal", X: "ozone"},
	{Name: "Offensive zone", Orientation: "vertical", X: "ozone"},
	{Name: "Offensive zone, near side", Orientation: "horizontal", X: "ozone", Y: "half"},
	{Name: "Neutral zone", Orientation: "horizontal", X: "-25,25"},
	{Name: "Defensive zone", Orientation: "horizontal", X: "-100,-25"},
}

// rangeLabel shows an empty range spec as "full".
func rangeLabel(s string) string {
	if s == "" {
		return "full"
	}
	return s
}

// =============================================================================
// PresetListModel - Interactive view selection
// =============================================================================

// PresetListModel is the bubbletea model for interactive view selection.
type PresetListModel struct {
	Presets  []viewPreset
	Cursor   int
	Selected *viewPreset
	Height   int
	Offset   int
}

// NewPresetListModel creates a new preset list model.
func NewPresetListModel(presets []viewPreset) PresetListModel {
	return PresetListModel{
		Presets: presets,
		Height:  15,
	}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select View"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Presets) {
		end = len(m.Presets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, p.Name, p.Orientation, rangeLabel(p.X), rangeLabel(p.Y)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "View", "Orientation", "x", "y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))

	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the pick command: choose a view interactively, then
// render it like `rinkplot render`.
func (c *CLI) pickCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a rink view interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := tea.NewProgram(NewPresetListModel(viewPresets), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			m, ok := final.(PresetListModel)
			if !ok || m.Selected == nil {
				printInfo("No view selected")
				return nil
			}
			opts.applyPreset(*m.Selected)
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); default \"rink\"")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s), comma-separated")
	cmd.Flags().StringVar(&opts.style, "style", "", "color style: classic (default), mono")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "figure length in inches")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	registerRenderCompletions(cmd)

	return cmd
}

// applyPreset copies the preset's orientation and ranges into opts.
func (o *renderOpts) applyPreset(p viewPreset) {
	o.orientation = p.Orientation
	o.x = p.X
	o.y = p.Y
}
