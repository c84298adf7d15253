package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHyperStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// exploreCommand creates the explore command: an interactive vertex browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse a graph interactively",
		Long: `Browse a graph interactively.

Navigate the vertex list with the arrow keys. The panel on the right
shows the selected vertex's successors and, for hyper-vertices, their
member list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if g.VertexCount() == 0 {
				printInfo("Graph is empty")
				return nil
			}

			model := NewVertexListModel(g, args[0])
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// VertexListModel - Interactive vertex browser
// =============================================================================

// VertexListModel is the bubbletea model for browsing a graph's vertices.
type VertexListModel struct {
	Title    string
	Graph    *hag.Graph
	Vertices []hag.ID
	Cursor   int
	Height   int
	Offset   int
}

// NewVertexListModel creates a vertex browser for g.
func NewVertexListModel(g *hag.Graph, title string) VertexListModel {
	return VertexListModel{
		Title:    title,
		Graph:    g,
		Vertices: g.Vertices(),
		Height:   15,
	}
}

func (m VertexListModel) Init() tea.Cmd {
	return nil
}

func (m VertexListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Vertices)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m VertexListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Vertices) {
		end = len(m.Vertices)
	}

	list := make([]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		v := m.Vertices[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		_, isHyper := m.Graph.HyperVertex(v)
		line := cursor + string(v)
		switch {
		case i == m.Cursor:
			line = listSelectedStyle.Render(line)
		case isHyper:
			line = listHyperStyle.Render(line)
		default:
			line = listNormalStyle.Render(line)
		}
		list = append(list, line)
	}

	left := strings.Join(list, "\n")
	right := m.detailPanel()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(30).Render(left),
		right))

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Vertices))))

	return b.String()
}

// detailPanel renders the successors and members of the selected vertex.
func (m VertexListModel) detailPanel() string {
	v := m.Vertices[m.Cursor]
	var b strings.Builder

	b.WriteString(StyleHighlight.Render(string(v)))
	b.WriteString("\n")

	if members, ok := m.Graph.HyperVertex(v); ok {
		b.WriteString(listHyperStyle.Render("hyper-vertex"))
		b.WriteString("\n")
		for _, member := range members {
			b.WriteString(listDimStyle.Render("  • "))
			b.WriteString(listNormalStyle.Render(string(member)))
			b.WriteString("\n")
		}
	}

	neighbors := m.Graph.Neighbors(v)
	if len(neighbors) == 0 {
		b.WriteString(listDimStyle.Render("no successors"))
		return b.String()
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d successors", len(neighbors))))
	b.WriteString("\n")
	for _, n := range neighbors {
		b.WriteString(listDimStyle.Render("  " + iconArrow + " "))
		b.WriteString(listNormalStyle.Render(string(n)))
		b.WriteString("\n")
	}

	return b.String()
}
