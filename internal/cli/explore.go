package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wordlattice/wordlattice/pkg/graph"
	"github.com/wordlattice/wordlattice/pkg/traverse"
)

// exploreCommand creates the interactive snapshot browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <lattice.json>",
		Short: "Browse a snapshot node by node in the terminal",
		Long: `Browse a snapshot node by node in the terminal.

Move through the node list with the arrow keys (or j/k) and press enter to
reconstruct the dictionary words passing through the selected node. Press q
to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return err
			}
			model := newExploreModel(snapshot, c.Config.MaxResults)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// exploreModel is the bubbletea model for the snapshot browser. Traversal
// is read-only over the immutable snapshot, so querying from the UI loop
// needs no synchronization.
type exploreModel struct {
	nodes  []graph.Node
	trav   *traverse.Traverser
	cursor int
	offset int
	height int
	words  []string
	err    error
}

func newExploreModel(snapshot graph.Graph, maxResults int) exploreModel {
	nodes := make([]graph.Node, len(snapshot.Nodes))
	copy(nodes, snapshot.Nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	return exploreModel{
		nodes:  nodes,
		trav:   traverse.New(snapshot, traverse.Options{MaxResults: maxResults}),
		height: 15,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
				m.words, m.err = nil, nil
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
				m.words, m.err = nil, nil
			}
		case "enter":
			m.words, m.err = m.trav.WordsThrough(m.nodes[m.cursor].ID)
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("wordlattice explore") + "\n\n")

	end := min(m.offset+m.height, len(m.nodes))
	for i := m.offset; i < end; i++ {
		n := m.nodes[i]
		line := fmt.Sprintf("%4d  %-5q level %d", n.ID, n.Label, n.Level)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(StyleWarning.Render(m.err.Error()) + "\n")
	case m.words != nil:
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("%d words through node %d:", len(m.words), m.nodes[m.cursor].ID)) + "\n")
		b.WriteString(StyleValue.Render(strings.Join(m.words, " ")) + "\n")
	default:
		b.WriteString(StyleDim.Render("enter: words through node · j/k: move · q: quit") + "\n")
	}
	return b.String()
}
