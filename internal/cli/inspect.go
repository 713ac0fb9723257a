package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kdmsoft/nodegrid/pkg/scene"
	"github.com/kdmsoft/nodegrid/pkg/snap"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	plain bool // print summaries without the interactive browser
}

// inspectCommand creates the inspect command. It shows a membership summary
// for every container in a scene, either as plain lines or in an interactive
// list with a detail pane.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "Browse container membership summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print summaries without the interactive browser")

	return cmd
}

func (c *CLI) runInspect(input string, opts *inspectOpts) error {
	sc, err := scene.ReadFile(input)
	if err != nil {
		return err
	}

	engine := snap.New(c.Logger)
	summaries := engine.SummarizeAll(sc)
	if len(summaries) == 0 {
		printInfo("Scene has no containers")
		return nil
	}

	if opts.plain {
		for _, s := range summaries {
			fmt.Println(s)
		}
		return nil
	}

	model := newSummaryListModel(summaries)
	_, err = tea.NewProgram(model).Run()
	return err
}

// =============================================================================
// summaryListModel - Interactive container browser
// =============================================================================

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// summaryListModel is the bubbletea model for browsing container summaries.
// The list shows one line per container; the pane below lists the members
// of the selected container in stacking order.
type summaryListModel struct {
	summaries []snap.Summary
	cursor    int
}

func newSummaryListModel(summaries []snap.Summary) summaryListModel {
	return summaryListModel{summaries: summaries}
}

func (m summaryListModel) Init() tea.Cmd {
	return nil
}

func (m summaryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.summaries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m summaryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Containers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.summaries {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		count := StyleSuccess.Render(fmt.Sprintf("%d members", len(s.Members)))
		if len(s.Members) == 0 {
			count = StyleWarning.Render("empty")
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, s.Label, count)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	selected := m.summaries[m.cursor]
	b.WriteString(StyleHighlight.Render(selected.Label))
	b.WriteString("\n")
	if len(selected.Members) == 0 {
		b.WriteString(listDimStyle.Render("  empty"))
		b.WriteString("\n")
	}
	for i, member := range selected.Members {
		b.WriteString(fmt.Sprintf("  %s %s\n", listDimStyle.Render(fmt.Sprintf("%d.", i+1)), member))
	}

	return b.String()
}
