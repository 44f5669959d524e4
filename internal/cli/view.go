package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/errors"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

// viewCommand creates the interactive linkage viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var dictName string
	var hideSuffix bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Page through the linkages of a file interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markers, err := loadMarkers(dictName)
			if err != nil {
				return err
			}
			linkages, err := linkage.ReadLinkagesFile(args[0])
			if err != nil {
				return err
			}
			if len(linkages) == 0 {
				return errors.New(errors.ErrCodeInvalidLinkage, "%s holds no linkages", args[0])
			}

			opts := diagram.DefaultOptions()
			opts.HideSuffix = hideSuffix
			model := newViewerModel(linkages, markers, opts)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dictName, "dict", "en", "dictionary: en, ru, or a marker TOML path")
	cmd.Flags().BoolVar(&hideSuffix, "hide-suffix", false, "fuse split stem+suffix pairs into one word")

	return cmd
}

// =============================================================================
// ViewerModel - Interactive linkage browsing
// =============================================================================

// viewerModel is the bubbletea model paging through a sentence's
// linkages. The diagram for the current index is re-rendered whenever
// the index or the terminal width changes.
type viewerModel struct {
	linkages []*linkage.Linkage
	markers  *dict.Markers
	opts     diagram.Options

	index    int
	rendered string
	err      error
}

func newViewerModel(linkages []*linkage.Linkage, m *dict.Markers, opts diagram.Options) viewerModel {
	model := viewerModel{linkages: linkages, markers: m, opts: opts}
	model.render()
	return model
}

// render refreshes the cached diagram text for the current index.
func (m *viewerModel) render() {
	l, err := diagram.Compute(m.linkages[m.index], m.markers, m.opts)
	if err != nil {
		m.err = err
		m.rendered = ""
		return
	}
	m.err = nil
	m.rendered = diagram.RenderASCII(l)
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "p":
			if m.index > 0 {
				m.index--
				m.render()
			}
		case "right", "l", "n":
			if m.index < len(m.linkages)-1 {
				m.index++
				m.render()
			}
		case "w":
			m.opts.ShowWalls = !m.opts.ShowWalls
			m.render()
		case "s":
			m.opts.ShortDisplay = !m.opts.ShortDisplay
			m.render()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 1 {
			m.opts.ScreenWidth = msg.Width - 1
			m.render()
		}
	}
	return m, nil
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Linkage %d/%d", m.index+1, len(m.linkages))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ linkage  w walls  s short  q quit"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + StyleWarning.Render(m.err.Error()) + "\n")
		return b.String()
	}
	b.WriteString(m.rendered)

	if v := m.linkages[m.index].Violation; v != "" {
		b.WriteString(StyleWarning.Render("P.P. violation: "+v) + "\n")
	}
	return b.String()
}
