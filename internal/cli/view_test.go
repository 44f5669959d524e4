package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

func viewerFixture() viewerModel {
	lks := []*linkage.Linkage{
		{
			Words: []linkage.Word{
				{Token: "one", HasToken: true},
				{Token: "word", HasToken: true},
			},
			Links: []linkage.Link{{Left: 0, Right: 1, Label: "A"}},
		},
		{
			Words: []linkage.Word{
				{Token: "two", HasToken: true},
				{Token: "words", HasToken: true},
			},
			Links: []linkage.Link{{Left: 0, Right: 1, Label: "B"}},
		},
	}
	return newViewerModel(lks, dict.English(), diagram.DefaultOptions())
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewerNavigation(t *testing.T) {
	m := viewerFixture()

	if !strings.Contains(m.View(), "Linkage 1/2") {
		t.Fatalf("initial view = %q", m.View())
	}
	if !strings.Contains(m.View(), "one word") {
		t.Errorf("initial view missing first diagram: %q", m.View())
	}

	next, _ := m.Update(key("n"))
	m = next.(viewerModel)
	if !strings.Contains(m.View(), "Linkage 2/2") || !strings.Contains(m.View(), "two words") {
		t.Errorf("after next: %q", m.View())
	}

	// Already at the last linkage; another next is a no-op.
	next, _ = m.Update(key("n"))
	m = next.(viewerModel)
	if !strings.Contains(m.View(), "Linkage 2/2") {
		t.Errorf("next past end moved: %q", m.View())
	}

	next, _ = m.Update(key("p"))
	m = next.(viewerModel)
	if !strings.Contains(m.View(), "Linkage 1/2") {
		t.Errorf("after prev: %q", m.View())
	}
}

func TestViewerQuit(t *testing.T) {
	m := viewerFixture()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("quit key should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.Quit")
	}
}

func TestViewerResizeRewraps(t *testing.T) {
	m := viewerFixture()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(viewerModel)
	if m.opts.ScreenWidth != 39 {
		t.Errorf("ScreenWidth = %d, want 39", m.opts.ScreenWidth)
	}
}

func TestViewerShortToggle(t *testing.T) {
	m := viewerFixture()
	next, _ := m.Update(key("s"))
	m = next.(viewerModel)
	if !m.opts.ShortDisplay {
		t.Error("s key should enable short display")
	}
}
