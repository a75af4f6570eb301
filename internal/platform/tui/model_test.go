package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	steps  int
	inputs []core.InputFrame
	resets int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	if len(g.states) == 0 {
		return core.GameState{}
	}
	return g.states[min(g.steps, len(g.states)-1)]
}

func newTestModel(g *scriptedGame, buf *bytes.Buffer) Model {
	logger := log.New(buf)
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, logger)
}

func TestModelForwardsActionsOnTick(t *testing.T) {
	g := &scriptedGame{}
	var m tea.Model = newTestModel(g, &bytes.Buffer{})

	if g.resets != 1 {
		t.Fatalf("Expected one reset on creation, got %d", g.resets)
	}

	m, _ = m.Update(runeKey('a'))
	m, _ = m.Update(runeKey('x'))
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(TickMsg{})

	if g.steps != 2 {
		t.Fatalf("Expected 2 steps, got %d", g.steps)
	}
	first := g.inputs[0].Actions
	if len(first) != 2 || first[0] != core.ActionLeft || first[1] != core.ActionRotateCW {
		t.Errorf("Unexpected first frame: %v", first)
	}
	if g.inputs[1].Len() != 0 {
		t.Errorf("Expected an empty second frame, got %v", g.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	var buf bytes.Buffer
	m := newTestModel(&scriptedGame{}, &buf)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("Expected empty view after quit")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("Expected quit to be logged, got %q", buf.String())
	}
}

func TestModelLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	g := &scriptedGame{states: []core.GameState{
		{},
		{Paused: true},
		{},
		{Level: 1, Score: 1000},
		{Level: 1, Score: 1000, GameOver: true},
		{},
	}}
	var m tea.Model = newTestModel(g, &buf)

	for range 5 {
		m, _ = m.Update(TickMsg{})
	}

	out := buf.String()
	for _, want := range []string{"paused", "resumed", "level up", "game over", "restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output:\n%s", want, out)
		}
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	var m tea.Model = newTestModel(g, &bytes.Buffer{})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	mm := m.(Model)
	if mm.screen.Width() != 60 || mm.screen.Height() != 19 {
		t.Errorf("Expected 60x19 screen, got %dx%d", mm.screen.Width(), mm.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("Resize should not reset the game, resets = %d", g.resets)
	}

	m, _ = m.Update(runeKey('?'))
	mm = m.(Model)
	if mm.screen.Height() != 20-mm.footerHeight() || mm.footerHeight() <= 1 {
		t.Errorf("Expected full help to shrink the screen, height %d footer %d",
			mm.screen.Height(), mm.footerHeight())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{}, &bytes.Buffer{})
	view := m.View()

	if !strings.Contains(view, "scripted") {
		t.Error("Expected game output in view")
	}
	if !strings.Contains(view, "left") {
		t.Error("Expected help footer in view")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'c', core.ColorRed)
	s.SetColored(0, 1, 'd', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "c", "d"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}
