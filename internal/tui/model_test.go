package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/rotcoef/internal/config"
	"github.com/agbru/rotcoef/internal/orchestration"
	"github.com/agbru/rotcoef/internal/rodrigues"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		Points: 11, Step: 0.01, Center: 0,
		H1: 1e-10, H2: 1e-10, SeriesThreshold: 0.25,
		Precision: 7, Width: 14,
	}
}

func sweptModel(t *testing.T) Model {
	t.Helper()
	evaluators, err := orchestration.GetEvaluatorsToRun(rodrigues.NewDefaultFactory(), "all")
	if err != nil {
		t.Fatalf("GetEvaluatorsToRun() error = %v", err)
	}

	m := NewModel(context.Background(), evaluators, testConfig(), "test")
	t.Cleanup(m.cancel)

	msg := startSweepCmd(m.ctx, evaluators, m.config)()
	results, ok := msg.(ResultsMsg)
	if !ok {
		t.Fatalf("startSweepCmd returned %T", msg)
	}
	if results.Err != nil {
		t.Fatalf("sweep error = %v", results.Err)
	}

	updated, _ := m.Update(results)
	model := updated.(Model)
	updated, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestModelSweepResults(t *testing.T) {
	m := sweptModel(t)
	if m.loading {
		t.Error("model still loading after results")
	}
	if len(m.results) != 3 {
		t.Fatalf("results = %d, want 3", len(m.results))
	}
	if m.thetaIdx != len(m.thetas)/2 {
		t.Errorf("thetaIdx = %d, want grid center %d", m.thetaIdx, len(m.thetas)/2)
	}
}

func TestModelScrubbing(t *testing.T) {
	m := sweptModel(t)
	center := m.thetaIdx

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	if m.thetaIdx != center+1 {
		t.Errorf("thetaIdx after right = %d, want %d", m.thetaIdx, center+1)
	}

	updated, _ = m.Update(keyMsg("0"))
	m = updated.(Model)
	if m.thetaIdx != center {
		t.Errorf("thetaIdx after center = %d, want %d", m.thetaIdx, center)
	}

	// Clamped at the edges.
	for i := 0; i < 100; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = updated.(Model)
	}
	if m.thetaIdx != 0 {
		t.Errorf("thetaIdx after many lefts = %d, want 0", m.thetaIdx)
	}
}

func TestModelCoefficientSelection(t *testing.T) {
	m := sweptModel(t)
	if m.coefIdx != 0 {
		t.Fatalf("initial coefIdx = %d", m.coefIdx)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.coefIdx != 1 {
		t.Errorf("coefIdx after down = %d, want 1", m.coefIdx)
	}

	for i := 0; i < 100; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	if m.coefIdx != len(rodrigues.CoefficientLabels)-1 {
		t.Errorf("coefIdx clamped at %d, want %d", m.coefIdx, len(rodrigues.CoefficientLabels)-1)
	}
}

func TestModelView(t *testing.T) {
	m := sweptModel(t)
	view := m.View()

	for _, want := range []string{"rotcoef", "a0", "b2", "direct", "hyperdual", "series", "spread"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := NewModel(context.Background(), nil, testConfig(), "test")
	defer m.cancel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := sweptModel(t)
	if strings.Contains(m.View(), "toggle help") {
		t.Error("help visible before toggling")
	}

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	if !strings.Contains(m.View(), "toggle help") {
		t.Error("help not visible after toggling")
	}
}

func TestModelQuit(t *testing.T) {
	m := sweptModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("quit command produced %T, want tea.QuitMsg", msg)
	}
}
