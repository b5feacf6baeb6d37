// Package tui implements the interactive coefficient explorer: the grid is
// swept once at startup, then the user scrubs through the angles and compares
// the strategies' values side by side.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/rotcoef/internal/config"
	apperrors "github.com/agbru/rotcoef/internal/errors"
	"github.com/agbru/rotcoef/internal/format"
	"github.com/agbru/rotcoef/internal/orchestration"
	"github.com/agbru/rotcoef/internal/rodrigues"
	"github.com/agbru/rotcoef/internal/sysmon"
)

// Messages exchanged inside the dashboard.
type (
	// ResultsMsg carries the finished grid sweeps.
	ResultsMsg struct {
		Thetas  []float64
		Results []orchestration.EvaluationResult
		Err     error
	}
	// TickMsg drives periodic resource sampling.
	TickMsg time.Time
	// SysStatsMsg carries a resource usage snapshot.
	SysStatsMsg sysmon.Stats
)

const fastScrubSteps = 10

// Model is the root bubbletea model for the coefficient explorer.
type Model struct {
	keymap     KeyMap
	config     config.AppConfig
	evaluators []rodrigues.Evaluator
	version    string

	ctx    context.Context
	cancel context.CancelFunc

	thetas  []float64
	results []orchestration.EvaluationResult
	err     error
	loading bool

	thetaIdx int
	coefIdx  int
	showHelp bool

	width  int
	height int
	sys    sysmon.Stats

	exitCode int
}

// NewModel creates the explorer model for the given strategies.
func NewModel(parentCtx context.Context, evaluators []rodrigues.Evaluator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		keymap:     DefaultKeyMap(),
		config:     cfg,
		evaluators: evaluators,
		version:    version,
		ctx:        ctx,
		cancel:     cancel,
		loading:    true,
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init starts the sweep and the resource sampling loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		startSweepCmd(m.ctx, m.evaluators, m.config),
		tickCmd(),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultsMsg:
		m.loading = false
		m.thetas = msg.Thetas
		m.results = msg.Results
		m.err = msg.Err
		m.thetaIdx = len(msg.Thetas) / 2
		if msg.Err != nil {
			m.exitCode = apperrors.ExitErrorGeneric
		}
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.sys = sysmon.Stats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Left):
		m.thetaIdx = clampIndex(m.thetaIdx-1, len(m.thetas))
	case key.Matches(msg, m.keymap.Right):
		m.thetaIdx = clampIndex(m.thetaIdx+1, len(m.thetas))
	case key.Matches(msg, m.keymap.FastLeft):
		m.thetaIdx = clampIndex(m.thetaIdx-fastScrubSteps, len(m.thetas))
	case key.Matches(msg, m.keymap.FastRight):
		m.thetaIdx = clampIndex(m.thetaIdx+fastScrubSteps, len(m.thetas))
	case key.Matches(msg, m.keymap.Center):
		m.thetaIdx = len(m.thetas) / 2

	case key.Matches(msg, m.keymap.Up):
		m.coefIdx = clampIndex(m.coefIdx-1, len(rodrigues.CoefficientLabels))
	case key.Matches(msg, m.keymap.Down):
		m.coefIdx = clampIndex(m.coefIdx+1, len(rodrigues.CoefficientLabels))

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.loading {
		return headerStyle.Render("rotcoef "+m.version) + "\n\n  sweeping grid...\n"
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("sweep failed: %v", m.err)) + "\n" + m.footerView()
	}

	sections := []string{
		m.headerView(),
		panelStyle.Render(m.tableView()),
		panelStyle.Render(m.sparklineView()),
	}
	if m.showHelp {
		sections = append(sections, panelStyle.Render(m.helpView()))
	}
	sections = append(sections, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	theta := m.thetas[m.thetaIdx]
	return headerStyle.Render(fmt.Sprintf("rotcoef %s", m.version)) +
		labelStyle.Render(fmt.Sprintf("  θ = %s  (point %d/%d)",
			strings.TrimSpace(format.FormatScientific(theta, m.config.Precision, 0)),
			m.thetaIdx+1, len(m.thetas)))
}

// tableView renders coefficient rows against strategy columns at the current
// angle, with the per-row spread across strategies in the last column.
func (m Model) tableView() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("%6s", "")))
	for _, res := range m.results {
		b.WriteString(titleStyle.Render(fmt.Sprintf("  %*s", m.config.Width, res.Name)))
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %*s", m.config.Width, "spread")))
	b.WriteByte('\n')

	for rowIdx, label := range rodrigues.CoefficientLabels {
		rowStyle := valueStyle
		if rowIdx == m.coefIdx {
			rowStyle = selectedRowStyle
		}

		b.WriteString(rowStyle.Render(fmt.Sprintf("%6s", label)))
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, res := range m.results {
			v := m.cell(res, rowIdx)
			cell := format.FormatScientific(v, m.config.Precision, m.config.Width)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				b.WriteString("  " + warnStyle.Render(cell))
			} else {
				b.WriteString("  " + rowStyle.Render(cell))
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
		}

		spread := hi - lo
		if lo > hi {
			b.WriteString("  " + warnStyle.Render(fmt.Sprintf("%*s", m.config.Width, "n/a")))
		} else {
			b.WriteString("  " + labelStyle.Render(format.FormatScientific(spread, 2, m.config.Width)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// cell returns one strategy's value for the coefficient row at the current
// angle, NaN for failed sweeps.
func (m Model) cell(res orchestration.EvaluationResult, rowIdx int) float64 {
	if res.Err != nil || rowIdx >= len(res.Rows) || m.thetaIdx >= len(res.Rows[rowIdx].Values) {
		return math.NaN()
	}
	return res.Rows[rowIdx].Values[m.thetaIdx]
}

// sparklineView renders the selected coefficient across the whole grid, one
// sparkline per strategy.
func (m Model) sparklineView() string {
	label := rodrigues.CoefficientLabels[m.coefIdx]
	width := m.width - 20
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s across the grid", label)))
	b.WriteByte('\n')
	for _, res := range m.results {
		if res.Err != nil || m.coefIdx >= len(res.Rows) {
			continue
		}
		values := Downsample(res.Rows[m.coefIdx].Values, width)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%10s ", res.Name)))
		b.WriteString(sparklineStyle.Render(RenderSparkline(values)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) helpView() string {
	bindings := []key.Binding{
		m.keymap.Left, m.keymap.Right, m.keymap.FastLeft, m.keymap.FastRight,
		m.keymap.Center, m.keymap.Up, m.keymap.Down, m.keymap.Help, m.keymap.Quit,
	}
	var b strings.Builder
	for _, binding := range bindings {
		b.WriteString(footerKeyStyle.Render(binding.Help().Key))
		b.WriteString(footerDescStyle.Render(" " + binding.Help().Desc + "  "))
	}
	return strings.TrimRight(b.String(), " ")
}

func (m Model) footerView() string {
	return footerDescStyle.Render(fmt.Sprintf(" cpu %.0f%%  mem %.0f%%  rss %dMiB  ",
		m.sys.CPUPercent, m.sys.MemPercent, m.sys.ProcessRSS/(1024*1024))) +
		footerKeyStyle.Render("?") + footerDescStyle.Render(" help  ") +
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")
}

// Run is the public entry point for the TUI mode. It runs the explorer and
// returns the process exit code.
func Run(ctx context.Context, evaluators []rodrigues.Evaluator, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, evaluators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startSweepCmd runs the grid sweep off the UI goroutine.
func startSweepCmd(ctx context.Context, evaluators []rodrigues.Evaluator, cfg config.AppConfig) tea.Cmd {
	return func() tea.Msg {
		thetas := orchestration.BuildGrid(cfg.Points, cfg.Step, cfg.Center)
		orch := orchestration.NewOrchestrator(nil)
		results, err := orch.EvaluateGrid(ctx, evaluators, thetas, orchestration.NullProgressReporter{})
		return ResultsMsg{Thetas: thetas, Results: results, Err: err}
	}
}

// tickCmd schedules the next resource sample.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system stats off the UI goroutine.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}
