// Package viz renders a live terminal view of a driven material.
package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ferrosim/internal/ferro"
)

const (
	graphWidth      = 70
	graphHeight     = 14
	historyCapacity = 600
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pausedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

type TickMsg time.Time

// Model holds the driven material, its energy history, and UI state.
type Model struct {
	mat     *ferro.Material
	initial *ferro.Config
	preset  string

	dt        float64
	scanSpeed float64
	t         float64

	history   []float64
	paramKeys []string
	selected  int
	running   bool
	fps       int
	width     int
}

func NewModel(preset string, cfg *ferro.Config, dt, scanSpeed float64, fps int) (Model, error) {
	mat, err := ferro.New(cfg.Clone())
	if err != nil {
		return Model{}, err
	}

	keys := make([]string, 0)
	for k := range mat.GetParams() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		mat:       mat,
		initial:   cfg.Clone(),
		preset:    preset,
		dt:        dt,
		scanSpeed: scanSpeed,
		history:   make([]float64, 0, historyCapacity),
		paramKeys: keys,
		running:   true,
		fps:       fps,
		width:     80,
	}, nil
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) step() {
	x := m.scanSpeed * m.t
	energy := m.mat.EnergyDensity(x, 0, m.t)
	m.t += m.dt

	m.history = append(m.history, energy)
	if len(m.history) > historyCapacity {
		m.history = m.history[len(m.history)-historyCapacity:]
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "r":
		mat, err := ferro.New(m.initial.Clone())
		if err == nil {
			m.mat = mat
			m.t = 0
			m.history = m.history[:0]
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.paramKeys)-1 {
			m.selected++
		}
	case "left", "h":
		m.adjustParam(0.9)
	case "right", "l":
		m.adjustParam(1.1)
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	key := m.paramKeys[m.selected]
	v := m.mat.GetParams()[key]
	m.mat.SetParam(key, v*factor)
}

func (m Model) View() string {
	var b strings.Builder

	status := ""
	if !m.running {
		status = pausedStyle.Render("  [paused]")
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("ferrosim live — %s preset", m.preset)) + status + "\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(min(graphWidth, m.width-8)),
			asciigraph.Caption("energy density"),
		)
		b.WriteString(graphStyle.Render(graph) + "\n")
	} else {
		b.WriteString(graphStyle.Render("collecting samples...") + "\n")
	}

	b.WriteString(m.statsView() + "\n")
	b.WriteString(helpStyle.Render("space pause · r reset · ↑/↓ select param · ←/→ adjust · q quit"))

	return b.String()
}

func (m Model) statsView() string {
	var b strings.Builder

	row := func(label string, value float64) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf("%.6g", value)) + "\n")
	}

	row("t", m.t)
	row("polarization", m.mat.Polarization())
	row("magnetization", m.mat.Magnetization())
	row("strain", m.mat.Strain())
	b.WriteString("\n")

	params := m.mat.GetParams()
	for i, key := range m.paramKeys {
		line := labelStyle.Render(key) + valueStyle.Render(fmt.Sprintf("%.6g", params[key]))
		if i == m.selected {
			line = activeParamStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return statsStyle.Render(b.String())
}

// Run drives the material under a live terminal view until the user quits.
func Run(preset string, cfg *ferro.Config, dt, scanSpeed float64, fps int) error {
	m, err := NewModel(preset, cfg, dt, scanSpeed, fps)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
