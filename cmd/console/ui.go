package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/plot-engine/internal/handlers"
	"github.com/jwebster45206/plot-engine/pkg/analytics"
	"github.com/jwebster45206/plot-engine/pkg/plot"
)

// Dashboard panels.
const (
	panelBeats = iota
	panelConflicts
	panelResearch
)

// DashboardUI is the BubbleTea model that runs the analytics dashboard.
// https://github.com/charmbracelet/bubbletea
type DashboardUI struct {
	config    *ConsoleConfig
	client    *http.Client
	projectID string

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	loading  bool
	err      error
	panel    int
	copied   bool

	structure *plot.PlotStructure
	progress  *handlers.ProgressResponse
	curves    []analytics.ConflictCurve
	dashboard *handlers.DashboardResponse
}

type refreshMsg struct {
	structure *plot.PlotStructure
	progress  *handlers.ProgressResponse
	curves    []analytics.ConflictCurve
	dashboard *handlers.DashboardResponse
	err       error
}

var (
	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewDashboardUI(cfg *ConsoleConfig, client *http.Client, projectID string) DashboardUI {
	vp := viewport.New(80, 24)
	vp.MouseWheelEnabled = true

	return DashboardUI{
		config:    cfg,
		client:    client,
		projectID: projectID,
		viewport:  vp,
		loading:   true,
		panel:     panelBeats,
	}
}

func (m DashboardUI) Init() tea.Cmd {
	return m.refresh()
}

// refresh pulls every panel's data in one command.
func (m DashboardUI) refresh() tea.Cmd {
	client, baseURL, projectID := m.client, m.config.APIBaseURL, m.projectID
	return func() tea.Msg {
		var msg refreshMsg
		msg.dashboard, msg.err = getDashboard(client, baseURL, projectID)
		if msg.err != nil {
			return msg
		}

		// The structure endpoints 404 before first generation; the
		// dashboard still renders its empty state.
		if ps, err := getStructure(client, baseURL, projectID); err == nil {
			msg.structure = ps
		}
		if pr, err := getProgress(client, baseURL, projectID); err == nil {
			msg.progress = pr
		}
		if curves, err := getConflictCurves(client, baseURL, projectID); err == nil {
			msg.curves = curves
		}
		return msg
	}
}

func (m DashboardUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 4
		m.ready = true
		m.writeContent()
		return m, nil

	case refreshMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.structure = msg.structure
			m.progress = msg.progress
			m.curves = msg.curves
			m.dashboard = msg.dashboard
		}
		m.writeContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.copied = false
			m.writeContent()
			return m, m.refresh()
		case "1":
			m.panel = panelBeats
			m.writeContent()
			return m, nil
		case "2":
			m.panel = panelConflicts
			m.writeContent()
			return m, nil
		case "3":
			m.panel = panelResearch
			m.writeContent()
			return m, nil
		case "c":
			m.copied = clipboard.WriteAll(m.reportText()) == nil
			m.writeContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DashboardUI) View() string {
	if !m.ready {
		return "Loading..."
	}
	return panelStyle.Render(m.viewport.View()) + "\n" + m.statusLine()
}

func (m DashboardUI) statusLine() string {
	tabs := []string{"1 Beats", "2 Conflicts", "3 Research"}
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.panel {
			parts[i] = activeTabStyle.Render(t)
		} else {
			parts[i] = tabStyle.Render(t)
		}
	}
	line := "   " + strings.Join(parts, "  ") + tabStyle.Render("   r refresh  c copy  q quit")
	if m.copied {
		line += doneStyle.Render("  copied!")
	}
	return line
}

func (m *DashboardUI) writeContent() {
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("PLOT ENGINE") + "  " + pendingStyle.Render(m.projectID) + "\n\n")

	if m.loading {
		content.WriteString(loadingStyle.Render("Refreshing analytics...") + "\n")
		m.viewport.SetContent(content.String())
		return
	}
	if m.err != nil {
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
		m.viewport.SetContent(content.String())
		return
	}

	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	switch m.panel {
	case panelBeats:
		content.WriteString(m.renderBeats(width))
	case panelConflicts:
		content.WriteString(m.renderConflicts(width))
	case panelResearch:
		content.WriteString(m.renderResearch(width))
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoTop()
}

func (m *DashboardUI) renderBeats(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("BEAT SHEET") + "\n\n")

	if m.structure == nil || len(m.structure.Beats) == 0 {
		b.WriteString("No plot structure yet.\n")
		b.WriteString(pendingStyle.Render("Generate one: POST /v1/structures/"+m.projectID+"/generate") + "\n")
		return b.String()
	}

	if m.progress != nil {
		b.WriteString(fmt.Sprintf("Overall completion: %d%%\n", m.progress.CompletionPercent))
		for _, act := range m.progress.Acts {
			b.WriteString(fmt.Sprintf("  %-10s %d/%d beats (%d%%)\n", act.Act, act.Completed, act.Total, act.Percent))
		}
		b.WriteString("\n")
	}

	for _, beat := range m.structure.Beats {
		mark := pendingStyle.Render("·")
		if beat.IsCompleted {
			mark = doneStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s %5.1f%%  %-26s %6d words\n", mark, beat.Percentage, beat.Name, beat.WordCount))
	}
	b.WriteString(fmt.Sprintf("\nTarget: %d words\n", m.structure.TargetWordCount))
	return b.String()
}

func (m *DashboardUI) renderConflicts(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("CONFLICT ESCALATION") + "\n\n")

	if len(m.curves) == 0 {
		b.WriteString("No conflicts defined.\n")
		return b.String()
	}

	for _, curve := range m.curves {
		b.WriteString(fmt.Sprintf("%s (%s)\n", curve.ConflictID, curve.Type))
		for _, p := range curve.Points {
			bar := int(p.Intensity * 3)
			if bar < 0 {
				bar = 0
			}
			if bar > width-20 {
				bar = width - 20
			}
			b.WriteString(fmt.Sprintf("  %5.1f%% %s %.1f\n",
				p.Position, barStyle.Render(strings.Repeat("█", bar)), p.Intensity))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *DashboardUI) renderResearch(width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("RESEARCH") + "\n\n")

	if m.dashboard == nil || m.dashboard.Research == nil {
		b.WriteString("No research analytics available.\n")
		return b.String()
	}

	r := m.dashboard.Research
	b.WriteString(fmt.Sprintf("Items: %d   Provider: %s\n", r.TotalItems, r.Provider))
	b.WriteString(fmt.Sprintf("Facts: %d verified, %d disputed, %d unknown\n", r.VerifiedFacts, r.DisputedFacts, r.UnknownFacts))
	b.WriteString(fmt.Sprintf("Average reliability: %.1f/10\n", r.AverageReliability))
	b.WriteString(fmt.Sprintf("Verification rate: %.0f%%   Source diversity: %.0f%%\n\n", r.FactVerificationRate, r.SourceDiversityScore))

	if len(r.ResearchGaps) > 0 {
		b.WriteString(headingStyle.Render("Gaps") + "\n")
		for _, gap := range r.ResearchGaps {
			b.WriteString(wordwrap.String("• "+gap, width) + "\n")
		}
	}
	return b.String()
}

// reportText builds the plain-text report copied to the clipboard.
func (m *DashboardUI) reportText() string {
	var b strings.Builder
	b.WriteString("Plot Engine report: " + m.projectID + "\n\n")
	if m.progress != nil {
		b.WriteString(fmt.Sprintf("Completion: %d%%\n", m.progress.CompletionPercent))
	}
	if m.structure != nil {
		b.WriteString(fmt.Sprintf("Beats: %d, target %d words\n", len(m.structure.Beats), m.structure.TargetWordCount))
	}
	if m.dashboard != nil && m.dashboard.Research != nil {
		r := m.dashboard.Research
		b.WriteString(fmt.Sprintf("Research: %d items, %.0f%% verified\n", r.TotalItems, r.FactVerificationRate))
	}
	b.WriteString(fmt.Sprintf("Conflicts tracked: %d\n", len(m.curves)))
	return b.String()
}
