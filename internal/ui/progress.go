// Package ui renders Compile's progress as an optional terminal UI
// (SPEC_FULL.md §5), grounded on the teacher's internal/ui/progress.go
// bubbletea model, adapted from the teacher's per-file build/link/run
// stage progress to this compiler's per-file parse stage plus five
// whole-compilation stages (index/resolve/cycle/encoding/validate).
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"slicec/internal/compiler"
)

// wholeCompilationStages run once per Compile call rather than once per
// input file, and are displayed as a single ongoing row instead of one
// row per source file.
var wholeCompilationStages = []string{"index", "resolve", "cycle", "encoding", "validate"}

type fileItem struct {
	path   string
	status string
}

type eventMsg compiler.Event
type doneMsg struct{}

type progressModel struct {
	title      string
	events     <-chan compiler.Event
	spinner    spinner.Model
	prog       progress.Model
	files      []fileItem
	fileIndex  map[string]int
	stages     map[string]string
	stageLabel string
	width      int
	done       bool
}

// NewProgressModel returns a Bubble Tea model rendering Compile's
// progress over files and the whole-compilation stages that follow.
func NewProgressModel(title string, sources []string, events <-chan compiler.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	files := make([]fileItem, 0, len(sources))
	index := make(map[string]int, len(sources))
	for i, src := range sources {
		files = append(files, fileItem{path: src, status: "queued"})
		index[src] = i
	}
	stages := make(map[string]string, len(wholeCompilationStages))
	for _, s := range wholeCompilationStages {
		stages[s] = "queued"
	}

	return &progressModel{
		title:     title,
		events:    events,
		spinner:   sp,
		prog:      prog,
		files:     files,
		fileIndex: index,
		stages:    stages,
		width:     80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.apply(compiler.Event(msg))
		return m, tea.Batch(cmd, m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.stageLabel != "" {
		header = fmt.Sprintf("%s (%s)", header, m.stageLabel)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(title.Render(header))
	b.WriteString("\n\n")

	nameWidth := m.width - 16
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, f := range m.files {
		b.WriteString(fmt.Sprintf("  %s %s\n", styleStatus(f.status).Render(fmt.Sprintf("%12s", f.status)), truncate(f.path, nameWidth)))
	}
	for _, name := range wholeCompilationStages {
		status := m.stages[name]
		b.WriteString(fmt.Sprintf("  %s %s\n", styleStatus(status).Render(fmt.Sprintf("%12s", status)), name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev compiler.Event) tea.Cmd {
	label := statusLabel(ev.Status)
	if ev.File == "" {
		if _, ok := m.stages[ev.Stage]; ok {
			m.stages[ev.Stage] = label
			m.stageLabel = ev.Stage
		}
	} else if idx, ok := m.fileIndex[ev.File]; ok {
		m.files[idx].status = label
		m.stageLabel = ev.Stage
	}
	return m.prog.SetPercent(m.fraction())
}

func (m *progressModel) fraction() float64 {
	total := len(m.files) + len(wholeCompilationStages)
	if total == 0 {
		return 1
	}
	done := 0
	for _, f := range m.files {
		if f.status == "done" || f.status == "error" {
			done++
		}
	}
	for _, s := range m.stages {
		if s == "done" || s == "error" {
			done++
		}
	}
	return float64(done) / float64(total)
}

func statusLabel(status compiler.Status) string {
	switch status {
	case compiler.StatusQueued:
		return "queued"
	case compiler.StatusWorking:
		return "working"
	case compiler.StatusDone:
		return "done"
	case compiler.StatusError:
		return "error"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "working":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
