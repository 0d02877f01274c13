package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"drugdiscovery/internal/analysis"
	"drugdiscovery/internal/client"
	"drugdiscovery/internal/sequence"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Analyzer is what the form submits to.
type Analyzer interface {
	Analyze(ctx context.Context, sequence string) (*analysis.Result, error)
}

type notice struct {
	title   string
	text    string
	isError bool
}

type resultMsg struct {
	result *analysis.Result
}

type errMsg struct {
	err error
}

// Model is the interactive sequence form. Results from the last successful
// analysis stay on screen until a new one succeeds.
type Model struct {
	analyzer  Analyzer
	timeout   time.Duration
	input     textarea.Model
	spinner   spinner.Model
	analyzing bool
	result    *analysis.Result
	notice    *notice
	width     int
}

func NewModel(analyzer Analyzer, timeout time.Duration) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste a protein sequence (amino acids, e.g. MKTAYIAK...)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = labelStyle

	return Model{
		analyzer: analyzer,
		timeout:  timeout,
		input:    ta,
		spinner:  sp,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-2, minCardWidth))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "ctrl+l":
			if m.analyzing {
				return m, nil
			}
			m.input.SetValue(sequence.Sample)
			m.notice = &notice{title: "Sample Loaded", text: "Sample protein sequence loaded for testing"}
			return m, nil
		}
		if m.analyzing {
			return m, nil
		}

	case resultMsg:
		m.analyzing = false
		m.result = msg.result
		m.notice = &notice{
			title: "Analysis Complete",
			text:  fmt.Sprintf("Found %d potential drug candidates", len(msg.result.DrugCandidates)),
		}
		return m, nil

	case errMsg:
		m.analyzing = false
		m.notice = &notice{title: "Analysis Failed", text: failureText(msg.err), isError: true}
		return m, nil

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}
	seq := m.input.Value()
	if strings.TrimSpace(seq) == "" {
		m.notice = &notice{title: "Input Required", text: "Please enter a protein sequence", isError: true}
		return m, nil
	}
	m.analyzing = true
	m.notice = nil
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(seq))
}

func (m Model) analyzeCmd(seq string) tea.Cmd {
	analyzer, timeout := m.analyzer, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		res, err := analyzer.Analyze(ctx, seq)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{result: res}
	}
}

func failureText(err error) string {
	if errors.Is(err, client.ErrEmptySequence) {
		return "Please enter a protein sequence"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Failed to analyze protein sequence"
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Drug Discovery AI"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("GNN + Transformers + Cross Attention"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Protein Sequence"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d residues · ctrl+s discover · ctrl+l load sample · esc quit",
		len(sequence.Clean(m.input.Value())))))
	b.WriteString("\n\n")

	switch {
	case m.analyzing:
		b.WriteString(m.spinner.View() + " Analyzing with AI Models...\n\n")
	case m.notice != nil:
		style := successStyle
		if m.notice.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(m.notice.title) + " " + m.notice.text + "\n\n")
	}

	if m.result != nil {
		b.WriteString(RenderResult(m.result, m.width))
		b.WriteString("\n")
	} else if !m.analyzing {
		b.WriteString(mutedStyle.Render("Enter a protein sequence above to discover potential drug candidates."))
		b.WriteString("\n")
	}
	return b.String()
}
