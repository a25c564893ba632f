package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bootfmt"
	"github.com/wippyai/bootfmt/format"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldFormat = iota
	fieldArgs
	fieldCount
)

type playgroundModel struct {
	err      error
	output   string
	inputs   []textinput.Model
	focusIdx int
	layout   format.Layout
	strict   bool
}

func newPlaygroundModel() *playgroundModel {
	inputs := make([]textinput.Model, fieldCount)

	fi := textinput.New()
	fi.Prompt = "format: "
	fi.Placeholder = "%d-%x"
	fi.Width = 60
	fi.Focus()
	inputs[fieldFormat] = fi

	ai := textinput.New()
	ai.Prompt = "args:   "
	ai.Placeholder = "d:-5,x:255"
	ai.Width = 60
	inputs[fieldArgs] = ai

	return &playgroundModel{
		inputs: inputs,
		layout: format.HostLayout,
	}
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "ctrl+l":
			if m.layout.PtrSize == 8 {
				m.layout = format.Layout32
			} else {
				m.layout = format.Layout64
			}
			m.render()
			return m, nil

		case "ctrl+s":
			m.strict = !m.strict
			m.render()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.render()
	return m, tea.Batch(cmds...)
}

// render re-runs the engine against the current inputs.
func (m *playgroundModel) render() {
	m.output = ""
	m.err = nil

	args, err := parseArgs(m.layout, m.inputs[fieldArgs].Value())
	if err != nil {
		m.err = err
		return
	}

	opts := []format.Option{format.WithLayout(m.layout)}
	if m.strict {
		opts = append(opts, format.WithStrict())
	}

	var buf bootfmt.Buffer
	p := format.New(&buf, opts...)
	if err := p.Print(m.inputs[fieldFormat].Value(), args); err != nil {
		m.err = err
		return
	}
	m.output = buf.String()
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	mode := fmt.Sprintf("%d-bit", m.layout.PtrSize*8)
	if m.strict {
		mode += " strict"
	}
	b.WriteString(titleStyle.Render("bootfmt playground"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(mode))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("output:"))
	b.WriteString(" ")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(outputStyle.Render(fmt.Sprintf("%q", m.output)))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch field • ctrl+l layout • ctrl+s strict • esc quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newPlaygroundModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
