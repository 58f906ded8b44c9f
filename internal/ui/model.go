package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nconklindev/rowify/internal/converter"
	"github.com/nconklindev/rowify/internal/download"
	"github.com/nconklindev/rowify/internal/form"
	"github.com/nconklindev/rowify/internal/tokenizer"
	"github.com/nconklindev/rowify/internal/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateEditing state = iota
	stateSubmitting
)

var labels = map[string]string{
	form.FieldFileName:    "File name",
	form.FieldHeader:      "Header",
	form.FieldInputString: "String",
}

type Model struct {
	state      state
	form       form.State
	inputs     []textinput.Model
	focus      int
	svc        *converter.Service
	downloader download.Downloader
	result     *types.ConversionResult
	err        error
	width      int
	height     int
}

type conversionCompleteMsg struct {
	state  form.State
	result *types.ConversionResult
	err    error
}

func InitialModel(svc *converter.Service, d download.Downloader) Model {
	inputs := make([]textinput.Model, len(form.Fields))
	for i, field := range form.Fields {
		ti := textinput.New()
		ti.Placeholder = form.Placeholders[field]
		ti.Prompt = "› "
		ti.PromptStyle = UnselectedStyle
		ti.Cursor.Style = SelectedStyle
		inputs[i] = ti
	}
	inputs[0].Focus()
	inputs[0].PromptStyle = SelectedStyle

	return Model{
		state:      stateEditing,
		form:       form.Reset(),
		inputs:     inputs,
		svc:        svc,
		downloader: d,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the form state the view is rendered from.
func (m Model) State() form.State {
	return m.form
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		width := msg.Width - 12
		if width < 20 {
			width = 20
		}
		for i := range m.inputs {
			m.inputs[i].Width = width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

		if m.state == stateSubmitting {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit()
		case "ctrl+s":
			return m.submit()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.form = m.form.Set(form.Fields[m.focus], m.inputs[m.focus].Value())
		return m, cmd

	case conversionCompleteMsg:
		m.state = stateEditing
		m.form = msg.state
		m.result = msg.result
		m.err = msg.err
		m.syncInputs()

		if msg.err != nil {
			slog.Error("Conversion failed", "error", msg.err)
			return m, nil
		}
		if msg.result != nil {
			return m, m.setFocus(0)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for idx := range m.inputs {
		if idx == m.focus {
			cmd = m.inputs[idx].Focus()
			m.inputs[idx].PromptStyle = SelectedStyle
			continue
		}
		m.inputs[idx].Blur()
		m.inputs[idx].PromptStyle = UnselectedStyle
	}
	return cmd
}

func (m *Model) syncInputs() {
	for i, field := range form.Fields {
		m.inputs[i].SetValue(m.form.Value(field))
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.state == stateSubmitting {
		return m, nil
	}
	m.state = stateSubmitting
	m.result = nil
	m.err = nil

	st := m.form
	svc := m.svc
	d := m.downloader

	return m, func() tea.Msg {
		next, result, err := svc.Submit(context.Background(), st, d)
		return conversionCompleteMsg{state: next, result: result, err: err}
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("▦ " + form.Title))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Use case: " + form.UseCase))
	s.WriteString("\n")

	for i, field := range form.Fields {
		label := UnselectedStyle.Render(labels[field])
		if i == m.focus {
			label = SelectedStyle.Render(labels[field])
		}
		s.WriteString(label)
		s.WriteString("\n")
		s.WriteString(m.inputs[i].View())
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(m.form.Error(field)))
		s.WriteString("\n")
	}

	s.WriteString(m.viewStatus())
	s.WriteString("\n")
	s.WriteString(m.viewExample())
	s.WriteString(HelpStyle.Render("tab/↑/↓: move • enter: next / convert • ctrl+s: convert • esc: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewStatus() string {
	switch {
	case m.state == stateSubmitting:
		return SubtitleStyle.Render("Converting...")
	case m.err != nil:
		return ErrorStyle.Render("✗ " + m.err.Error())
	case m.result != nil:
		path := m.result.Destination
		maxPathLen := m.width - 30
		if maxPathLen < 30 {
			maxPathLen = 30
		}
		if len(path) > maxPathLen {
			path = "..." + path[len(path)-maxPathLen+3:]
		}
		return SuccessStyle.Render(fmt.Sprintf("✓ Saved %s (%d rows under %q)", path, m.result.Tokens, m.result.Header))
	}
	return ""
}

func (m Model) viewExample() string {
	var rows []string
	rows = append(rows, CheckedStyle.Render(form.ExampleHeader))
	for _, token := range tokenizer.Tokenize(form.ExampleInput) {
		rows = append(rows, UnselectedStyle.Render(token))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		SubtitleStyle.Render("Example string: "+form.ExampleInput),
		ExampleStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}
