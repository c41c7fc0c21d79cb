// Package tui is the interactive request editor. It never waits on the worker:
// every frame polls for at most one finished response.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/output"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const frameInterval = 50 * time.Millisecond

// Dispatcher is the worker as seen from the editor.
type Dispatcher interface {
	Submit(request input.Request) error
	TryRecv() (string, bool)
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type focus int

const (
	focusMethod focus = iota
	focusURL
	focusHeaders
	focusBody
	focusResponse
)

type headerRow struct {
	name  textinput.Model
	value textinput.Model
}

func newHeaderRow(field input.Field) headerRow {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Name"
	name.Width = 24
	name.SetValue(field.Name)

	value := textinput.New()
	value.Prompt = ""
	value.Placeholder = "Value"
	value.SetValue(field.Value)

	return headerRow{name: name, value: value}
}

type Model struct {
	dispatcher Dispatcher
	logger     *logrus.Entry
	copyText   func(string) error

	// request mirrors the widgets and is what gets cloned on submit.
	request input.Request

	url      textinput.Model
	headers  []headerRow
	body     textarea.Model
	response viewport.Model

	responseText string
	inFlight     int

	focus       focus
	headerIndex int
	headerCol   int

	width  int
	height int
}

func New(dispatcher Dispatcher, request *input.Request, logger *logrus.Logger) Model {
	url := textinput.New()
	url.Prompt = ""
	url.Placeholder = "https://example.com/"
	url.SetValue(request.URL)

	body := textarea.New()
	body.Placeholder = "Request body"
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetValue(request.Body)

	m := Model{
		dispatcher: dispatcher,
		logger:     logger.WithField("component", "tui"),
		copyText:   clipboard.WriteAll,
		request:    request.Clone(),
		url:        url,
		body:       body,
		response:   viewport.New(80, 10),
		focus:      focusURL,
	}
	for _, field := range request.Header.Fields {
		m.headers = append(m.headers, newHeaderRow(field))
	}
	m.resize(80, 24)
	m.applyFocus()
	return m
}

func Run(dispatcher Dispatcher, request *input.Request, logger *logrus.Logger, options ...tea.ProgramOption) error {
	options = append([]tea.ProgramOption{tea.WithAltScreen()}, options...)
	p := tea.NewProgram(New(dispatcher, request, logger), options...)
	_, err := p.Run()
	return errors.Wrap(err, "running editor")
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frame())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.drainResponse()
		return m, frame()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.submit()
			return m, nil
		case "ctrl+y":
			m.copyResponse()
			return m, nil
		case "tab":
			return m, m.moveFocus(1)
		case "shift+tab":
			return m, m.moveFocus(-1)
		case "ctrl+n":
			return m, m.addHeader()
		case "ctrl+d":
			if m.focus == focusHeaders {
				return m, m.deleteHeader()
			}
		}
		if m.focus == focusMethod {
			switch msg.String() {
			case "left", "h":
				m.request.Method = m.request.Method.Prev()
			case "right", "l", " ":
				m.request.Method = m.request.Method.Next()
			}
			return m, nil
		}
	}

	cmd := m.updateFocused(msg)
	m.syncRequest()
	return m, cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.url, cmd = m.url.Update(msg)
	case focusHeaders:
		row := &m.headers[m.headerIndex]
		if m.headerCol == 0 {
			row.name, cmd = row.name.Update(msg)
		} else {
			row.value, cmd = row.value.Update(msg)
		}
	case focusBody:
		m.body, cmd = m.body.Update(msg)
	case focusResponse:
		m.response, cmd = m.response.Update(msg)
	}
	return cmd
}

// syncRequest copies the widget contents into the request being edited.
func (m *Model) syncRequest() {
	m.request.URL = m.url.Value()
	m.request.Body = m.body.Value()
	fields := make([]input.Field, 0, len(m.headers))
	for _, row := range m.headers {
		fields = append(fields, input.Field{Name: row.name.Value(), Value: row.value.Value()})
	}
	m.request.Header.Fields = fields
}

func (m *Model) submit() {
	m.syncRequest()
	request := m.request.Clone()
	if err := m.dispatcher.Submit(request); err != nil {
		m.logger.WithError(err).Error("failed to submit request")
		return
	}
	m.inFlight++
	m.logger.WithFields(logrus.Fields{
		"method": request.Method,
		"url":    request.URL,
	}).Debug("request submitted")
}

func (m *Model) drainResponse() {
	text, ok := m.dispatcher.TryRecv()
	if !ok {
		return
	}
	m.responseText = text
	m.response.SetContent(text)
	m.response.GotoTop()
	if m.inFlight > 0 {
		m.inFlight--
	}
}

func (m *Model) copyResponse() {
	if err := m.copyText(m.responseText); err != nil {
		m.logger.WithError(err).Warn("failed to copy response to clipboard")
	}
}

func (m *Model) addHeader() tea.Cmd {
	m.headers = append(m.headers, newHeaderRow(input.Field{}))
	m.focus = focusHeaders
	m.headerIndex = len(m.headers) - 1
	m.headerCol = 0
	m.syncRequest()
	m.resize(m.width, m.height)
	return m.applyFocus()
}

func (m *Model) deleteHeader() tea.Cmd {
	m.headers = append(m.headers[:m.headerIndex], m.headers[m.headerIndex+1:]...)
	switch {
	case len(m.headers) == 0:
		m.focus = focusURL
		m.headerIndex = 0
	case m.headerIndex >= len(m.headers):
		m.headerIndex = len(m.headers) - 1
	}
	m.headerCol = 0
	m.syncRequest()
	m.resize(m.width, m.height)
	return m.applyFocus()
}

// Focus moves through method, URL, each header name and value, body and
// response, in that order.
func (m *Model) slotCount() int {
	return 4 + 2*len(m.headers)
}

func (m *Model) slot() int {
	switch m.focus {
	case focusMethod:
		return 0
	case focusURL:
		return 1
	case focusHeaders:
		return 2 + 2*m.headerIndex + m.headerCol
	case focusBody:
		return 2 + 2*len(m.headers)
	default:
		return 3 + 2*len(m.headers)
	}
}

func (m *Model) setSlot(i int) {
	n := 2 * len(m.headers)
	switch {
	case i == 0:
		m.focus = focusMethod
	case i == 1:
		m.focus = focusURL
	case i < 2+n:
		m.focus = focusHeaders
		m.headerIndex = (i - 2) / 2
		m.headerCol = (i - 2) % 2
	case i == 2+n:
		m.focus = focusBody
	default:
		m.focus = focusResponse
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := m.slotCount()
	m.setSlot(((m.slot()+delta)%n + n) % n)
	return m.applyFocus()
}

func (m *Model) applyFocus() tea.Cmd {
	m.url.Blur()
	m.body.Blur()
	for i := range m.headers {
		m.headers[i].name.Blur()
		m.headers[i].value.Blur()
	}

	switch m.focus {
	case focusURL:
		return m.url.Focus()
	case focusHeaders:
		if m.headerCol == 0 {
			return m.headers[m.headerIndex].name.Focus()
		}
		return m.headers[m.headerIndex].value.Focus()
	case focusBody:
		return m.body.Focus()
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.url.Width = max(width-10, 10)
	for i := range m.headers {
		m.headers[i].value.Width = max(width-38, 10)
	}
	m.body.SetWidth(max(width-2, 10))
	m.body.SetHeight(5)

	// title, method, URL, headers label, body label, status, help, borders
	used := 7 + 2 + max(len(m.headers), 1) + m.body.Height()
	m.response.Width = max(width-2, 10)
	m.response.Height = max(height-used, 3)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("httpui") + "\n")

	method := fmt.Sprintf("< %s >", m.request.Method)
	if m.focus == focusMethod {
		method = styleFocused.Render(method)
	} else {
		method = styleMethod.Render(method)
	}
	b.WriteString(styleLabel.Render("Method") + method + "\n")
	b.WriteString(styleLabel.Render("URL") + m.url.View() + "\n")

	b.WriteString(styleLabel.Render("Headers") + "\n")
	if len(m.headers) == 0 {
		b.WriteString(styleHint.Render("  (none, ctrl+n to add)") + "\n")
	}
	for _, row := range m.headers {
		b.WriteString("  " + row.name.View() + ": " + row.value.View() + "\n")
	}

	b.WriteString(styleLabel.Render("Body") + "\n")
	b.WriteString(m.body.View() + "\n")

	b.WriteString(m.statusLine() + "\n")
	box := styleResponse
	if m.focus == focusResponse {
		box = styleResponseFocused
	}
	b.WriteString(box.Render(m.response.View()) + "\n")

	b.WriteString(styleHint.Render("tab/shift+tab focus • ←/→ method • ctrl+s send • ctrl+n/ctrl+d header • ctrl+y copy • ctrl+c quit"))
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{styleLabel.Render("Response")}
	if m.inFlight > 0 {
		parts = append(parts, fmt.Sprintf("%d in flight", m.inFlight))
	}
	parts = append(parts, output.FormatSize(len(m.responseText)))
	return strings.Join(parts, " • ")
}
