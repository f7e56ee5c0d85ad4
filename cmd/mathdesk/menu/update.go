package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mathdesk/internal/logging"
)

// Update is the bubbletea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case resizeSettledMsg:
		m.applySize(msg.width, msg.height)
		return m, m.waitExternal()

	case configReloadedMsg:
		m.applyTheme(msg.cfg)
		return m, m.waitReload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChildren(msg)
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// The first size must apply immediately or the UI starts blank;
	// later bursts settle through the debouncer.
	if !m.ready {
		m.ready = true
		m.applySize(msg.Width, msg.Height)
		return m, nil
	}
	m.resizeDeb.Resize(msg.Width, msg.Height, func(w, h int) {
		m.externalMsg <- resizeSettledMsg{width: w, height: h}
	})
	return m, nil
}

func (m *Model) applySize(width, height int) {
	m.width = width
	m.height = height

	transcriptHeight := height / 3
	if transcriptHeight < 4 {
		transcriptHeight = 4
	}
	listHeight := height - transcriptHeight - 3
	if listHeight < 5 {
		listHeight = 5
	}

	m.list.SetSize(width, listHeight)
	m.viewport.Width = width
	m.viewport.Height = transcriptHeight
	m.input.Width = width - 8
	m.log.Debug("resized to %dx%d", width, height)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.log.Info("session %s ended", m.sessionID)
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	switch m.state {
	case stateMenu:
		return m.handleMenuKey(msg)
	case statePrompt:
		return m.handlePromptKey(msg)
	case stateResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is open, every key belongs to the list.
	if m.list.SettingFilter() {
		return m.updateChildren(msg)
	}

	switch msg.String() {
	case "q":
		m.log.Info("session %s ended", m.sessionID)
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "enter":
		item, ok := m.list.SelectedItem().(opItem)
		if !ok {
			return m, nil
		}
		m.beginPrompt(item)
		return m, nil
	}

	return m.updateChildren(msg)
}

func (m *Model) beginPrompt(item opItem) {
	m.op = item.op
	m.paramIdx = 0
	m.answers = m.answers[:0]
	m.draft = ""
	m.history.Reset()
	m.state = statePrompt
	m.preparePrompt()
	logging.Get(logging.CategoryMenu).Debug("prompting for %s", m.op.ID)
}

func (m *Model) preparePrompt() {
	p := m.op.Params[m.paramIdx]
	m.input.Reset()
	m.input.Placeholder = fmt.Sprintf("%s (%s)", p.Name, p.Hint)
	m.input.Focus()
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		m.input.Blur()
		return m, nil

	case tea.KeyUp:
		if m.history.cursor == len(m.history.entries) {
			m.draft = m.input.Value()
		}
		if entry, ok := m.history.Prev(); ok {
			m.input.SetValue(entry)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if entry, ok := m.history.Next(); ok {
			m.input.SetValue(entry)
		} else {
			m.input.SetValue(m.draft)
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyEnter:
		answer := strings.TrimSpace(m.input.Value())
		if answer == "" {
			return m, nil
		}
		m.history.Add(answer)
		m.draft = ""
		m.answers = append(m.answers, answer)
		if m.paramIdx+1 < len(m.op.Params) {
			m.paramIdx++
			m.preparePrompt()
			return m, nil
		}
		m.invoke()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) invoke() {
	r := m.op.Invoke(m.answers)
	m.lastFailed = !r.IsSuccess()
	if r.IsSuccess() {
		m.lastResult = r.Value()
	} else {
		m.lastResult = r.Message()
	}

	call := fmt.Sprintf("» %s %s", m.op.ID, strings.Join(m.answers, " "))
	m.transcript = append(m.transcript, m.styles.Muted.Render(call))
	if m.lastFailed {
		m.transcript = append(m.transcript, m.styles.Error.Render("Error: "+m.lastResult))
		m.log.Info("%s %v failed: %s", m.op.ID, m.answers, m.lastResult)
	} else {
		m.transcript = append(m.transcript, m.styles.Success.Render(m.lastResult))
		m.log.Info("%s %v ok", m.op.ID, m.answers)
	}
	m.viewport.SetContent(m.transcriptText())
	m.viewport.GotoBottom()

	m.input.Blur()
	m.state = stateResult
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.state = stateMenu
		return m, nil
	}
	// Let the transcript scroll while the result is showing.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		m.list, cmd = m.list.Update(msg)
	case statePrompt:
		m.input, cmd = m.input.Update(msg)
	case stateResult:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}
