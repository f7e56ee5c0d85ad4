package menu

import (
	"fmt"
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	if m.showHelp {
		b.WriteString(m.viewHelp())
	} else {
		switch m.state {
		case stateMenu:
			b.WriteString(m.list.View())
		case statePrompt:
			b.WriteString(m.viewPrompt())
		case stateResult:
			b.WriteString(m.viewResult())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.RenderDivider(m.width))
	b.WriteString("\n")
	b.WriteString(m.viewTranscript())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m *Model) viewPrompt() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.op.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.op.Summary))
	b.WriteString("\n\n")

	for i, answer := range m.answers {
		p := m.op.Params[i]
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s: ", p.Name)))
		b.WriteString(m.styles.Body.Render(answer))
		b.WriteString("\n")
	}

	p := m.op.Params[m.paramIdx]
	b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("  %s (%s):", p.Name, p.Hint)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter submit · esc back · up/down history"))
	return b.String()
}

func (m *Model) viewResult() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.op.Title))
	b.WriteString("\n")
	if m.lastFailed {
		b.WriteString(m.styles.ResultBlock.BorderForeground(m.styles.Theme.Border).Render(
			m.styles.Error.Render("Error: " + m.lastResult)))
	} else {
		b.WriteString(m.styles.ResultBlock.Render(m.styles.Success.Render(m.lastResult)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter to return to the menu"))
	return b.String()
}

func (m *Model) viewHelp() string {
	item, ok := m.list.SelectedItem().(opItem)
	if !ok {
		return m.styles.Muted.Render("no operation selected")
	}

	doc := fmt.Sprintf("# %s\n\n%s\n", item.op.Title, item.op.Doc)
	if len(item.op.Aliases) > 0 {
		doc += fmt.Sprintf("\nAlso answers to: `%s`\n", strings.Join(item.op.Aliases, "`, `"))
	}

	var b strings.Builder
	b.WriteString(m.safeRenderMarkdown(doc))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("? or esc to close"))
	return b.String()
}

// safeRenderMarkdown renders markdown, falling back to the raw text if
// the renderer is unavailable or panics on malformed input.
func (m *Model) safeRenderMarkdown(md string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("markdown renderer panicked: %v", r)
			out = md
		}
	}()

	if m.renderer == nil {
		return md
	}
	rendered, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func (m *Model) viewTranscript() string {
	if len(m.transcript) == 0 {
		return m.styles.Muted.Render("  results will appear here")
	}
	return m.viewport.View()
}

func (m *Model) viewFooter() string {
	hints := "enter select · ? help · q quit"
	if m.state == statePrompt {
		hints = "enter submit · esc back"
	}
	return m.styles.Footer.Render(fmt.Sprintf("%s · session %s", hints, m.sessionID))
}
