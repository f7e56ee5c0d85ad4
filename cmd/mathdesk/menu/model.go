// Package menu implements the interactive shells around the arithmetic
// catalog: a bubbletea TUI and a plain line-mode loop. Both parse text
// through the catalog's registry and print results verbatim; neither
// adds semantics of its own.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"mathdesk/cmd/mathdesk/ui"
	"mathdesk/internal/arith"
	"mathdesk/internal/config"
	"mathdesk/internal/logging"
)

// state tracks which surface the TUI is showing.
type state int

const (
	stateMenu   state = iota // operation list
	statePrompt              // one textinput per parameter
	stateResult              // outcome of the last invocation
)

// Messages for tea updates.
type (
	// configReloadedMsg carries a hot-reloaded configuration.
	configReloadedMsg struct{ cfg *config.Config }

	// resizeSettledMsg arrives once a resize burst has settled.
	resizeSettledMsg struct{ width, height int }
)

// opItem adapts an arith.Operation to the bubbles list.
type opItem struct {
	index int
	op    arith.Operation
}

func (i opItem) Title() string       { return fmt.Sprintf("%2d. %s", i.index+1, i.op.Title) }
func (i opItem) Description() string { return i.op.Summary }
func (i opItem) FilterValue() string { return i.op.ID + " " + i.op.Title }

// Model is the bubbletea model for the interactive menu.
type Model struct {
	list     list.Model
	input    textinput.Model
	viewport viewport.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	cfg     *config.Config
	watcher *config.Watcher

	state    state
	showHelp bool
	ready    bool
	width    int
	height   int

	// Prompt state: the selected operation, which parameter is being
	// asked for, and the answers collected so far.
	op       arith.Operation
	paramIdx int
	answers  []string
	draft    string // live input saved while recalling history

	// Last invocation outcome, also appended to the transcript.
	lastResult  string
	lastFailed  bool
	transcript  []string
	history     *history
	sessionID   string
	resizeDeb   *ui.ResizeDebouncer
	externalMsg chan tea.Msg

	log *logging.Logger
}

// New builds the TUI model. The watcher may be nil, in which case the
// theme is fixed for the session.
func New(cfg *config.Config, watcher *config.Watcher) *Model {
	styles := ui.NewStyles(ui.DetectTheme(cfg.Theme))

	ti := textinput.New()
	ti.Prompt = "│ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	vp := viewport.New(80, 12)

	items := make([]list.Item, 0, 20)
	for i, op := range arith.Catalog() {
		items = append(items, opItem{index: i, op: op})
	}
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Theme.Accent).BorderLeftForeground(styles.Theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Theme.Muted).BorderLeftForeground(styles.Theme.Accent)

	l := list.New(items, delegate, 80, 20)
	l.Title = "mathdesk"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.Styles.Title = styles.Header

	return &Model{
		list:        l,
		input:       ti,
		viewport:    vp,
		styles:      styles,
		renderer:    newRenderer(styles.Theme.IsDark),
		cfg:         cfg,
		watcher:     watcher,
		state:       stateMenu,
		history:     newHistory(cfg.HistorySize),
		sessionID:   uuid.NewString(),
		resizeDeb:   ui.NewResizeDebouncer(ui.DefaultResizeDuration),
		externalMsg: make(chan tea.Msg, 4),
		log:         logging.Get(logging.CategorySession),
	}
}

func newRenderer(dark bool) *glamour.TermRenderer {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(76)}
	if dark {
		opts = append(opts, glamour.WithStylePath("dark"))
	} else {
		opts = append(opts, glamour.WithStylePath("light"))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	return r
}

// Init starts the external-message pump and, when a watcher is
// attached, the config reload pump.
func (m *Model) Init() tea.Cmd {
	m.log.Info("session %s started", m.sessionID)
	cmds := []tea.Cmd{textinput.Blink, m.waitExternal()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitReload())
	}
	return tea.Batch(cmds...)
}

// waitExternal delivers messages posted from outside the update loop,
// such as settled resizes.
func (m *Model) waitExternal() tea.Cmd {
	return func() tea.Msg {
		return <-m.externalMsg
	}
}

// waitReload blocks on the watcher and surfaces reloaded configs.
func (m *Model) waitReload() tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-m.watcher.Updates()
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

// SessionID exposes the session identifier shown in the footer.
func (m *Model) SessionID() string { return m.sessionID }

// applyTheme re-derives styles after a config change.
func (m *Model) applyTheme(cfg *config.Config) {
	m.cfg = cfg
	m.styles = ui.NewStyles(ui.DetectTheme(cfg.Theme))
	m.renderer = newRenderer(m.styles.Theme.IsDark)
	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.UserInput
	m.list.Styles.Title = m.styles.Header
	m.log.Info("theme switched to %s", cfg.Theme)
}

// transcriptText renders the transcript for the viewport.
func (m *Model) transcriptText() string {
	return strings.Join(m.transcript, "\n")
}

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config, watcher *config.Watcher) error {
	m := New(cfg, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
