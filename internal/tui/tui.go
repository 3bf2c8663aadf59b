// Package tui is the Bubble Tea front end of the editor. It owns the root
// model, translates terminal events into state messages, runs them through
// the state.Apply reducer, and schedules the pipeline commands the reducer
// asks for. All file I/O happens inside those commands, never here.
package tui

import (
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/document"
	"scrawl/internal/highlight"
	"scrawl/internal/pipeline"
	"scrawl/internal/tui/state"
	"scrawl/internal/tui/widgets/opendialog"
	"scrawl/internal/tui/widgets/saveprompt"
	"scrawl/internal/tui/widgets/themepicker"
)

// Run starts the editor over the given startup file and blocks until exit.
func Run(defaultFile string) error {
	p := tea.NewProgram(New(defaultFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ===== Model =====

type mode string

const (
	modeEdit    mode = "edit"    // buffer focused
	modeOpen    mode = "open"    // file-open dialog
	modeSaveAs  mode = "saveas"  // save-as prompt
	modeTheme   mode = "theme"   // theme picker
	modeHelp    mode = "help"    // key help overlay
	modeChanges mode = "changes" // unsaved-changes diff overlay
)

// Model is the root Bubble Tea model.
type Model struct {
	st   state.State
	mode mode
	keys KeyMap

	// modal overlays
	open  opendialog.Model
	save  saveprompt.Model
	theme themepicker.Model

	// highlighted preview pane
	preview     viewport.Model
	showPreview bool

	// changes overlay
	changes viewport.Model

	width  int
	height int

	// lastSaved mirrors the text of the last successful load or save; it
	// feeds the status-bar diff summary and the changes overlay. pending
	// holds the text captured when a save was scheduled.
	lastSaved string
	pending   string

	notice string // ephemeral status note (clipboard etc.)

	defaultFile string
	quitting    bool
}

// New returns the startup model. The default file is loaded from Init so the
// editor opens with content on first paint.
func New(defaultFile string) Model {
	return Model{
		st:          state.New(document.New(80, 24)),
		mode:        modeEdit,
		keys:        DefaultKeyMap(),
		defaultFile: defaultFile,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("Text Editor")}
	if m.defaultFile != "" {
		cmds = append(cmds, pipeline.Load(m.defaultFile))
	}
	return tea.Batch(cmds...)
}

// State exposes the current editor state for tests.
func (m Model) State() state.State { return m.st }

// ===== Update =====

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case state.Msg:
		// Pipeline results land here as ordinary messages.
		return m.apply(msg)

	case opendialog.PickedMsg:
		m.mode = modeEdit
		return m, pipeline.Load(msg.Path)
	case opendialog.CancelledMsg:
		m.mode = modeEdit
		return m.apply(state.FileOpened{Err: state.ErrDialogClosed})

	case saveprompt.SubmittedMsg:
		m.mode = modeEdit
		return m, pipeline.Write(msg.Path, m.pending)
	case saveprompt.CancelledMsg:
		m.mode = modeEdit
		m.pending = ""
		return m.apply(state.FileSaved{Err: state.ErrDialogClosed})

	case themepicker.ChosenMsg:
		m.mode = modeEdit
		return m.apply(state.ThemeSelected{Theme: msg.Theme})
	case themepicker.CancelledMsg:
		m.mode = modeEdit
		return m, nil
	}

	// Anything else (filepicker reads, blink ticks) belongs to the overlay.
	return m.routeToOverlay(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	// A modal overlay owns the keyboard while it is up.
	if m.mode == modeHelp || m.mode == modeChanges {
		m.mode = modeEdit
		return m, nil
	}
	if m.mode != modeEdit {
		return m.routeToOverlay(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		return m.apply(state.SaveRequested{})

	case key.Matches(msg, m.keys.Open):
		return m.apply(state.OpenRequested{})

	case key.Matches(msg, m.keys.New):
		m.lastSaved = ""
		return m.apply(state.NewRequested{})

	case key.Matches(msg, m.keys.Theme):
		m.mode = modeTheme
		m.theme = themepicker.New(m.st.Theme)
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		m = m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.Changes):
		m = m.openChanges()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.st.Doc.Text()); err != nil {
			m.notice = "copy failed"
		} else {
			m.notice = "buffer copied"
		}
		return m, nil

	case key.Matches(msg, m.keys.Paste):
		text, err := clipboard.ReadAll()
		if err != nil || text == "" {
			m.notice = "clipboard empty"
			return m, nil
		}
		m.notice = ""
		return m.apply(state.Edit{Action: document.InsertAction{Text: text}})
	}

	m.notice = ""
	return m.apply(state.Edit{Action: document.KeyAction{Key: msg}})
}

// apply runs one message through the reducer and schedules whatever command
// it returns.
func (m Model) apply(msg state.Msg) (tea.Model, tea.Cmd) {
	next, cmd := state.Apply(m.st, msg)
	m.st = next

	// Bookkeeping outside the reducer's remit.
	switch ms := msg.(type) {
	case state.FileOpened:
		if ms.Err == nil {
			m.lastSaved = ms.Text
		}
	case state.FileSaved:
		if ms.Err == nil {
			m.lastSaved = m.pending
			m.pending = ""
		}
	}

	m = m.layout()
	return m.schedule(cmd)
}

// schedule turns a reducer command into the matching pipeline work. The
// dialog-backed operations flip the model into the overlay mode that will
// resolve them; each still yields exactly one FileOpened/FileSaved result.
func (m Model) schedule(cmd state.Command) (tea.Model, tea.Cmd) {
	switch c := cmd.(type) {
	case state.PickOpen:
		m.mode = modeOpen
		m.open = opendialog.New(m.startDir(), m.overlayHeight())
		return m, m.open.Init()

	case state.Load:
		return m, pipeline.Load(c.Path)

	case state.Save:
		m.pending = c.Text
		if c.Path == "" {
			m.mode = modeSaveAs
			m.save = saveprompt.New(saveprompt.DefaultName)
			return m, m.save.Init()
		}
		return m, pipeline.Write(c.Path, c.Text)
	}
	return m, nil
}

func (m Model) routeToOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeOpen:
		m.open, cmd = m.open.Update(msg)
	case modeSaveAs:
		m.save, cmd = m.save.Update(msg)
	case modeTheme:
		m.theme, cmd = m.theme.Update(msg)
	}
	return m, cmd
}

// startDir picks where the open dialog begins browsing.
func (m Model) startDir() string {
	if m.st.Path != "" {
		return filepath.Dir(m.st.Path)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (m Model) overlayHeight() int {
	if m.height > 8 {
		return m.height - 8
	}
	return 10
}

// ===== Layout =====

// layout resizes the buffer and preview panes and refreshes the preview
// content. Sizing bypasses the reducer; it is a view concern.
func (m Model) layout() Model {
	if m.width == 0 {
		return m
	}
	bodyHeight := m.height - 2 // toolbar + status bar
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	bufWidth := m.width
	if m.showPreview {
		bufWidth = m.width / 2
		m.preview = viewport.New(m.width-bufWidth-1, bodyHeight)
		m.preview.SetContent(highlight.Render(m.st.Doc.Text(), m.st.Path, m.st.Theme))
	}
	if buf, ok := m.st.Doc.(document.Buffer); ok {
		m.st.Doc = buf.SetSize(bufWidth, bodyHeight)
	}
	return m
}
