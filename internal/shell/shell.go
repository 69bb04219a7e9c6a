// Package shell is the interactive checklist window: a framed panel floating
// inside the terminal, holding the item list and a text input.
//
// All state lives in Model and changes only inside Update, which bubbletea
// runs on a single goroutine. File writes happen there too, so they never
// overlap.
package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklist/internal/checklist"
	"github.com/idilsaglam/checklist/internal/completion"
	"github.com/idilsaglam/checklist/internal/logging"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/ui"
)

const windowTitle = "CheckList"

// Store is the persistence the window reads and writes.
type Store interface {
	completion.Store
	LoadItems() ([]string, error)
	LoadGeometry() (model.Geometry, bool)
	SaveGeometry(g model.Geometry) error
}

// Options configures a new window.
type Options struct {
	Store  Store
	Logger *logging.Logger
	Theme  ui.Theme
	Icon   string

	// RemovalDelay is the pause between checking an item and archiving it.
	RemovalDelay time.Duration
	// BottomMargin pulls a restored window up when its top is this close
	// to the bottom of the terminal.
	BottomMargin int

	Now func() time.Time
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the application state owned by the window.
type Model struct {
	store Store
	log   *logging.Logger
	theme ui.Theme
	icon  string
	keys  KeyMap

	items    *checklist.List
	sched    *completion.Scheduler
	finisher completion.Finisher

	list  list.Model
	input textinput.Model
	focus focus

	screen       model.Screen
	geom         model.Geometry
	restored     *model.Geometry
	placed       bool
	bottomMargin int

	// dialog holds the message of the blocking error dialog, if one is open.
	dialog string
	// fatal is set when the program stops because of an unrecoverable error.
	fatal error
}

// New loads the saved items and geometry and builds the window state.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, fmt.Errorf("shell: nil store")
	}
	lg := opts.Logger
	if lg == nil {
		lg = logging.Discard()
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.ThemeNamed("classic")
	}
	texts, err := opts.Store.LoadItems()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		store:        opts.Store,
		log:          lg,
		theme:        opts.Theme,
		icon:         opts.Icon,
		keys:         DefaultKeyMap(),
		items:        checklist.New(texts),
		sched:        completion.NewScheduler(opts.RemovalDelay),
		finisher:     completion.Finisher{Store: opts.Store, Now: opts.Now},
		focus:        focusInput,
		bottomMargin: opts.BottomMargin,
	}
	if g, ok := opts.Store.LoadGeometry(); ok {
		m.restored = &g
		lg.Debug("geometry loaded", "left", g.Left, "top", g.Top, "width", g.Width, "height", g.Height)
	} else {
		lg.Debug("no usable geometry, window will be centred")
	}

	l := list.New(toListItems(texts), itemDelegate{theme: m.theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("item", "items")
	l.Styles.NoItems = m.theme.Muted
	m.list = l

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "New item..."
	m.input.PromptStyle = m.theme.Accent
	m.input.TextStyle = m.theme.Input
	m.input.Focus()

	lg.Info("checklist opened", "items", len(texts))
	return m, nil
}

// Run starts the window and blocks until it closes. An error that stopped
// the program (a failed items save) is returned.
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.titleText()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.onScreenSize(msg), nil
	case completion.DueMsg:
		return m.onDue(msg)
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// onScreenSize records the working area. The first one also places the
// window: restored geometry is clamped into view, otherwise it is centred.
func (m Model) onScreenSize(msg tea.WindowSizeMsg) Model {
	m.screen = model.Screen{Width: msg.Width, Height: msg.Height}
	if m.placed {
		return m
	}
	m.placed = true
	if m.restored != nil {
		m.geom = m.restored.EnforceMinimum().Clamp(m.screen, m.bottomMargin)
	} else {
		m.geom = model.Centered(m.screen)
	}
	m.log.Debug("window placed", "left", m.geom.Left, "top", m.geom.Top,
		"width", m.geom.Width, "height", m.geom.Height, "screen_height", m.screen.Height)
	m.relayout()
	return m
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.dialog != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dialog = ""
		}
		return m, nil
	}

	if g, ok := m.moveOrResize(msg); ok {
		return m.setGeometry(g), nil
	}
	if key.Matches(msg, m.keys.SwitchFocus) {
		return m.toggleFocus(), nil
	}

	if m.focus == focusInput {
		if key.Matches(msg, m.keys.Commit) {
			return m.commit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Check):
		return m.check()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// commit adds the trimmed input as a new item and saves the list.
func (m Model) commit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.items.Add(text)
	m.input.SetValue("")
	m.syncList()
	m.list.Select(m.items.Len() - 1)
	m.log.Info("item added", "text", text)
	if err := m.store.SaveItems(m.items.Items()); err != nil {
		return m.fail(err)
	}
	return m, nil
}

// check moves the selected item into PendingRemoval. Nothing about the row
// changes until the removal is due.
func (m Model) check() (tea.Model, tea.Cmd) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return m, nil
	}
	m.log.Debug("item checked", "text", it.Text, "delay", m.sched.Delay)
	return m, m.sched.Schedule(it.Text)
}

// onDue removes the first item matching the due text, saves the list and
// archives the completion.
func (m Model) onDue(msg completion.DueMsg) (tea.Model, tea.Cmd) {
	m.sched.Done(msg.Seq)
	res, err := m.finisher.Finish(m.items, msg.Text)
	m.syncList()
	if err != nil {
		return m.fail(err)
	}
	if !res.Removed {
		m.log.Warn("completed item was already gone", "text", msg.Text)
	}
	if res.ArchiveErr != nil {
		m.log.Error("archive failed", "err", res.ArchiveErr)
		m.dialog = fmt.Sprintf("Could not archive the completed item: %v", res.ArchiveErr)
		return m, nil
	}
	m.log.Info("item completed", "text", msg.Text, "pending", m.sched.Pending())
	return m, nil
}

// fail stops the program with an unrecoverable error.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.log.Error("fatal", "err", err)
	m.fatal = err
	return m, tea.Quit
}

func (m Model) moveOrResize(msg tea.KeyMsg) (model.Geometry, bool) {
	if !m.placed {
		return model.Geometry{}, false
	}
	g := m.geom
	switch {
	case key.Matches(msg, m.keys.MoveUp):
		g.Top = max(0, g.Top-1)
	case key.Matches(msg, m.keys.MoveDown):
		g.Top++
	case key.Matches(msg, m.keys.MoveLeft):
		g.Left = max(0, g.Left-1)
	case key.Matches(msg, m.keys.MoveRight):
		g.Left++
	case key.Matches(msg, m.keys.GrowDown):
		g.Height++
	case key.Matches(msg, m.keys.ShrinkUp):
		g.Height--
	case key.Matches(msg, m.keys.GrowRight):
		g.Width++
	case key.Matches(msg, m.keys.ShrinkLeft):
		g.Width--
	default:
		return model.Geometry{}, false
	}
	return g.EnforceMinimum(), true
}

// setGeometry applies a moved or resized window and saves it right away.
func (m Model) setGeometry(g model.Geometry) Model {
	if g == m.geom {
		return m
	}
	m.geom = g
	m.relayout()
	if err := m.store.SaveGeometry(g); err != nil {
		m.log.Warn("save geometry", "err", err)
	}
	return m
}

func (m *Model) relayout() {
	lay := LayoutFor(m.geom)
	m.list.SetSize(lay.InnerWidth, lay.ListHeight)
	m.input.Width = lay.InputWidth
}

func (m Model) toggleFocus() Model {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
	} else {
		m.focus = focusInput
		m.input.Focus()
	}
	m.list.SetDelegate(itemDelegate{theme: m.theme, focused: m.focus == focusList})
	return m
}

// syncList mirrors the item collection into the list widget.
func (m *Model) syncList() {
	idx := m.list.Index()
	m.list.SetItems(toListItems(m.items.Items()))
	if n := m.items.Len(); n > 0 {
		m.list.Select(min(idx, n-1))
	}
}

// Items returns the current item texts.
func (m Model) Items() []string { return m.items.Items() }

// Geometry returns the current window geometry.
func (m Model) Geometry() model.Geometry { return m.geom }

// Dialog returns the open error dialog's message, or "".
func (m Model) Dialog() string { return m.dialog }

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.fatal }

func (m Model) titleText() string {
	if m.icon == "" {
		return windowTitle
	}
	return m.icon + " " + windowTitle
}
