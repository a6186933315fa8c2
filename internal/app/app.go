// Package app contains the root application model: the editor and preview
// tabs, the status line, toasts, and the file watcher.
package app

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/inkwell/internal/buffer"
	"github.com/zjrosen/inkwell/internal/config"
	"github.com/zjrosen/inkwell/internal/flags"
	"github.com/zjrosen/inkwell/internal/highlight"
	"github.com/zjrosen/inkwell/internal/keys"
	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/pubsub"
	"github.com/zjrosen/inkwell/internal/ui/editor"
	"github.com/zjrosen/inkwell/internal/ui/markdown"
	"github.com/zjrosen/inkwell/internal/ui/styles"
	"github.com/zjrosen/inkwell/internal/ui/toaster"
	"github.com/zjrosen/inkwell/internal/watcher"
)

// Tab is the visible page.
type Tab int

const (
	TabEditor Tab = iota
	TabPreview
)

func (t Tab) String() string {
	if t == TabPreview {
		return "Preview"
	}
	return "Editor"
}

const (
	zoneTabEditor  = "inkwell-tab-editor"
	zoneTabPreview = "inkwell-tab-preview"
)

// Options configures the root model.
type Options struct {
	Config     config.Config
	ConfigPath string // where theme changes are saved; empty to not save
	FilePath   string // file being edited; empty for a scratch document
	Content    string
	Debug      bool
}

// fileLoadedMsg carries the file contents after a change on disk.
type fileLoadedMsg struct {
	text string
	err  error
}

// themeSavedMsg reports the result of persisting a theme change.
type themeSavedMsg struct {
	preset string
	err    error
}

// Model is the root application state.
type Model struct {
	opts    Options
	flags   *flags.Registry
	keys    keys.Keymap
	help    help.Model
	editor  editor.Model
	preview markdown.Preview
	toaster toaster.Model

	tab      Tab
	showHelp bool
	preset   string
	width    int
	height   int

	cancel        context.CancelFunc
	watcher       *watcher.Watcher
	watchListener *pubsub.ContinuousListener[watcher.WatcherEvent]
	logListener   *log.Listener
}

// New creates the root model and starts the file watcher when enabled.
func New(opts Options) Model {
	cfg := opts.Config
	registry := flags.New(cfg.Flags)
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		opts:    opts,
		flags:   registry,
		keys:    keys.Default(),
		help:    help.New(),
		editor:  editor.New(editorConfig(cfg, registry), opts.Content),
		preview: markdown.NewPreview(cfg.Preview.Style, cfg.Preview.Width).SetContent(opts.Content),
		toaster: toaster.New(),
		preset:  cfg.Theme.Preset,
		cancel:  cancel,
	}

	if cfg.Watch.Enabled && opts.FilePath != "" {
		wcfg := watcher.DefaultConfig(opts.FilePath)
		if cfg.Watch.Debounce > 0 {
			wcfg.DebounceDur = cfg.Watch.Debounce
		}
		if w, err := watcher.New(wcfg); err != nil {
			log.Warn(log.CatWatcher, "Failed to create watcher", "path", opts.FilePath, "error", err)
		} else if err := w.Start(); err != nil {
			log.Warn(log.CatWatcher, "Failed to start watcher", "path", opts.FilePath, "error", err)
			_ = w.Stop()
		} else {
			m.watcher = w
			m.watchListener = pubsub.NewContinuousListener[watcher.WatcherEvent](ctx, w.Broker())
		}
	}

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m
}

func editorConfig(cfg config.Config, registry *flags.Registry) editor.Config {
	ec := editor.DefaultConfig()
	ec.TabWidth = cfg.Editor.TabWidth
	ec.HistoryLimit = cfg.Editor.HistoryLimit
	ec.Placeholder = cfg.Editor.Placeholder
	ec.ShowToolbar = cfg.Editor.ShowToolbar
	ec.CacheEnabled = cfg.Cache.Enabled
	ec.CacheTTL = cfg.Cache.TTL
	ec.Highlighter = highlight.New(highlight.Options{
		InlineHeadings: registry.Enabled(flags.FlagHeadingInline),
	})
	return ec
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.watchListener.Listen(), m.logListener.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.App.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.App.TogglePreview):
			return m.switchTab(m.otherTab()), nil
		case key.Matches(msg, m.keys.App.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.App.CycleTheme):
			return m.cycleTheme()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if z := zone.Get(zoneTabEditor); z != nil && z.InBounds(msg) {
				return m.switchTab(TabEditor), nil
			}
			if z := zone.Get(zoneTabPreview); z != nil && z.InBounds(msg) {
				return m.switchTab(TabPreview), nil
			}
		}

	case editor.ChangedMsg:
		m.preview = m.preview.SetContent(m.editor.Value())
		return m, nil

	case pubsub.Event[watcher.WatcherEvent]:
		return m.handleWatcherEvent(msg)

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case log.Event:
		var cmd tea.Cmd
		switch msg.Payload.Level {
		case log.LevelWarn:
			m.toaster, cmd = m.toaster.ShowFor(msg.Payload.Message, toaster.StyleWarn, toaster.DefaultDuration)
		case log.LevelError:
			m.toaster, cmd = m.toaster.ShowFor(msg.Payload.Message, toaster.StyleError, toaster.DefaultDuration)
		}
		return m, tea.Batch(cmd, m.logListener.Listen())

	case themeSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "Failed to save theme", msg.err, "preset", msg.preset)
			var cmd tea.Cmd
			m.toaster, cmd = m.toaster.ShowFor("Could not save theme: "+msg.err.Error(), toaster.StyleError, toaster.DefaultDuration)
			return m, cmd
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	if m.tab == TabPreview {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) previewEnabled() bool {
	return m.flags.Enabled(flags.FlagPreviewTab)
}

func (m Model) otherTab() Tab {
	if m.tab == TabEditor {
		return TabPreview
	}
	return TabEditor
}

func (m Model) switchTab(tab Tab) Model {
	if tab == TabPreview && !m.previewEnabled() {
		return m
	}
	m.tab = tab
	if tab == TabPreview {
		m.editor.Blur()
		m.preview = m.preview.SetContent(m.editor.Value()).Refresh()
	} else {
		m.editor.Focus()
	}
	log.Debug(log.CatUI, "Switched tab", "tab", tab)
	return m
}

// cycleTheme applies the next built-in preset and saves it.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	names := slices.Sorted(maps.Keys(styles.Presets))
	next := names[0]
	if i := slices.Index(names, m.preset); i >= 0 {
		next = names[(i+1)%len(names)]
	}

	theme := m.opts.Config.Theme
	theme.Preset = next
	if err := styles.ApplyTheme(theme.Styles()); err != nil {
		log.ErrorErr(log.CatUI, "Failed to apply theme", err, "preset", next)
		return m, nil
	}
	m.preset = next
	m.opts.Config.Theme = theme

	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.ShowFor("Theme: "+next, toaster.StyleInfo, toaster.DefaultDuration)
	if path := m.opts.ConfigPath; path != "" {
		save := func() tea.Msg {
			return themeSavedMsg{preset: next, err: config.SaveTheme(path, theme)}
		}
		cmd = tea.Batch(cmd, save)
	}
	return m, cmd
}

func (m Model) handleWatcherEvent(ev pubsub.Event[watcher.WatcherEvent]) (tea.Model, tea.Cmd) {
	listen := m.watchListener.Listen()
	var cmd tea.Cmd

	switch ev.Payload.Type {
	case watcher.FileChanged:
		if m.editor.Dirty() {
			log.Info(log.CatWatcher, "File changed on disk, keeping local edits", "path", ev.Payload.Path)
			m.toaster, cmd = m.toaster.ShowFor("File changed on disk; keeping your edits", toaster.StyleWarn, toaster.DefaultDuration)
			return m, tea.Batch(cmd, listen)
		}
		return m, tea.Batch(readFile(ev.Payload.Path), listen)

	case watcher.FileRemoved:
		m.toaster, cmd = m.toaster.ShowFor("File removed on disk", toaster.StyleWarn, toaster.DefaultDuration)
		return m, tea.Batch(cmd, listen)

	case watcher.WatcherError:
		log.Warn(log.CatWatcher, "Watcher error received", "error", ev.Payload.Error)
	}
	return m, listen
}

func readFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileLoadedMsg{err: fmt.Errorf("reading %s: %w", path, err)}
		}
		return fileLoadedMsg{text: string(data)}
	}
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.err != nil {
		log.ErrorErr(log.CatWatcher, "Reload failed", msg.err)
		m.toaster, cmd = m.toaster.ShowFor("Reload failed", toaster.StyleError, toaster.DefaultDuration)
		return m, cmd
	}
	// An edit may have landed while the file was being read.
	if m.editor.Dirty() || msg.text == m.editor.Value() {
		return m, nil
	}
	m.editor.Load(msg.text)
	m.preview = m.preview.SetContent(msg.text)
	if m.tab == TabPreview {
		m.preview = m.preview.Refresh()
	}
	m.toaster, cmd = m.toaster.ShowFor("Reloaded from disk", toaster.StyleInfo, toaster.DefaultDuration)
	return m, cmd
}

// resize lays out the tab row, the framed page, the help and the status line.
func (m *Model) resize() {
	helpHeight := 0
	if m.showHelp {
		helpHeight = lipgloss.Height(m.help.View(m.keys))
	}
	pageHeight := max(m.height-2-helpHeight, 3)
	inner := max(m.width-2, 1)

	m.editor.SetSize(inner, pageHeight-2)
	m.preview = m.preview.SetSize(inner, pageHeight-2)
	if m.tab == TabPreview {
		m.preview = m.preview.Refresh()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	helpView, helpHeight := "", 0
	if m.showHelp {
		helpView = m.help.View(m.keys)
		helpHeight = lipgloss.Height(helpView)
	}
	pageHeight := max(m.height-2-helpHeight, 3)

	var page, title string
	if m.tab == TabPreview {
		page = m.preview.View()
		title = "Preview"
		if ind := m.preview.ScrollIndicator(); ind != "" {
			title += " " + ind
		}
	} else {
		page = m.editor.View()
		title = m.fileTitle()
	}

	parts := []string{
		m.tabsView(),
		styles.Panel(page, title, m.width, pageHeight, true),
		m.statusView(),
	}
	if m.showHelp {
		parts = append(parts, helpView)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return zone.Scan(m.toaster.Overlay(view))
}

func (m Model) fileTitle() string {
	name := "untitled.md"
	if m.opts.FilePath != "" {
		name = filepath.Base(m.opts.FilePath)
	}
	if m.editor.Dirty() {
		name += " ●"
	}
	return name
}

func (m Model) tabsView() string {
	tabs := []Tab{TabEditor}
	if m.previewEnabled() {
		tabs = append(tabs, TabPreview)
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		st := styles.TabStyle
		if t == m.tab {
			st = styles.TabActiveStyle
		}
		id := zoneTabEditor
		if t == TabPreview {
			id = zoneTabPreview
		}
		rendered = append(rendered, zone.Mark(id, st.Render(t.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// statusView is "N lines | N words | N chars" on the left and the caret
// position on the right, cut to the screen width.
func (m Model) statusView() string {
	if !m.opts.Config.Editor.ShowStatusBar {
		return ""
	}
	s := buffer.Count(m.editor.Value())
	left := fmt.Sprintf("%d lines | %d words | %d chars", s.Lines, s.Words, s.Chars)

	row, col := m.editor.CaretPosition()
	right := fmt.Sprintf("Ln %d, Col %d", row+1, col+1)

	inner := max(m.width-2, 0) // StatusBarStyle pads one cell each side
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 2 {
		line = left + fmt.Sprintf("%*s", gap+lipgloss.Width(right), right)
	}
	return styles.StatusBarStyle.Render(truncate.StringWithTail(line, uint(inner), "…"))
}

// Editor returns the editor model.
func (m Model) Editor() editor.Model { return m.editor }

// Tab returns the visible tab.
func (m Model) Tab() Tab { return m.tab }

// Close stops the watcher and every listener.
func (m *Model) Close() {
	m.cancel()
	if m.watcher != nil {
		if err := m.watcher.Stop(); err != nil {
			log.Warn(log.CatWatcher, "Failed to stop watcher", "error", err)
		}
	}
}
