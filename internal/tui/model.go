package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plannerview/internal/display"
	"plannerview/internal/domain"
	"plannerview/internal/opener"
	"plannerview/internal/repository"
	"plannerview/internal/tagfilter"
	"plannerview/internal/theme"
	"plannerview/internal/watch"
)

type viewMode int

const (
	tableView viewMode = iota
	detailView
	filterView
	viewPickerView
	saveViewView
)

// sub-state of filterView
type filterStage int

const (
	columnsStage filterStage = iota
	tagStage
	textStage
)

type filterPanel struct {
	stage  filterStage
	cursor int // index into domain.Columns()

	// editor for the column under the cursor
	column    domain.Column
	tags      tagfilter.UiTagFilter
	tagCursor int
	jumping   bool
	jumpInput textinput.Model
	textInput textinput.Model
}

type viewPicker struct {
	loading bool
	views   []*domain.SavedView
	cursor  int
}

// Options wires the model to its collaborators. Views and Watch are optional.
type Options struct {
	Plan           *domain.Plan
	Config         domain.ViewConfig
	PlanPath       string
	ViewConfigPath string
	LinkBase       string
	Load           LoadFunc
	Opener         opener.Opener
	Views          repository.ViewRepository
	Watch          <-chan watch.Event
	Theme          *theme.Theme
}

type Model struct {
	plan      *domain.Plan
	uniques   domain.UniqueTaskKeys
	cfg       domain.ViewConfig
	displayed []*domain.Task
	cursor    int

	viewMode   viewMode
	filter     filterPanel
	viewPicker viewPicker
	nameInput  textinput.Model
	detail     viewport.Model

	// stacked notices, dismissed together
	popup   []string
	message string

	table    table.Model
	help     help.Model
	keys     keyMap
	showHelp bool

	planPath       string
	viewConfigPath string
	linkBase       string
	load           LoadFunc
	opener         opener.Opener
	views          repository.ViewRepository
	watch          <-chan watch.Event

	theme  *theme.Theme
	styles *theme.Styles
	width  int
	height int

	ctx context.Context
}

func NewModel(opts Options) Model {
	th := opts.Theme
	if th == nil {
		th = theme.GetDefaultTheme()
	}
	plan := opts.Plan
	if plan == nil {
		plan = &domain.Plan{}
	}
	op := opts.Opener
	if op == nil {
		op = opener.System{}
	}

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(th.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(th.HeaderFg)).
		Background(lipgloss.Color(th.Primary)).
		Bold(true)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 30

	ji := textinput.New()
	ji.Prompt = "/"
	ji.Placeholder = "jump to value"
	ji.CharLimit = 100
	ji.Width = 30

	ni := textinput.New()
	ni.Placeholder = "view name"
	ni.CharLimit = 100
	ni.Width = 40

	m := Model{
		plan:           plan,
		uniques:        domain.NewUniqueTaskKeys(plan.Tasks),
		cfg:            opts.Config,
		viewMode:       tableView,
		filter:         filterPanel{jumpInput: ji, textInput: ti},
		nameInput:      ni,
		detail:         viewport.New(80, 20),
		table:          t,
		help:           help.New(),
		keys:           defaultKeyMap(),
		planPath:       opts.PlanPath,
		viewConfigPath: opts.ViewConfigPath,
		linkBase:       opts.LinkBase,
		load:           opts.Load,
		opener:         op,
		views:          opts.Views,
		watch:          opts.Watch,
		theme:          th,
		styles:         theme.NewStyles(th),
		width:          100,
		height:         30,
		ctx:            context.Background(),
	}
	m.resize()
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForDropCmd(m.watch)
}

// ViewConfig is the current filter and sort configuration.
func (m Model) ViewConfig() domain.ViewConfig {
	return m.cfg
}

// Displayed is the filtered and sorted task list currently shown.
func (m Model) Displayed() []*domain.Task {
	return m.displayed
}

// Popup returns the stacked notices, empty when no popup is shown.
func (m Model) Popup() []string {
	return m.popup
}

// recompute reprojects the plan after any change to plan, filter or sort.
func (m *Model) recompute() {
	m.displayed = domain.ProjectTasks(m.plan.Tasks, m.cfg)
	m.cursor = clampCursor(m.cursor, len(m.displayed))
	m.updateTableRows()
}

func (m *Model) setPlan(plan *domain.Plan) {
	m.plan = plan
	m.uniques = domain.NewUniqueTaskKeys(plan.Tasks)
	if m.viewMode == detailView {
		m.viewMode = tableView
	}
	if m.viewMode == filterView && m.filter.stage == tagStage {
		// the value universe changed, rebuild from the rule
		m.openEditor()
	}
	m.recompute()
}

func (m *Model) pushPopup(format string, args ...any) {
	m.popup = append(m.popup, fmt.Sprintf(format, args...))
}

func (m *Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.displayed) {
		return nil
	}
	return m.displayed[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clampCursor(m.cursor+delta, len(m.displayed))
	if len(m.displayed) > 0 {
		m.table.SetCursor(m.cursor)
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m *Model) resize() {
	bodyHeight := m.height - 6
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.table.SetHeight(bodyHeight)
	m.table.SetWidth(m.tableWidth())
	m.detail.Width = m.width - 4
	m.detail.Height = bodyHeight
	m.help.Width = m.width
}

// the filter panel takes a third of the screen while it is open
func (m *Model) tableWidth() int {
	if m.viewMode == filterView {
		return m.width - m.panelWidth() - 1
	}
	return m.width
}

func (m *Model) panelWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

const pinMarker = "★ "

const (
	bucketWidth   = 14
	progressWidth = 12
	priorityWidth = 11
	itemsWidth    = 5
	dateWidth     = 11
	labelsWidth   = 16
)

func (m *Model) tableColumns() []table.Column {
	fixed := bucketWidth + progressWidth + priorityWidth + itemsWidth + 2*dateWidth + labelsWidth
	nameWidth := m.tableWidth() - fixed - 2*8
	if nameWidth < 12 {
		nameWidth = 12
	}

	title := func(label string, col domain.Column) string {
		if order, ok := m.cfg.Sort.OrderFor(col); ok {
			if order.Ascending() {
				return label + " ▲"
			}
			return label + " ▼"
		}
		return label
	}

	return []table.Column{
		{Title: title("Name", domain.ColumnName), Width: nameWidth},
		{Title: title("Bucket", domain.ColumnBucket), Width: bucketWidth},
		{Title: title("Progress", domain.ColumnProgress), Width: progressWidth},
		{Title: title("Priority", domain.ColumnPriority), Width: priorityWidth},
		{Title: "Items", Width: itemsWidth},
		{Title: title("Created", domain.ColumnCreateDate), Width: dateWidth},
		{Title: title("Deadline", domain.ColumnDeadline), Width: dateWidth},
		{Title: "Labels", Width: labelsWidth},
	}
}

func (m *Model) updateTableRows() {
	cols := m.tableColumns()
	rows := make([]table.Row, len(m.displayed))
	for i, task := range m.displayed {
		rows[i] = m.taskToRow(task, cols[0].Width)
	}
	// columns first, rows are rendered against them
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(m.cursor)
	}
}

func (m *Model) taskToRow(task *domain.Task, nameWidth int) table.Row {
	// cells are truncated by width, so markers stay plain text
	name := display.Truncate(task.Name, nameWidth)
	if m.cfg.Filter.Pinned(task) {
		name = pinMarker + display.Truncate(task.Name, nameWidth-len([]rune(pinMarker)))
	}

	deadline := display.FormatDate(task.Deadline)
	if task.Late {
		deadline += "!"
	}

	return table.Row{
		name,
		display.Truncate(task.Bucket, bucketWidth),
		fmt.Sprintf("%s %s", display.GetProgressIcon(task.Progress), task.Progress),
		fmt.Sprintf("%s %s", display.GetPriorityIcon(task.Priority), task.Priority),
		display.FormatItems(task.ItemsCompleted),
		task.CreateDate.Format(domain.DateLayout),
		deadline,
		display.Truncate(strings.Join(task.Labels, ","), labelsWidth),
	}
}
