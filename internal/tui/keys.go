package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding

	// table
	Filter       key.Binding
	ClearFilters key.Binding
	OpenLink     key.Binding
	CopyLink     key.Binding
	Reload       key.Binding
	Save         key.Binding
	ViewPicker   key.Binding
	SaveView     key.Binding

	// column picker
	Sort      key.Binding
	ClearSort key.Binding
	Edit      key.Binding
	Leave     key.Binding

	// tag editor
	Toggle key.Binding
	Jump   key.Binding

	// view picker
	DeleteView key.Binding

	DismissPopup key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "back"),
		),

		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter & sort"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "clear filters"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in planner"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload plan"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save config"),
		),
		ViewPicker: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "saved views"),
		),
		SaveView: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save view as"),
		),

		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort / flip order"),
		),
		ClearSort: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "clear sort"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter/l", "edit filter"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "h", "left", "f"),
			key.WithHelp("esc/h", "back"),
		),

		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "cycle state"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to value"),
		),

		DeleteView: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete view"),
		),

		DismissPopup: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Filter, k.ClearFilters, k.OpenLink, k.CopyLink, k.Reload, k.ViewPicker, k.SaveView, k.Save, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.OpenLink, k.CopyLink, k.Back}
}

func (k keyMap) columnsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.ClearSort, k.Edit, k.Leave}
}

func (k keyMap) tagHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Jump, k.Leave}
}

func (k keyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.DeleteView, k.Leave}
}
