package domain

// ViewConfig is the persisted filter and sort configuration.
type ViewConfig struct {
	Filter TaskFilter `toml:"filter" json:"filter"`
	Sort   TaskSort   `toml:"sort" json:"sort"`
}

func DefaultViewConfig() ViewConfig {
	return ViewConfig{Sort: DefaultTaskSort()}
}

func (c ViewConfig) Validate() error {
	if !c.Sort.Column.Valid() {
		return &ValidationError{Field: "sort.column", Value: string(c.Sort.Column)}
	}
	switch c.Sort.Order {
	case "", OrderAscending, OrderDescending:
	default:
		return &ValidationError{Field: "sort.order", Value: string(c.Sort.Order)}
	}
	return c.Filter.Validate()
}

type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Value
}

// ProjectTasks filters then sorts tasks into the displayed list.
// The input slice is left untouched.
func ProjectTasks(tasks []*Task, cfg ViewConfig) []*Task {
	displayed := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if cfg.Filter.Passes(t) {
			displayed = append(displayed, t)
		}
	}
	SortTasks(displayed, cfg.Sort)
	return displayed
}
