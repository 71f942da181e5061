package tagfilter

// State is the membership of one value in a single-valued tag filter.
type State int

const (
	StateNil State = iota
	StateOr
	StateNot
)

// Next cycles Nil -> Or -> Not -> Nil.
func (s State) Next() State {
	switch s {
	case StateNil:
		return StateOr
	case StateOr:
		return StateNot
	default:
		return StateNil
	}
}

func (s State) Symbol() string {
	switch s {
	case StateOr:
		return "+"
	case StateNot:
		return "-"
	default:
		return " "
	}
}

// MultiState is the membership of one value in a multi-valued tag filter.
type MultiState int

const (
	MultiNil MultiState = iota
	MultiOr
	MultiAnd
	MultiNot
)

// Next cycles Nil -> Or -> And -> Not -> Nil.
func (s MultiState) Next() MultiState {
	switch s {
	case MultiNil:
		return MultiOr
	case MultiOr:
		return MultiAnd
	case MultiAnd:
		return MultiNot
	default:
		return MultiNil
	}
}

func (s MultiState) Symbol() string {
	switch s {
	case MultiOr:
		return "+"
	case MultiAnd:
		return "*"
	case MultiNot:
		return "-"
	default:
		return " "
	}
}
