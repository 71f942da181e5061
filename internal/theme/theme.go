package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// priority
	PriorityUrgent    string
	PriorityImportant string
	PriorityMid       string
	PriorityLow       string

	// progress
	ProgressDone       string
	ProgressOngoing    string
	ProgressNotStarted string

	// UI element
	BorderColor  string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
	Pinned       string
	Late         string
	PopupBorder  string
}
