package theme

import (
	"github.com/charmbracelet/lipgloss"

	"plannerview/internal/domain"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle        lipgloss.Style
	TUISubtitle     lipgloss.Style
	TUIHelp         lipgloss.Style
	DetailContainer lipgloss.Style
	DetailLabel     lipgloss.Style
	DetailValue     lipgloss.Style
	Popup           lipgloss.Style
	Pinned          lipgloss.Style
	Late            lipgloss.Style
	Cursor          lipgloss.Style
	Marker          lipgloss.Style

	priority map[domain.Priority]lipgloss.Style
	progress map[domain.Progress]lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Styles{
		Success: fg(t.Success).Bold(true),
		Error:   fg(t.Error).Bold(true),
		Info:    fg(t.Primary),
		Title: fg(t.Secondary).
			Bold(true).
			PaddingTop(1).
			PaddingBottom(1),
		Subtitle: fg(t.SubtitleText).Italic(true),
		Header: fg(t.HeaderFg).
			Bold(true).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),
		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
		Separator: fg(t.Separator),

		TUITitle: fg(t.TextPrimary).
			Bold(true).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),
		TUISubtitle: fg(t.TextSecondary),
		TUIHelp:     fg(t.HelpText),
		DetailContainer: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),
		DetailLabel: fg(t.Primary).Bold(true),
		DetailValue: fg(t.TextPrimary),
		Popup: fg(t.TextPrimary).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.PopupBorder)).
			Padding(1, 3),
		Pinned: fg(t.Pinned).Bold(true),
		Late:   fg(t.Late),
		Cursor: fg(t.HeaderFg).Background(lipgloss.Color(t.Primary)).Bold(true),
		Marker: fg(t.Warning).Bold(true),

		priority: map[domain.Priority]lipgloss.Style{
			domain.PriorityUrgent:    fg(t.PriorityUrgent).Bold(true),
			domain.PriorityImportant: fg(t.PriorityImportant),
			domain.PriorityMid:       fg(t.PriorityMid),
			domain.PriorityLow:       fg(t.PriorityLow),
		},
		progress: map[domain.Progress]lipgloss.Style{
			domain.ProgressDone:       fg(t.ProgressDone),
			domain.ProgressOngoing:    fg(t.ProgressOngoing),
			domain.ProgressNotStarted: fg(t.ProgressNotStarted),
		},
	}
}

func (s *Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	if st, ok := s.priority[p]; ok {
		return st
	}
	return s.DetailValue
}

func (s *Styles) ProgressStyle(p domain.Progress) lipgloss.Style {
	if st, ok := s.progress[p]; ok {
		return st
	}
	return s.DetailValue
}
