package theme

func GetPredefinedThemes() map[string]*Theme {
	themes := make(map[string]*Theme)
	for _, t := range []*Theme{DefaultTheme(), DarkTheme(), LightTheme(), NordTheme()} {
		themes[t.Name] = t
	}
	return themes
}

func GetThemeNames() []string {
	return []string{"default", "dark", "light", "nord"}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#3B82F6",
		Secondary: "#60A5FA",
		Success:   "#22C55E",
		Error:     "#EF4444",
		Warning:   "#F59E0B",

		TextPrimary:   "#F5F5F5",
		TextSecondary: "#A3A3A3",
		TextMuted:     "#737373",

		PriorityUrgent:    "#EF4444",
		PriorityImportant: "#F97316",
		PriorityMid:       "#3B82F6",
		PriorityLow:       "#A3A3A3",

		ProgressDone:       "#22C55E",
		ProgressOngoing:    "#EAB308",
		ProgressNotStarted: "#A3A3A3",

		BorderColor:  "#3B82F6",
		HeaderBg:     "#1D4ED8",
		HeaderFg:     "#F5F5F5",
		Separator:    "#404040",
		HelpText:     "#A3A3A3",
		SubtitleText: "#737373",
		Pinned:       "#A855F7",
		Late:         "#EF4444",
		PopupBorder:  "#F59E0B",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",

		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		PriorityUrgent:    "#F7768E",
		PriorityImportant: "#FF9E64",
		PriorityMid:       "#7AA2F7",
		PriorityLow:       "#565F89",

		ProgressDone:       "#9ECE6A",
		ProgressOngoing:    "#E0AF68",
		ProgressNotStarted: "#565F89",

		BorderColor:  "#BB9AF7",
		HeaderBg:     "#24283B",
		HeaderFg:     "#C0CAF5",
		Separator:    "#414868",
		HelpText:     "#565F89",
		SubtitleText: "#9AA5CE",
		Pinned:       "#2AC3DE",
		Late:         "#F7768E",
		PopupBorder:  "#E0AF68",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary:   "#1D4ED8",
		Secondary: "#0369A1",
		Success:   "#15803D",
		Error:     "#B91C1C",
		Warning:   "#B45309",

		TextPrimary:   "#171717",
		TextSecondary: "#525252",
		TextMuted:     "#a3a3a3",

		PriorityUrgent:    "#B91C1C",
		PriorityImportant: "#C2410C",
		PriorityMid:       "#1D4ED8",
		PriorityLow:       "#525252",

		ProgressDone:       "#15803D",
		ProgressOngoing:    "#A16207",
		ProgressNotStarted: "#525252",

		BorderColor:  "#1D4ED8",
		HeaderBg:     "#DBEAFE",
		HeaderFg:     "#171717",
		Separator:    "#D4D4D4",
		HelpText:     "#525252",
		SubtitleText: "#737373",
		Pinned:       "#7E22CE",
		Late:         "#B91C1C",
		PopupBorder:  "#B45309",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		PriorityUrgent:    "#BF616A",
		PriorityImportant: "#D08770",
		PriorityMid:       "#81A1C1",
		PriorityLow:       "#4C566A",

		ProgressDone:       "#A3BE8C",
		ProgressOngoing:    "#EBCB8B",
		ProgressNotStarted: "#4C566A",

		BorderColor:  "#88C0D0",
		HeaderBg:     "#3B4252",
		HeaderFg:     "#ECEFF4",
		Separator:    "#434C5E",
		HelpText:     "#4C566A",
		SubtitleText: "#D8DEE9",
		Pinned:       "#B48EAD",
		Late:         "#BF616A",
		PopupBorder:  "#EBCB8B",
	}
}
