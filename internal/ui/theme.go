package ui

import lipgloss "charm.land/lipgloss/v2"

// Theme is the glass look translated to terminal styles: soft panels,
// muted borders, one saturated accent per phase.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Card       lipgloss.Style
	Tile       lipgloss.Style
	TileTitle  lipgloss.Style
	TimerFocus lipgloss.Style
	TimerBreak lipgloss.Style
	Stat       lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Selected   lipgloss.Style
	Validation lipgloss.Style
	Glow       lipgloss.Style
	Status     lipgloss.Style
}

func DefaultTheme() Theme {
	return ThemeForVariant("glass_light")
}

func ThemeForVariant(variant string) Theme {
	if variant == "glass_dark" {
		return glassDarkTheme()
	}
	return glassLightTheme()
}

func glassLightTheme() Theme {
	ink := lipgloss.Color("#27364B")
	mist := lipgloss.Color("#7C8AA5")
	frost := lipgloss.Color("#AEC3DE")
	tomato := lipgloss.Color("#E2654F")
	sea := lipgloss.Color("#3E8E7E")
	sky := lipgloss.Color("#4A7BD0")
	rose := lipgloss.Color("#C94F6D")

	return Theme{
		Title:    lipgloss.NewStyle().Foreground(ink).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(mist),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(frost).
			Padding(1, 2),
		Tile: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(frost).
			Padding(0, 2),
		TileTitle:  lipgloss.NewStyle().Foreground(ink).Bold(true),
		TimerFocus: lipgloss.NewStyle().Foreground(tomato).Bold(true),
		TimerBreak: lipgloss.NewStyle().Foreground(sea).Bold(true),
		Stat:       lipgloss.NewStyle().Foreground(sky).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(ink),
		Muted:      lipgloss.NewStyle().Foreground(mist),
		Accent:     lipgloss.NewStyle().Foreground(sky).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(sky).Bold(true).Underline(true),
		Validation: lipgloss.NewStyle().Foreground(rose),
		Glow:       lipgloss.NewStyle().Foreground(frost),
		Status:     lipgloss.NewStyle().Foreground(mist),
	}
}

func glassDarkTheme() Theme {
	snow := lipgloss.Color("#E7EDF7")
	haze := lipgloss.Color("#8FA0BC")
	steel := lipgloss.Color("#3D516E")
	ember := lipgloss.Color("#FF8A70")
	mint := lipgloss.Color("#6FD3B4")
	azure := lipgloss.Color("#7FB1FF")
	coral := lipgloss.Color("#FF7E9B")

	return Theme{
		Title:    lipgloss.NewStyle().Foreground(snow).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(haze),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(steel).
			Padding(1, 2),
		Tile: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(steel).
			Padding(0, 2),
		TileTitle:  lipgloss.NewStyle().Foreground(snow).Bold(true),
		TimerFocus: lipgloss.NewStyle().Foreground(ember).Bold(true),
		TimerBreak: lipgloss.NewStyle().Foreground(mint).Bold(true),
		Stat:       lipgloss.NewStyle().Foreground(azure).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(snow),
		Muted:      lipgloss.NewStyle().Foreground(haze),
		Accent:     lipgloss.NewStyle().Foreground(azure).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(azure).Bold(true).Underline(true),
		Validation: lipgloss.NewStyle().Foreground(coral),
		Glow:       lipgloss.NewStyle().Foreground(steel),
		Status:     lipgloss.NewStyle().Foreground(haze),
	}
}
