package config

// Theme defines the colors of the terminal board
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent         string `yaml:"accent"`
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	Title          string `yaml:"title"`
	Subtle         string `yaml:"subtle"`
	Normal         string `yaml:"normal"`
	Error          string `yaml:"error"`
}

// DefaultTheme returns the default purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset:         "default",
		Accent:         "#874BFD",
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		Error:          "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		ColumnBorder:   "#808080",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		Title:          "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		Error:          "#FFFFFF",
	}
}

// presetTheme returns a preset by name, falling back to the default
func presetTheme(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the selected preset
func (t *Theme) ApplyDefaults() {
	preset := presetTheme(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fillMissing(t, preset)
}

// MergeFrom overrides colors with every non-empty value of other
func (t *Theme) MergeFrom(other Theme) {
	for dst, src := range t.pairs(&other) {
		if *src != "" {
			*dst = *src
		}
	}
}

func fillMissing(t *Theme, preset Theme) {
	for dst, src := range t.pairs(&preset) {
		if *dst == "" {
			*dst = *src
		}
	}
}

// pairs maps each color field of t to the same field of other
func (t *Theme) pairs(other *Theme) map[*string]*string {
	return map[*string]*string{
		&t.Accent:         &other.Accent,
		&t.ColumnBorder:   &other.ColumnBorder,
		&t.CardBorder:     &other.CardBorder,
		&t.SelectedBorder: &other.SelectedBorder,
		&t.Title:          &other.Title,
		&t.Subtle:         &other.Subtle,
		&t.Normal:         &other.Normal,
		&t.Error:          &other.Error,
	}
}
