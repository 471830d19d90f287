package config

// KeyMappings defines all configurable key bindings of the terminal board
type KeyMappings struct {
	// Tickets
	MoveTicketLeft  string `yaml:"move_ticket_left"`
	MoveTicketRight string `yaml:"move_ticket_right"`
	DeleteTicket    string `yaml:"delete_ticket"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTicket string `yaml:"prev_ticket"`
	NextTicket string `yaml:"next_ticket"`
	NextSprint string `yaml:"next_sprint"`
	PrevSprint string `yaml:"prev_sprint"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		MoveTicketLeft:  "H",
		MoveTicketRight: "L",
		DeleteTicket:    "d",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTicket: "k",
		NextTicket: "j",
		NextSprint: "}",
		PrevSprint: "{",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.MoveTicketLeft, defaults.MoveTicketLeft)
	fill(&k.MoveTicketRight, defaults.MoveTicketRight)
	fill(&k.DeleteTicket, defaults.DeleteTicket)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTicket, defaults.PrevTicket)
	fill(&k.NextTicket, defaults.NextTicket)
	fill(&k.NextSprint, defaults.NextSprint)
	fill(&k.PrevSprint, defaults.PrevSprint)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
