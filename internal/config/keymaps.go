package config

// KeyMappings defines all configurable key bindings of the board viewer
type KeyMappings struct {
	// Columns
	ToggleColumn    string `yaml:"toggle_column"`
	AddBucket       string `yaml:"add_bucket"`
	RemoveBucket    string `yaml:"remove_bucket"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Items
	AddItem  string `yaml:"add_item"`
	NextItem string `yaml:"next_item"`
	PrevItem string `yaml:"prev_item"`

	// View
	NextView string `yaml:"next_view"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Columns
		ToggleColumn:    " ",
		AddBucket:       "b",
		RemoveBucket:    "X",
		MoveColumnLeft:  "H",
		MoveColumnRight: "L",

		// Items
		AddItem:  "a",
		NextItem: "j",
		PrevItem: "k",

		// View
		NextView: "v",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",

		// Other
		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}
	fill(&k.ToggleColumn, defaults.ToggleColumn)
	fill(&k.AddBucket, defaults.AddBucket)
	fill(&k.RemoveBucket, defaults.RemoveBucket)
	fill(&k.MoveColumnLeft, defaults.MoveColumnLeft)
	fill(&k.MoveColumnRight, defaults.MoveColumnRight)
	fill(&k.AddItem, defaults.AddItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextView, defaults.NextView)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.Quit, defaults.Quit)
}
