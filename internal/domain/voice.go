package domain

// DefaultVoice is the narrator used when none is chosen.
const DefaultVoice = "echo"

// Voice is one supported narrator voice with its menu label.
type Voice struct {
	ID    string
	Label string
}

// Voices lists the supported narrator voices in menu order.
var Voices = []Voice{
	{ID: "alloy", Label: "Alloy (neutralny)"},
	{ID: "echo", Label: "Echo (męski)"},
	{ID: "fable", Label: "Fable (brytyjski akcent)"},
	{ID: "onyx", Label: "Onyx (głęboki męski)"},
	{ID: "nova", Label: "Nova (żeński)"},
	{ID: "shimmer", Label: "Shimmer (ciepły żeński)"},
}

// IsValidVoice reports whether id names a supported voice.
func IsValidVoice(id string) bool {
	for _, v := range Voices {
		if v.ID == id {
			return true
		}
	}
	return false
}
