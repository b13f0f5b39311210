package services

import "strings"

type paletteTheme struct {
	needles []string
	phrase  string
}

// paletteThemes are checked in order against every keyword.
var paletteThemes = []paletteTheme{
	{[]string{"climate", "forest", "green", "energy"}, "Verdant pine, misty teal, and copper sparks for regenerative energy"},
	{[]string{"finance", "market", "economy", "bank"}, "Slate blue, graphite, and gold linework for analytical clarity"},
	{[]string{"health", "bio", "care", "medical"}, "Clean ivory, coral, and calm teal for wellbeing signals"},
	{[]string{"culture", "language", "word", "story"}, "Sepia ink, violet, and warm amber for storytelling warmth"},
	{[]string{"technology", "ai", "chip", "data"}, "Electric indigo, charcoal, and neon cyan for future-forward lines"},
}

const (
	paletteContrast = "Charcoal, soft white, and aurora green for contrast and focus"
	paletteDepth    = "Muted plum with luminous copper accents for depth"
	paletteTension  = "Deep navy, radiant orange, and silver threads for tension"
)

const maxPaletteIdeas = 3

// Palette derives one to three distinct palette ideas from keywords by
// substring match, padding with neutral palettes when few themes match.
func Palette(keywords []string) []string {
	var palette []string
	add := func(entry string) {
		for _, p := range palette {
			if p == entry {
				return
			}
		}
		palette = append(palette, entry)
	}

	for _, kw := range keywords {
		lowered := strings.ToLower(kw)
		for _, theme := range paletteThemes {
			for _, needle := range theme.needles {
				if strings.Contains(lowered, needle) {
					add(theme.phrase)
					break
				}
			}
		}
	}

	if len(palette) == 0 {
		add(paletteContrast)
	}
	if len(palette) < 2 {
		add(paletteDepth)
	}
	if len(palette) < 3 {
		add(paletteTension)
	}
	if len(palette) > maxPaletteIdeas {
		palette = palette[:maxPaletteIdeas]
	}
	return palette
}
