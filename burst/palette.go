package burst

import cfg "github.com/automoto/confetti-cannon/config"

// Palette is a named color choice selectable at runtime.
type Palette struct {
	Name  string
	Color Color
}

// Palettes returns the configured palettes in order.
func Palettes() []Palette {
	out := make([]Palette, 0, len(cfg.Settings.Palettes))
	for _, def := range cfg.Settings.Palettes {
		out = append(out, Palette{Name: def.Name, Color: Range(def.Red, def.Green, def.Blue)})
	}
	return out
}

// PaletteAt returns palette i, wrapping around. With no palettes configured it
// falls back to the full RGB range.
func PaletteAt(i int) Palette {
	ps := Palettes()
	if len(ps) == 0 {
		return Palette{Name: "Random", Color: Range([2]int{0, 255}, [2]int{0, 255}, [2]int{0, 255})}
	}
	i %= len(ps)
	if i < 0 {
		i += len(ps)
	}
	return ps[i]
}
