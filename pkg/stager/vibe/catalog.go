package vibe

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownStyle is returned when a style name is not part of the catalog.
var ErrUnknownStyle = errors.New("unknown style")

// Catalog maps style names to their design language descriptions. It is
// read-only after construction and safe for concurrent use.
type Catalog struct {
	styles map[string]string
}

var defaultStyles = map[string]string{
	"Monarch":       "Modern Luxury Opulence. Palette: Black, Gold, Emerald Green. Furniture: Tufted velvet sofas, brass coffee tables, crystal lighting. Mood: Expensive, Moody, High-Contrast.",
	"Industrialist": "Raw Urban Loft. Palette: Charcoal, Rust, Concrete Gray. Furniture: Distressed cognac leather chesterfields, black steel shelving, exposed brick. Mood: Masculine, Gritty, Authentic.",
	"Purist":        "Japanese-Scandinavian Minimalist. Palette: Warm White, Beige, Light Oak. Furniture: Low-profile linen sofas, noguchi tables, zero clutter. Mood: Zen, Airy, Soft.",
	"Naturalist":    "Biophilic Sanctuary. Palette: Sage Green, Terracotta, Raw Wood. Furniture: Rattan lounge chairs, living plant walls, jute rugs, organic shapes. Mood: Fresh, Oxygenated, Peaceful.",
	"Futurist":      "Cyberpunk High-Tech. Palette: Neon Blue, Cool White, Chrome. Furniture: Floating LED beds, acrylic chairs, glossy surfaces, geometric shapes. Mood: Clinical, Sharp, Electric.",
	"Curator":       "Eclectic Maximalist. Palette: Mustard, Teal, Burnt Orange. Furniture: Sculptural velvet armchairs, gallery walls of mixed art, patterned persian rugs. Mood: Artsy, Bold, Collected.",
	"Nomad":         "Global Boho. Palette: Ochre, Sand, Deep Red. Furniture: Low floor seating, moroccan poufs, layered textiles, macrame, reclaimed wood. Mood: Warm, Traveled, Earthy.",
	"Classicist":    "Traditional Heritage. Palette: Navy Blue, Cream, Mahogany. Furniture: Wingback chairs, heavy drapes, antique brass lamps, persian rugs. Mood: Timeless, Wealthy, Established.",
}

// DefaultCatalog returns the catalog of the eight staging vibes.
func DefaultCatalog() *Catalog {
	return &Catalog{styles: defaultStyles}
}

// Lookup returns the design language description for the given style name.
func (c *Catalog) Lookup(name string) (string, error) {
	description, ok := c.styles[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}

	return description, nil
}

// Names returns the defined style names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.styles))
	for name := range c.styles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
