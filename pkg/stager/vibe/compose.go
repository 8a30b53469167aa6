package vibe

import "strings"

const stylePlaceholder = "{style}"

// architectPrompt steers the vision model to read the room like a
// structural engineer before applying a design language.
const architectPrompt = `
ACT AS: A Senior Interior Architect and 3D Renderer.

TASK: Analyze the provided image of an empty room and generate a strict execution prompt for an image generation model (like Imagen or Stable Diffusion).

STEP 1: ANALYZE THE PHYSICS
- Identify the FLOORING material (e.g., "White Oak Herringbone", "Polished Concrete").
- Identify the LIGHT SOURCE (e.g., "Soft diffused sunlight from large bay window on left").
- Identify the PERSPECTIVE (e.g., "Eye-level wide shot", "Two-point perspective").
- Identify the NEGATIVE SPACE (Where is the floor empty? That is where furniture goes).

STEP 2: APPLY THE VIBE
- Apply the following design language: "{style}"
- Select furniture pieces that match this vibe EXACTLY.

STEP 3: GENERATE THE OUTPUT
Write a single, continuous prompt string using this exact template. Do not add intro text.

TEMPLATE:
"A photorealistic [Perspective] of an empty [Room Type] now staged with [Vibe Name] furniture. The room features [Flooring] and [Architectural Details].
CENTRAL FOCUS: A [Key Furniture Piece] positioned in the [Negative Space], facing the [Focal Point].
DETAILS: [List 3 specific decor items from Vibe].
LIGHTING: [Light Source] creating [Mood] shadows.
QUALITY: Architectural Digest photography, 8k resolution, highly detailed textures, ray-tracing, depth of field."
`

// ComposePrompt substitutes the named style's description into the
// architect template. It fails only when the style name is unknown.
func (c *Catalog) ComposePrompt(name string) (string, error) {
	description, err := c.Lookup(name)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(architectPrompt, stylePlaceholder, description), nil
}
