package artwork

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/entities"
)

const (
	promptStyle = "Friendly, colorful illustration of an original creature for a children's collection, " +
		"full body, centered, plain light background, soft shading, no text"

	// NegativePrompt keeps the image model away from things that do not
	// belong on a trading-card style creature portrait
	NegativePrompt = "text, letters, watermark, logo, frightening, gore, blood, weapons, realistic human"
)

// BuildPrompt assembles the image prompt from the drawing description and
// the creature's attributes. Empty parts are left out.
func BuildPrompt(description string, c *entities.Creature) string {
	parts := []string{promptStyle}

	if d := strings.TrimSpace(description); d != "" {
		parts = append(parts, "Based on a drawing: "+strings.TrimSuffix(d, "."))
	}

	if c != nil {
		if types := c.Types(); len(types) > 0 {
			parts = append(parts, fmt.Sprintf("%s type", strings.Join(types, "/")))
		}
		if v := trimmed(c.Color); v != "" {
			parts = append(parts, "mainly "+v)
		}
		if v := trimmed(c.BodyShape); v != "" {
			parts = append(parts, "body shape: "+v)
		}
		if v := trimmed(c.DesiredVisual); v != "" {
			parts = append(parts, "It should look "+strings.TrimSuffix(v, "."))
		}
		if v := trimmed(c.DesiredPersonality); v != "" {
			parts = append(parts, "Its personality is "+strings.TrimSuffix(v, "."))
		}
	}

	return strings.Join(parts, ". ") + "."
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
