package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printCreature(w io.Writer, c *creaturev1alpha1.Creature) {
	if c == nil {
		return
	}

	fmt.Fprintf(w, "🐾 %s\n", c.Name)
	fmt.Fprintf(w, "ID: %s\n", c.ID)
	if c.Status != "" {
		fmt.Fprintf(w, "Status: %s\n", c.Status)
	}
	if c.SpeciesNumber != nil {
		fmt.Fprintf(w, "Species #: %d\n", *c.SpeciesNumber)
	}
	if types := joinSet(c.TypePrimary, c.TypeSecondary); types != "" {
		fmt.Fprintf(w, "Type: %s\n", types)
	}
	if c.Category != nil {
		fmt.Fprintf(w, "Category: %s\n", *c.Category)
	}
	if c.TotalStats > 0 {
		fmt.Fprintf(w, "Stats: HP %s / Atk %s / Def %s / SpA %s / SpD %s / Spe %s (total %d)\n",
			stat(c.HP), stat(c.Attack), stat(c.Defense), stat(c.SpAttack), stat(c.SpDefense), stat(c.Speed),
			c.TotalStats)
	}
	switch {
	case c.Genderless:
		fmt.Fprintln(w, "Gender: genderless")
	case c.MalePercentage != nil && c.FemalePercentage != nil:
		fmt.Fprintf(w, "Gender: %d%% male / %d%% female\n", *c.MalePercentage, *c.FemalePercentage)
	}
	if c.EvolvesFrom != nil {
		fmt.Fprintf(w, "Evolves from: %s\n", *c.EvolvesFrom)
	}
	if c.EvolvesInto != nil {
		fmt.Fprintf(w, "Evolves into: %s\n", *c.EvolvesInto)
	}
	if c.OriginalDrawingURL != nil {
		fmt.Fprintf(w, "Drawing: %s\n", *c.OriginalDrawingURL)
	}
	if c.AIGeneratedImageURL != nil {
		fmt.Fprintf(w, "Artwork: %s\n", *c.AIGeneratedImageURL)
	}
	if c.Lore != nil {
		fmt.Fprintf(w, "\n%s\n", *c.Lore)
	}
}

func stat(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func joinSet(values ...*string) string {
	var parts []string
	for _, v := range values {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, "/")
}

// describeError prints the friendly message and any field problems
func describeError(err error) error {
	converted := errors.FromGRPCError(err)

	var b strings.Builder
	b.WriteString(errors.UserMessage(converted))
	for field, msgs := range errors.GetFieldErrors(converted) {
		for _, msg := range msgs {
			fmt.Fprintf(&b, "\n  %s: %s", field, msg)
		}
	}
	return fmt.Errorf("%s", b.String())
}
