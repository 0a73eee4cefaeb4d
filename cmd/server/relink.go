package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-forge/internal/errors"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/evolution"
	creaturerepo "github.com/KirkDiggler/creature-forge/internal/repositories/creature"
)

var relinkDryRun bool

var relinkCmd = &cobra.Command{
	Use:   "relink",
	Short: "Repair evolution links for every stored creature",
	Long: `Scan every creature and apply its evolution references directly, creating
missing stubs and back-references. Use it after link jobs were lost, for
example when Redis was flushed while the worker was down.`,
	RunE: runRelink,
}

func init() {
	relinkCmd.Flags().BoolVar(&relinkDryRun, "dry-run", false, "only report creatures that reference evolutions")
	relinkCmd.Flags().String("database", "", "SQLite database path")
	relinkCmd.Flags().String("redis-url", "", "Redis URL, e.g. redis://localhost:6379/0")
}

func runRelink(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	var checked, linked, created, failed int

	pageToken := ""
	for {
		page, err := a.creatureRepo.List(ctx, &creaturerepo.ListInput{
			Sort:      creaturerepo.SortOldest,
			PageSize:  creaturerepo.MaxPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list creatures")
		}

		for _, c := range page.Creatures {
			checked++
			link := c.EvolutionLink()
			if link == nil {
				continue
			}

			if relinkDryRun {
				fmt.Fprintf(out, "would link %s (%s): into=%q from=%q\n",
					c.Name, c.ID, link.EvolvesInto, link.EvolvesFrom)
				continue
			}

			result, err := a.evolutionService.Link(ctx, &evolution.LinkInput{Link: link})
			if err != nil {
				failed++
				fmt.Fprintf(out, "✗ %s (%s): %v\n", c.Name, c.ID, err)
				continue
			}
			linked++
			for _, r := range []*evolution.LinkResult{result.Into, result.From} {
				if r != nil && r.Created {
					created++
					fmt.Fprintf(out, "+ created stub %s (%s)\n", r.Creature.Name, r.Creature.ID)
				}
			}
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	fmt.Fprintf(out, "checked %d creatures, linked %d, created %d stubs, %d failed\n",
		checked, linked, created, failed)
	if failed > 0 {
		return errors.Internalf("%d creatures could not be linked", failed)
	}
	return nil
}
