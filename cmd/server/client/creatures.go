package client

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/editor"
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

var (
	creatureID    string
	editSessionID string
	fieldValues   []string
	submit        bool
	confirmDelete bool

	listType      string
	listStatus    string
	listSort      string
	listQuery     string
	listMine      bool
	listOwner     string
	listPageSize  int
	listPageToken string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a creature from --set field=value pairs",
	Long: `Create a creature. Every attribute is given as --set field=value, for example
--set name=Emberling --set type_primary=Fire --set hp=45. Use "client design --fields"
to list the field names.`,
	RunE: runCreate,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one creature",
	RunE:  runGet,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change fields of an existing creature",
	RunE:  runUpdate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the gallery",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a creature",
	RunE:  runDelete,
}

func init() {
	createCmd.Flags().StringArrayVar(&fieldValues, "set", nil, "field=value (repeatable)")
	createCmd.Flags().StringVar(&editSessionID, "edit-session", "", "Editing session ID (default: a new one)")
	createCmd.Flags().BoolVar(&submit, "submit", false, "Publish instead of saving a draft")

	getCmd.Flags().StringVar(&creatureID, "id", "", "Creature ID (required)")
	_ = getCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	updateCmd.Flags().StringVar(&creatureID, "id", "", "Creature ID (required)")
	updateCmd.Flags().StringArrayVar(&fieldValues, "set", nil, "field=value (repeatable)")
	_ = updateCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	listCmd.Flags().StringVar(&listType, "type", "", "Only creatures with this elemental type")
	listCmd.Flags().StringVar(&listStatus, "status", "", "draft or published")
	listCmd.Flags().StringVar(&listSort, "sort", "", "newest, oldest, name or species_number")
	listCmd.Flags().StringVar(&listQuery, "name", "", "Only names containing this text")
	listCmd.Flags().BoolVar(&listMine, "mine", false, "Only my creatures (needs a token)")
	listCmd.Flags().StringVar(&listOwner, "owner", "", "Only creatures of this user ID")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Creatures per page")
	listCmd.Flags().StringVar(&listPageToken, "page-token", "", "Token from the previous page")

	deleteCmd.Flags().StringVar(&creatureID, "id", "", "Creature ID (required)")
	deleteCmd.Flags().BoolVar(&confirmDelete, "yes", false, "Confirm the deletion")
	_ = deleteCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

// applyFields parses field=value pairs into c
func applyFields(c *entities.Creature, pairs []string) error {
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected field=value", pair)
		}
		if err := editor.ApplyField(c, strings.TrimSpace(field), value); err != nil {
			return fmt.Errorf("--set %q: %w", pair, err)
		}
	}
	return nil
}

func runCreate(cmd *cobra.Command, _ []string) error {
	c := &entities.Creature{}
	if err := applyFields(c, fieldValues); err != nil {
		return err
	}
	if editSessionID == "" {
		editSessionID = uuid.NewString()
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	req := &creaturev1alpha1.SaveRequest{
		EditSessionID: editSessionID,
		Creature:      creaturev1alpha1.CreatureFromEntity(c),
	}

	var resp *creaturev1alpha1.SaveResponse
	if submit {
		resp, err = client.SubmitCreature(ctx, req)
	} else {
		resp, err = client.CreateCreature(ctx, req)
	}
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved (editing session %s)\n\n", editSessionID)
	printCreature(cmd.OutOrStdout(), resp.Creature)
	return nil
}

func runGet(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.GetCreature(ctx, &creaturev1alpha1.GetCreatureRequest{ID: creatureID})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printCreature(cmd.OutOrStdout(), resp.Creature)
	return nil
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	got, err := client.GetCreature(ctx, &creaturev1alpha1.GetCreatureRequest{ID: creatureID})
	if err != nil {
		return describeError(err)
	}

	c := creaturev1alpha1.CreatureToEntity(got.Creature)
	if err := applyFields(c, fieldValues); err != nil {
		return err
	}

	resp, err := client.UpdateCreature(ctx, &creaturev1alpha1.UpdateCreatureRequest{
		Creature: creaturev1alpha1.CreatureFromEntity(c),
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printCreature(cmd.OutOrStdout(), resp.Creature)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.ListCreatures(ctx, &creaturev1alpha1.ListCreaturesRequest{
		Type:      listType,
		OwnerID:   listOwner,
		Mine:      listMine,
		Status:    listStatus,
		NameQuery: listQuery,
		Sort:      listSort,
		PageSize:  listPageSize,
		PageToken: listPageToken,
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	if len(resp.Creatures) == 0 {
		fmt.Fprintln(w, "No creatures yet. Be the first to make one!")
		return nil
	}
	fmt.Fprintf(w, "🖼️  %d creatures\n\n", resp.TotalSize)
	for _, c := range resp.Creatures {
		types := joinSet(c.TypePrimary, c.TypeSecondary)
		fmt.Fprintf(w, "%-38s %-20s %-16s %s\n", c.ID, c.Name, types, c.Status)
	}
	if resp.NextPageToken != "" {
		fmt.Fprintf(w, "\nMore: --page-token %s\n", resp.NextPageToken)
	}
	return nil
}

func runDelete(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	_, err = client.DeleteCreature(ctx, &creaturev1alpha1.DeleteCreatureRequest{
		ID:      creatureID,
		Confirm: confirmDelete,
	})
	if err != nil {
		return describeError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted %s\n", creatureID)
	return nil
}
