package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

var (
	imagePath   string
	hint        string
	description string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a drawing",
	Long: `Upload a drawing. With --edit-session or --id the drawing is attached to the
creature right away when that creature has been saved.`,
	RunE: runUpload,
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Ask the art studio to describe a drawing",
	RunE:  runDescribe,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Paint finished artwork for a creature",
	Long: `Paint finished artwork. The prompt combines --description (or a description of
--file) with the creature attributes given as --set field=value.`,
	RunE: runGenerate,
}

func init() {
	uploadCmd.Flags().StringVar(&imagePath, "file", "", "PNG, JPEG, GIF or WEBP file (required)")
	uploadCmd.Flags().StringVar(&editSessionID, "edit-session", "", "Editing session to attach to")
	uploadCmd.Flags().StringVar(&creatureID, "id", "", "Creature to attach to")
	_ = uploadCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	describeCmd.Flags().StringVar(&imagePath, "file", "", "Drawing to describe (required)")
	describeCmd.Flags().StringVar(&hint, "hint", "", "What the drawing shows, in your own words")
	_ = describeCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	generateCmd.Flags().StringVar(&description, "description", "", "Description of the creature's look")
	generateCmd.Flags().StringVar(&imagePath, "file", "", "Drawing to describe first when --description is empty")
	generateCmd.Flags().StringVar(&hint, "hint", "", "Hint for describing --file")
	generateCmd.Flags().StringArrayVar(&fieldValues, "set", nil, "field=value (repeatable)")
	generateCmd.Flags().StringVar(&editSessionID, "edit-session", "", "Editing session to attach to")
	generateCmd.Flags().StringVar(&creatureID, "id", "", "Creature to attach to")
}

func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func runUpload(cmd *cobra.Command, _ []string) error {
	data, err := readImage(imagePath)
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.UploadDrawing(ctx, &creaturev1alpha1.UploadDrawingRequest{
		EditSessionID: editSessionID,
		RecordID:      creatureID,
		Image:         data,
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "🎨 Stored %s\n", resp.URL)
	if resp.Creature != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Attached to %s\n", resp.Creature.Name)
	}
	return nil
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	data, err := readImage(imagePath)
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.DescribeDrawing(ctx, &creaturev1alpha1.DescribeDrawingRequest{
		Image: data,
		Hint:  hint,
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Description)
	return nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	c := &entities.Creature{}
	if err := applyFields(c, fieldValues); err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	if description == "" && imagePath != "" {
		data, err := readImage(imagePath)
		if err != nil {
			return err
		}
		described, err := client.DescribeDrawing(ctx, &creaturev1alpha1.DescribeDrawingRequest{
			Image: data,
			Hint:  hint,
		})
		if err != nil {
			return describeError(err)
		}
		description = described.Description
		fmt.Fprintf(cmd.ErrOrStderr(), "🔍 %s\n", description)
	}

	resp, err := client.GenerateArtwork(ctx, &creaturev1alpha1.GenerateArtworkRequest{
		EditSessionID: editSessionID,
		RecordID:      creatureID,
		Description:   description,
		Creature:      creaturev1alpha1.CreatureFromEntity(c),
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✨ Artwork: %s\n", resp.URL)
	if resp.Creature != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Attached to %s\n", resp.Creature.Name)
	}
	return nil
}
