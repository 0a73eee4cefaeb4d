package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/clients/forge"
	"github.com/KirkDiggler/creature-forge/internal/editor"
	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/orchestrators/creature"
)

var (
	debounce   time.Duration
	listFields bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a creature interactively with autosave",
	Long: `Design a creature one field at a time. Type field=value to change a field;
the draft is saved quietly a few seconds after you stop typing.

Commands:
  :draft          save the draft now
  :submit         finish and publish the creature
  :upload <file>  store a drawing for this creature
  :show           print the form
  :fields         list field names
  :quit           leave without saving pending edits`,
	RunE: runDesign,
}

func init() {
	designCmd.Flags().StringVar(&editSessionID, "edit-session", "", "Resume an editing session")
	designCmd.Flags().StringVar(&creatureID, "id", "", "Edit an existing creature")
	designCmd.Flags().DurationVar(&debounce, "debounce", editor.DefaultDebounce, "Quiet time before autosave")
	designCmd.Flags().BoolVar(&listFields, "fields", false, "List field names and exit")
}

func runDesign(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if listFields {
		fmt.Fprintln(out, strings.Join(editor.Fields(), "\n"))
		return nil
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	var initial *entities.Creature
	if creatureID != "" {
		ctx, cancel := callContext()
		got, err := client.GetCreature(ctx, &creaturev1alpha1.GetCreatureRequest{ID: creatureID})
		cancel()
		if err != nil {
			return describeError(err)
		}
		initial = got.Creature.Record()
	}
	if editSessionID == "" {
		editSessionID = uuid.NewString()
	}

	backend, err := forge.NewBackend(&forge.BackendConfig{Client: client, Token: sessionToken()})
	if err != nil {
		return err
	}

	ed, err := editor.New(&editor.Config{
		Backend:       backend,
		EditSessionID: editSessionID,
		Initial:       initial,
		Debounce:      debounce,
		SaveTimeout:   timeout,
		OnStatus: func(status creature.AutosaveStatus, message string) {
			printStatus(cmd.ErrOrStderr(), status, message)
		},
	})
	if err != nil {
		return err
	}
	defer ed.Close()

	fmt.Fprintf(out, "✏️  Editing session %s (type :fields for field names)\n", editSessionID)
	return designLoop(cmd.InOrStdin(), out, ed, client)
}

func designLoop(in io.Reader, out io.Writer, ed *editor.Editor, client creaturev1alpha1.CreatureServiceClient) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
		case line == ":quit":
			return nil
		case line == ":fields":
			fmt.Fprintln(out, strings.Join(editor.Fields(), ", "))
		case line == ":show":
			printCreature(out, creaturev1alpha1.CreatureFromEntity(ed.Form()))
		case line == ":draft":
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			if _, err := ed.SaveDraft(ctx); err != nil {
				fmt.Fprintf(out, "⚠️  %s\n", describeError(err))
			}
			cancel()
		case line == ":submit":
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			saved, err := ed.Submit(ctx)
			cancel()
			if err != nil {
				fmt.Fprintf(out, "⚠️  %s\n", describeError(err))
				continue
			}
			fmt.Fprintln(out, "🎉 Your creature is in the gallery!")
			printCreature(out, creaturev1alpha1.CreatureFromEntity(saved))
			return nil
		case strings.HasPrefix(line, ":upload "):
			uploadFromDesign(out, ed, client, strings.TrimSpace(strings.TrimPrefix(line, ":upload ")))
		default:
			field, value, ok := strings.Cut(line, "=")
			if !ok {
				fmt.Fprintln(out, "type field=value, or :fields for help")
				continue
			}
			if err := ed.Set(strings.TrimSpace(field), value); err != nil {
				fmt.Fprintf(out, "⚠️  %s\n", describeError(err))
			}
		}
	}
}

func uploadFromDesign(out io.Writer, ed *editor.Editor, client creaturev1alpha1.CreatureServiceClient, path string) {
	data, err := readImage(path)
	if err != nil {
		fmt.Fprintf(out, "⚠️  %v\n", err)
		return
	}

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.UploadDrawing(ctx, &creaturev1alpha1.UploadDrawingRequest{
		EditSessionID: editSessionID,
		RecordID:      ed.RecordID(),
		Image:         data,
	})
	if err != nil {
		fmt.Fprintf(out, "⚠️  %s\n", describeError(err))
		return
	}

	url := resp.URL
	ed.Edit(func(c *entities.Creature) { c.OriginalDrawingURL = &url })
	fmt.Fprintf(out, "🎨 Stored %s\n", resp.URL)
}

func printStatus(w io.Writer, status creature.AutosaveStatus, message string) {
	switch status {
	case creature.AutosaveSaving:
		fmt.Fprintln(w, "  …saving")
	case creature.AutosaveSaved:
		fmt.Fprintln(w, "  ✓ saved")
	case creature.AutosaveError:
		fmt.Fprintf(w, "  ✗ %s\n", message)
	}
}
