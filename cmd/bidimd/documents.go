package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/m-hosseinpour/bidi-markdown/internal/service"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			state := a.services.Documents.Snapshot(ctx)
			for _, doc := range state.Documents {
				marker := " "
				if doc.ID == state.ActiveID {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n",
					marker, doc.ID, doc.Name, service.RemotePath(doc.Name))
			}
			return nil
		})
	},
}

var newStdin bool

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a document and make it active",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			var content string
			if newStdin {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				content = string(raw)
			}

			id := a.services.Documents.Create(ctx, name, content)
			if _, ok := a.services.Documents.SwitchActive(ctx, id, activeContent(ctx, a)); !ok {
				return errors.New("created document is unknown")
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [document]",
	Short: "Print a document's markdown (the active one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			doc, err := targetDocument(ctx, a, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), doc.Content)
			return nil
		})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <document> <new-name>",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			doc, err := findDocument(ctx, a, args[0])
			if err != nil {
				return err
			}
			a.services.Documents.Rename(ctx, doc.ID, args[1])
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <document>",
	Short: "Delete a document (the last remaining one cannot be deleted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			doc, err := findDocument(ctx, a, args[0])
			if err != nil {
				return err
			}
			if !a.services.Documents.Delete(ctx, doc.ID) {
				return errors.New("the last remaining document cannot be deleted")
			}
			return nil
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <document>",
	Short: "Replace a document's content with stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			doc, err := findDocument(ctx, a, args[0])
			if err != nil {
				return err
			}
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			a.services.Documents.UpdateContent(ctx, doc.ID, string(raw))
			return nil
		})
	},
}

// findDocument resolves a command-line document reference: first as an id,
// then as the first document (in insertion order) with that exact name.
func findDocument(ctx context.Context, a *app, ref string) (models.Document, error) {
	doc, err := a.services.Documents.Get(ctx, ref)
	if err == nil {
		return doc, nil
	}

	state := a.services.Documents.Snapshot(ctx)
	for _, d := range state.Documents {
		if d.Name == ref {
			return d, nil
		}
	}
	return models.Document{}, fmt.Errorf("no document with id or name %q", ref)
}

// targetDocument resolves the optional positional document argument, falling
// back to the active document.
func targetDocument(ctx context.Context, a *app, args []string) (models.Document, error) {
	if len(args) == 1 {
		return findDocument(ctx, a, args[0])
	}
	doc, ok := a.services.Documents.Active(ctx)
	if !ok {
		return models.Document{}, errors.New("no active document")
	}
	return doc, nil
}

func activeContent(ctx context.Context, a *app) string {
	doc, _ := a.services.Documents.Active(ctx)
	return doc.Content
}

func init() {
	newCmd.Flags().BoolVar(&newStdin, "stdin", false, "read initial content from stdin")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
}
