package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-hosseinpour/bidi-markdown/internal/render"
)

var renderRaw bool

var renderCmd = &cobra.Command{
	Use:   "render [document]",
	Short: "Render a document to HTML (the active one by default)",
	Long: `Render converts a document's markdown to an HTML fragment, then applies
the stored direction preferences (general text, inline code, code blocks)
as dir attributes and tags code blocks for the client-side highlighter.
Math rendering follows the persisted math-render preference: when enabled,
$...$ and $$...$$ spans pass through untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			doc, err := targetDocument(ctx, a, args)
			if err != nil {
				return err
			}

			prefs, err := a.services.Settings.Preferences(ctx)
			if err != nil {
				return err
			}

			html, err := render.NewGoldmarkRenderer().Render(doc.Content, prefs.MathRender)
			if err != nil {
				return err
			}

			if !renderRaw {
				html = render.ApplyDirection(html, prefs)
				html = render.EnhanceCodeBlocks(html)
			}

			fmt.Fprint(cmd.OutOrStdout(), html)
			return nil
		})
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderRaw, "raw", false, "skip direction and code block post-processing")

	rootCmd.AddCommand(renderCmd)
}
