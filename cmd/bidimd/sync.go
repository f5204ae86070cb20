package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

var pushOverwrite bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload every document to the remote repository",
	Long: `Push uploads each document to the root of the configured branch, one
.md file per document, named after the sanitized document name. Files that
already exist remotely are skipped unless --overwrite is given, in which
case they are updated under their current version marker. One file's
failure never aborts the others.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			state := a.services.Documents.Snapshot(ctx)

			result, err := a.services.Sync.PushAll(ctx, state, pushOverwrite)
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		})
	},
}

var pullWatch bool

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download every markdown file from the remote repository",
	Long: `Pull lists the .md files at the root of the configured branch and
applies each to the local collection: a document with the same name is
overwritten in place, otherwise a new document is created. There is no
conflict check on pull; the remote content wins.

With --watch the command keeps running and repeats the pull every sync
interval (default 5m, see BIDIMD_WORKERS_SYNC_INTERVAL) until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			upsert := func(name, content string) string {
				return a.services.Documents.UpsertByName(ctx, name, content)
			}

			result, err := a.services.Sync.PullAll(ctx, upsert)
			if err != nil {
				return err
			}
			printResult(cmd, result)

			if !pullWatch {
				return nil
			}

			watchCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a.services.SyncJob.Start(watchCtx, a.cfg.Workers.SyncInterval)
			defer a.services.SyncJob.Stop()

			fmt.Fprintln(cmd.OutOrStdout(), "watching for remote changes, press Ctrl+C to stop")
			<-watchCtx.Done()
			return nil
		})
	},
}

func printResult(cmd *cobra.Command, result models.SyncResult) {
	out := cmd.OutOrStdout()

	for _, f := range result.Succeeded {
		fmt.Fprintf(out, "synced\t%s\t%s\n", f.Name, f.Path)
	}
	for _, f := range result.Skipped {
		fmt.Fprintf(out, "skipped\t%s\t%s\n", f.Name, f.Reason)
	}
	for _, f := range result.Failed {
		fmt.Fprintf(out, "failed\t%s\t%s\n", f.Name, f.Err)
	}

	fmt.Fprintf(out, "%d succeeded, %d failed, %d skipped\n",
		len(result.Succeeded), len(result.Failed), len(result.Skipped))
}

func init() {
	pushCmd.Flags().BoolVar(&pushOverwrite, "overwrite", false, "update files that already exist remotely")
	pullCmd.Flags().BoolVar(&pullWatch, "watch", false, "keep pulling on the configured interval")

	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
}
