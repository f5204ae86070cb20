package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/m-hosseinpour/bidi-markdown/internal/adapter"
	"github.com/m-hosseinpour/bidi-markdown/internal/config"
	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/service"
	"github.com/m-hosseinpour/bidi-markdown/internal/store"
	"github.com/m-hosseinpour/bidi-markdown/internal/tui"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

var (
	flagDB      string
	flagConfig  string
	flagToken   string
	flagOwner   string
	flagRepo    string
	flagBranch  string
	flagBaseURL string
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "bidimd",
	Short: "Multi-document markdown editor core with GitHub-backed sync",
	Long: `bidimd manages a local collection of markdown documents, renders them
to HTML with bidirectional text support, and synchronizes them with the
root of a GitHub repository branch (one document per .md file).

Run without a subcommand, bidimd opens the interactive terminal editor.

Configuration is merged from command-line flags, BIDIMD_* environment
variables, and an optional JSON file, in that order. The access token and
repository target additionally fall back to values persisted in the local
state database by "bidimd config set".`,
	Version:       "", // filled in init from build metadata
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			ui, err := tui.New(a.services, a.log)
			if err != nil {
				return err
			}

			if interval := a.cfg.Workers.SyncInterval; interval > 0 {
				a.services.SyncJob.Start(ctx, interval)
				defer a.services.SyncJob.Stop()
			}

			return ui.Run(ctx)
		})
	},
}

func init() {
	rootCmd.Version = buildInfo()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDB, "db", "", "path of the local state database")
	pf.StringVar(&flagConfig, "config", "", "path of a JSON configuration file")
	pf.StringVar(&flagToken, "token", "", "access token for the remote repository")
	pf.StringVar(&flagOwner, "owner", "", "remote repository owner")
	pf.StringVar(&flagRepo, "repo", "", "remote repository name")
	pf.StringVar(&flagBranch, "branch", "", "remote branch (default main)")
	pf.StringVar(&flagBaseURL, "base-url", "", "remote API root (for GitHub Enterprise)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "per-request timeout for remote calls")
}

// app bundles everything one command invocation needs.
type app struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
}

// withApp boots the full stack, runs fn, and tears the stack down again. The
// teardown flushes the document collection, so commands must route their
// final editor buffer through the document service before returning.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.NewLogger("bidimd")

	cfg, err := config.GetConfig(flagOverrides())
	if err != nil {
		return err
	}

	storages, err := store.NewStorages(cfg.Storage, log.GetChildLogger())
	if err != nil {
		return err
	}
	defer storages.Close()

	repo := storages.State

	token, target, err := resolveRemote(ctx, cfg, repo)
	if err != nil {
		return err
	}

	remote, err := adapter.NewGitHubRemoteStore(cfg.Adapter, token, target, log.GetChildLogger())
	if err != nil {
		return err
	}

	services, err := service.NewServices(ctx, cfg, repo, remote, log)
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, log: log, storages: storages, services: services}

	runErr := fn(ctx, a)

	active, _ := services.Documents.Active(ctx)
	if err := services.Documents.Close(ctx, active.Content); err != nil {
		log.Err(err).Msg("final document flush failed")
	}

	return runErr
}

// flagOverrides maps the persistent flags onto a config overlay. Zero values
// are ignored by the merge, so unset flags never shadow env or JSON values.
func flagOverrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Storage: config.Storage{DSN: flagDB},
		GitHub: config.GitHub{
			Token:  flagToken,
			Owner:  flagOwner,
			Repo:   flagRepo,
			Branch: flagBranch,
		},
		Adapter: config.Adapter{
			BaseURL:        flagBaseURL,
			RequestTimeout: flagTimeout,
		},
		JSONFilePath: flagConfig,
	}
}

// resolveRemote merges the configured remote credentials with the persisted
// ones. Explicitly configured values win and are written back to the state
// store; absent ones fall back to what was stored last.
func resolveRemote(ctx context.Context, cfg *config.StructuredConfig, repo store.StateRepository) (string, models.RepoTarget, error) {
	token := cfg.GitHub.Token
	if token == "" {
		stored, err := repo.LoadToken(ctx)
		if err != nil {
			return "", models.RepoTarget{}, err
		}
		token = stored
	} else if err := repo.SaveToken(ctx, token); err != nil {
		return "", models.RepoTarget{}, err
	}

	target := models.RepoTarget{
		Owner:  cfg.GitHub.Owner,
		Repo:   cfg.GitHub.Repo,
		Branch: cfg.GitHub.Branch,
	}
	if target.IsConfigured() {
		if err := repo.SaveRepoTarget(ctx, target); err != nil {
			return "", models.RepoTarget{}, err
		}
		return token, target, nil
	}

	stored, err := repo.LoadRepoTarget(ctx)
	if err != nil {
		return "", models.RepoTarget{}, err
	}
	if stored.Branch == "" {
		stored.Branch = cfg.GitHub.Branch
	}
	return token, stored, nil
}
