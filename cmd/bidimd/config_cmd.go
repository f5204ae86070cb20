package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m-hosseinpour/bidi-markdown/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write persisted settings",
	Long: `Config manages the settings persisted in the local state database: the
remote repository target, the access token, and the preference flags the
render command consumes.

Keys:
  token, owner, repo, branch
  auto-render, math-render, full-height, input-visible, theme
  dir.general, dir.inline-code, dir.code-block`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return setConfigValue(ctx, a, args[0], args[1])
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			values, err := configValues(ctx, a)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				value, ok := values[args[0]]
				if !ok {
					return fmt.Errorf("unknown setting %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}

			keys := make([]string, 0, len(values))
			for key := range values {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, values[key])
			}
			return nil
		})
	},
}

func setConfigValue(ctx context.Context, a *app, key, value string) error {
	switch key {
	case "token":
		return a.services.Settings.SetToken(ctx, value)

	case "owner", "repo", "branch":
		target, err := a.services.Settings.RepoTarget(ctx)
		if err != nil {
			return err
		}
		switch key {
		case "owner":
			target.Owner = value
		case "repo":
			target.Repo = value
		case "branch":
			target.Branch = value
		}
		return a.services.Settings.SetRepoTarget(ctx, target)
	}

	prefs, err := a.services.Settings.Preferences(ctx)
	if err != nil {
		return err
	}

	switch key {
	case "auto-render":
		prefs.AutoRender = parseBool(value)
	case "math-render":
		prefs.MathRender = parseBool(value)
	case "full-height":
		prefs.FullHeight = parseBool(value)
	case "input-visible":
		prefs.InputVisible = parseBool(value)
	case "theme":
		prefs.Theme = value
	case "dir.general":
		prefs.General = models.ParseDirection(value)
	case "dir.inline-code":
		prefs.InlineCode = models.ParseDirection(value)
	case "dir.code-block":
		prefs.CodeBlock = models.ParseDirection(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	return a.services.Settings.SavePreferences(ctx, prefs)
}

func configValues(ctx context.Context, a *app) (map[string]string, error) {
	target, err := a.services.Settings.RepoTarget(ctx)
	if err != nil {
		return nil, err
	}
	token, err := a.services.Settings.Token(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := a.services.Settings.Preferences(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"token":           maskToken(token),
		"owner":           target.Owner,
		"repo":            target.Repo,
		"branch":          target.Branch,
		"auto-render":     strconv.FormatBool(prefs.AutoRender),
		"math-render":     strconv.FormatBool(prefs.MathRender),
		"full-height":     strconv.FormatBool(prefs.FullHeight),
		"input-visible":   strconv.FormatBool(prefs.InputVisible),
		"theme":           prefs.Theme,
		"dir.general":     string(prefs.General),
		"dir.inline-code": string(prefs.InlineCode),
		"dir.code-block":  string(prefs.CodeBlock),
	}, nil
}

// parseBool is deliberately forgiving: anything strconv does not recognize as
// true counts as false.
func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 4) + token[len(token)-4:]
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
