package main

import (
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

func (a *app) languagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "Print language byte totals across every repository visible to the GitHub token",
		Args:  cobra.NoArgs,
		RunE:  a.runLanguages,
	}
	cmd.Flags().String("config", "", "Path to a JSON or YAML config file")
	cmd.Flags().Bool(config.FlagDebug, false, "Enable debug logging (env RESUME_DEBUG)")
	return cmd
}

func (a *app) runLanguages(cmd *cobra.Command, _ []string) error {
	settings, err := a.resolveSettings(cmd)
	if err != nil {
		return err
	}

	secrets := config.ResolveSecrets(a.env, settings.LLMProvider)
	if err := secrets.ValidateFor("GitHubToken"); err != nil {
		return err
	}

	client, err := a.githubClient(secrets.GitHubToken, a.logger(settings))
	if err != nil {
		return err
	}

	stats, err := client.LanguageStats(cmd.Context())
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintLanguageStats(stats)
	return nil
}
