package main

import (
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch, enrich and render the resume PDF",
		Long: `Runs the full build: sign in to LinkedIn, fetch the profile, contact info and skills,
aggregate GitHub languages, describe the skills with the language model, format the
sections and print <output-dir>/resume.pdf.

Precedence for every setting: flag > environment > config file > default.`,
		Args: cobra.NoArgs,
		RunE: a.runBuild,
	}
	addSettingFlags(cmd)
	cmd.Flags().String("save-snapshot", "", "Also write the fetched and generated data as JSON to this path")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := a.resolveSettings(cmd)
	if err != nil {
		return err
	}

	secrets := config.ResolveSecrets(a.env, settings.LLMProvider)
	if err := secrets.Validate(); err != nil {
		return err
	}

	logger := a.logger(settings)

	githubClient, err := a.githubClient(secrets.GitHubToken, logger)
	if err != nil {
		return err
	}

	llmClient, err := a.llmClient(ctx, settings, secrets.LLMAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	snapshotPath, _ := cmd.Flags().GetString("save-snapshot")

	_, err = pipeline.Run(ctx, pipeline.RunOptions{
		Settings:     settings,
		Secrets:      secrets,
		Profiles:     a.linkedinClient(logger),
		Languages:    githubClient,
		LLM:          llmClient,
		Renderer:     a.newRenderer(logger),
		SnapshotPath: snapshotPath,
		Logger:       logger,
		Out:          cmd.OutOrStdout(),
	})
	return err
}
