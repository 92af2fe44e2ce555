package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/linkedin"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/kataras/golog"
	"github.com/spf13/cobra"
)

// app holds process-level dependencies so tests can point clients at fakes
type app struct {
	env    config.Env
	stdout io.Writer
	stderr io.Writer

	linkedinBaseURL string
	githubBaseURL   string
	llmBaseURL      string
	newRenderer     func(logger *golog.Logger) pipeline.Renderer
}

func newApp() *app {
	return &app{
		env:    config.OSEnv,
		stdout: os.Stdout,
		stderr: os.Stderr,
		newRenderer: func(logger *golog.Logger) pipeline.Renderer {
			return rendering.NewPDFRenderer(logger)
		},
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "resume_builder",
		Short: "Build a PDF resume from a LinkedIn profile",
		Long: `resume_builder fetches a LinkedIn profile and its skills, has a language model describe
and order the skills, and renders the result as a styled A4 PDF.

Credentials are read from the environment (or a .env file):
  RESUME_LINKEDIN_EMAIL, RESUME_LINKEDIN_PASSWORD, RESUME_GITHUB_API_KEY,
  RESUME_GROQ_API_KEY (or RESUME_GEMINI_API_KEY with --llm-provider gemini)`,
		SilenceUsage: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(a.buildCommand(), a.renderCommand(), a.languagesCommand())
	return root
}

// settingFlags are the flags shared with config.Resolve
var settingFlags = []string{
	config.FlagOutputDir,
	config.FlagProfileImage,
	config.FlagCollegeLogo,
	config.FlagLinkedInProfile,
	config.FlagEmail,
	config.FlagPhone,
	config.FlagGitHubURL,
	config.FlagWebsite,
	config.FlagStylesheet,
	config.FlagLLMProvider,
	config.FlagLLMModel,
	config.FlagDebug,
}

// addSettingFlags registers the resume settings flags. Defaults are applied by
// config.Resolve, so flags only carry explicit values.
func addSettingFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "Path to a JSON or YAML config file (flags and environment override it)")
	f.String(config.FlagOutputDir, "", "Output directory (default ./build, env RESUME_OUTPUT_DIR)")
	f.String(config.FlagProfileImage, "", "Profile image path (env RESUME_PROFILE_IMAGE_PATH)")
	f.String(config.FlagCollegeLogo, "", "College logo path (env RESUME_COLLEGE_LOGO_PATH)")
	f.String(config.FlagLinkedInProfile, "", "LinkedIn profile handle (env RESUME_LINKEDIN_PROFILE)")
	f.String(config.FlagEmail, "", "Contact email (env RESUME_EMAIL)")
	f.String(config.FlagPhone, "", "Contact phone (env RESUME_PHONENO)")
	f.String(config.FlagGitHubURL, "", "GitHub profile URL (env RESUME_GITHUB_URL)")
	f.String(config.FlagWebsite, "", "Portfolio website URL (env RESUME_WEBSITE_URL)")
	f.String(config.FlagStylesheet, "", "Stylesheet path (default resume.css, env RESUME_STYLESHEET)")
	f.String(config.FlagLLMProvider, "", "Language model provider: groq or gemini (env RESUME_LLM_PROVIDER)")
	f.String(config.FlagLLMModel, "", "Language model name (env RESUME_LLM_MODEL)")
	f.Bool(config.FlagDebug, false, "Enable debug logging and summaries (env RESUME_DEBUG)")
}

// resolveSettings merges explicitly set flags, the environment and the optional config file
func (a *app) resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	explicit := map[string]string{}
	for _, name := range settingFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil && cmd.Flags().Changed(name) {
			explicit[name] = flag.Value.String()
		}
	}

	var file *config.FileConfig
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, &config.ConfigError{Message: "failed to load config", Cause: err}
		}
		file = loaded
	}

	return config.Resolve(explicit, a.env, file)
}

func (a *app) logger(settings *config.Settings) *golog.Logger {
	return logging.New(a.stderr, settings.Debug)
}

func (a *app) linkedinClient(logger *golog.Logger) *linkedin.Client {
	opts := []linkedin.Option{linkedin.WithLogger(logger)}
	if a.linkedinBaseURL != "" {
		opts = append(opts, linkedin.WithBaseURL(a.linkedinBaseURL))
	}
	return linkedin.NewClient(opts...)
}

func (a *app) githubClient(token string, logger *golog.Logger) (*github.Client, error) {
	opts := []github.Option{github.WithLogger(logger)}
	if a.githubBaseURL != "" {
		opts = append(opts, github.WithBaseURL(a.githubBaseURL))
	}
	return github.NewClient(token, opts...)
}

func (a *app) llmClient(ctx context.Context, settings *config.Settings, apiKey string) (llm.Client, error) {
	cfg := llm.ConfigFor(settings.LLMProvider, settings.LLMModel)
	if a.llmBaseURL != "" {
		cfg.BaseURL = a.llmBaseURL
	}
	client, err := llm.NewClient(ctx, cfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
