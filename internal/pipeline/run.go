// Package pipeline provides the high-level orchestration for the resume build:
// fetch, enrich, format and render, strictly in sequence.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/enrich"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pipeline/steps"
	"github.com/jonathan/resume-builder/internal/rendering"
	skillset "github.com/jonathan/resume-builder/internal/skills"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/kataras/golog"
)

// ProfileSource fetches the professional-network profile. *linkedin.Client implements it.
type ProfileSource interface {
	Authenticate(ctx context.Context, email, password string) error
	GetProfile(ctx context.Context, handle string) (*types.Profile, error)
	GetContactInfo(ctx context.Context, handle string) (*types.ContactInfo, error)
	GetSkills(ctx context.Context, handle string) ([]types.Skill, error)
}

// LanguageSource aggregates code-host language bytes. *github.Client implements it.
type LanguageSource interface {
	LanguageStats(ctx context.Context) (types.LanguageStats, error)
}

// Renderer turns an HTML document into a file. *rendering.PDFRenderer implements it.
type Renderer interface {
	Render(ctx context.Context, document, outPath string) error
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds the explicitly constructed clients and settings for one build
type RunOptions struct {
	Settings  *config.Settings
	Secrets   *config.Secrets
	Profiles  ProfileSource
	Languages LanguageSource
	LLM       llm.Client
	Renderer  Renderer

	// SnapshotPath, when set, receives the fetched and generated data as JSON
	SnapshotPath string

	Logger     *golog.Logger
	Out        io.Writer
	OnProgress ProgressCallback
}

// Result describes what a run produced
type Result struct {
	OutputPath   string
	SnapshotPath string
	Snapshot     *types.Snapshot
}

// run carries per-invocation state shared by Run and RenderSnapshot
type run struct {
	out        io.Writer
	logger     *golog.Logger
	printer    *observability.Printer
	verbose    bool
	tracker    *steps.Tracker
	onProgress ProgressCallback
}

func newRun(out io.Writer, logger *golog.Logger, verbose bool, onProgress ProgressCallback, plan ...string) (*run, error) {
	if out == nil {
		out = os.Stdout
	}
	tracker, err := steps.NewTracker(plan...)
	if err != nil {
		return nil, err
	}
	return &run{
		out:        out,
		logger:     logging.OrDiscard(logger),
		printer:    observability.NewPrinter(out),
		verbose:    verbose,
		tracker:    tracker,
		onProgress: onProgress,
	}, nil
}

// step announces the start of a step
//
//nolint:errcheck // progress output; errors are not recoverable
func (r *run) step(name string) error {
	line, err := r.tracker.Start(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, line)
	if r.onProgress != nil {
		r.onProgress(ProgressEvent{
			Step:     name,
			Category: steps.StepRegistry[name].Category,
			Message:  line,
		})
	}
	return nil
}

func (o *RunOptions) validate() error {
	switch {
	case o.Settings == nil:
		return fmt.Errorf("settings are required")
	case o.Secrets == nil:
		return fmt.Errorf("secrets are required")
	case o.Profiles == nil:
		return fmt.Errorf("profile source is required")
	case o.Languages == nil:
		return fmt.Errorf("language source is required")
	case o.LLM == nil:
		return fmt.Errorf("LLM client is required")
	case o.Renderer == nil:
		return fmt.Errorf("renderer is required")
	}
	return nil
}

// Run executes the full build. The first failure aborts the run.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	settings := opts.Settings

	plan := []string{
		steps.Authenticate, steps.FetchProfile, steps.FetchSkills, steps.LanguageStats,
		steps.DescribeSkills, steps.FormatSections,
	}
	if opts.SnapshotPath != "" {
		plan = append(plan, steps.SaveSnapshot)
	}
	plan = append(plan, steps.RenderPDF)

	r, err := newRun(opts.Out, opts.Logger, settings.Debug, opts.OnProgress, plan...)
	if err != nil {
		return nil, err
	}

	if err := r.step(steps.Authenticate); err != nil {
		return nil, err
	}
	if err := opts.Profiles.Authenticate(ctx, opts.Secrets.LinkedInEmail, opts.Secrets.LinkedInPassword); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	if err := r.step(steps.FetchProfile); err != nil {
		return nil, err
	}
	profile, err := opts.Profiles.GetProfile(ctx, settings.LinkedInProfile)
	if err != nil {
		return nil, fmt.Errorf("profile fetch failed: %w", err)
	}
	contact, err := opts.Profiles.GetContactInfo(ctx, settings.LinkedInProfile)
	if err != nil {
		return nil, fmt.Errorf("contact info fetch failed: %w", err)
	}
	profile.ApplyContact(contact)
	r.logger.Infof("profile fetched: %s", profile.FullName())
	if r.verbose {
		r.printer.PrintProfile(profile)
	}

	if err := r.step(steps.FetchSkills); err != nil {
		return nil, err
	}
	skills, err := opts.Profiles.GetSkills(ctx, settings.LinkedInProfile)
	if err != nil {
		return nil, fmt.Errorf("skills fetch failed: %w", err)
	}

	if err := r.step(steps.LanguageStats); err != nil {
		return nil, err
	}
	stats, err := opts.Languages.LanguageStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("language aggregation failed: %w", err)
	}
	r.logger.Debugf("language stats: %v", stats)
	if r.verbose {
		r.printer.PrintLanguageStats(stats)
	}

	if err := r.step(steps.DescribeSkills); err != nil {
		return nil, err
	}
	described, err := enrich.DescribeSkills(ctx, opts.LLM, skillset.Normalize(types.SkillNames(skills)))
	if err != nil {
		return nil, fmt.Errorf("skill description failed: %w", err)
	}
	if r.verbose {
		r.printer.PrintSkills(described)
	}

	snapshot := &types.Snapshot{
		Profile:           *profile,
		Skills:            skills,
		SkillDescriptions: described,
		LanguageStats:     stats,
	}

	document, err := r.format(snapshot, settings)
	if err != nil {
		return nil, err
	}

	if opts.SnapshotPath != "" {
		if err := r.step(steps.SaveSnapshot); err != nil {
			return nil, err
		}
		if err := SaveSnapshot(opts.SnapshotPath, snapshot); err != nil {
			return nil, err
		}
	}

	outPath, err := r.render(ctx, opts.Renderer, document, settings)
	if err != nil {
		return nil, err
	}
	if r.verbose {
		r.printer.PrintResult(outPath, opts.SnapshotPath)
	}

	return &Result{
		OutputPath:   outPath,
		SnapshotPath: opts.SnapshotPath,
		Snapshot:     snapshot,
	}, nil
}

// format builds the HTML document from fetched and generated data
func (r *run) format(snapshot *types.Snapshot, settings *config.Settings) (string, error) {
	if err := r.step(steps.FormatSections); err != nil {
		return "", err
	}
	sections, err := rendering.BuildSections(&snapshot.Profile, snapshot.SkillDescriptions, settings, r.logger)
	if err != nil {
		return "", fmt.Errorf("section formatting failed: %w", err)
	}
	document, err := rendering.AssembleDocument(snapshot.Profile.FullName(), settings.Stylesheet, sections)
	if err != nil {
		return "", fmt.Errorf("document assembly failed: %w", err)
	}
	return document, nil
}

// render writes the document to the settings output path
func (r *run) render(ctx context.Context, renderer Renderer, document string, settings *config.Settings) (string, error) {
	if err := r.step(steps.RenderPDF); err != nil {
		return "", err
	}
	outPath := settings.OutputPath()
	if err := renderer.Render(ctx, document, outPath); err != nil {
		return "", fmt.Errorf("PDF rendering failed: %w", err)
	}
	r.tracker.Finish()
	r.logger.Infof("resume written to %s", outPath)
	return outPath, nil
}

// RenderOptions holds what an offline render from a snapshot needs
type RenderOptions struct {
	Settings     *config.Settings
	Renderer     Renderer
	SnapshotPath string

	Logger     *golog.Logger
	Out        io.Writer
	OnProgress ProgressCallback
}

// RenderSnapshot renders a previously saved snapshot without any network access.
func RenderSnapshot(ctx context.Context, opts RenderOptions) (*Result, error) {
	switch {
	case opts.Settings == nil:
		return nil, fmt.Errorf("settings are required")
	case opts.Renderer == nil:
		return nil, fmt.Errorf("renderer is required")
	case opts.SnapshotPath == "":
		return nil, fmt.Errorf("snapshot path is required")
	}

	r, err := newRun(opts.Out, opts.Logger, opts.Settings.Debug, opts.OnProgress,
		steps.LoadSnapshot, steps.FormatSections, steps.RenderPDF)
	if err != nil {
		return nil, err
	}

	if err := r.step(steps.LoadSnapshot); err != nil {
		return nil, err
	}
	snapshot, err := LoadSnapshot(opts.SnapshotPath)
	if err != nil {
		return nil, err
	}
	if r.verbose {
		r.printer.PrintProfile(&snapshot.Profile)
		r.printer.PrintSkills(snapshot.SkillDescriptions)
	}

	document, err := r.format(snapshot, opts.Settings)
	if err != nil {
		return nil, err
	}

	outPath, err := r.render(ctx, opts.Renderer, document, opts.Settings)
	if err != nil {
		return nil, err
	}

	return &Result{OutputPath: outPath, SnapshotPath: opts.SnapshotPath, Snapshot: snapshot}, nil
}
