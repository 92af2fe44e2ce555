package main

import (
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the resume PDF from a saved snapshot without network access",
		Args:  cobra.NoArgs,
		RunE:  a.runRender,
	}
	addSettingFlags(cmd)
	cmd.Flags().String("snapshot", "", "Snapshot written by build --save-snapshot")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, _ []string) error {
	settings, err := a.resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger := a.logger(settings)

	snapshotPath, _ := cmd.Flags().GetString("snapshot")
	_, err = pipeline.RenderSnapshot(cmd.Context(), pipeline.RenderOptions{
		Settings:     settings,
		Renderer:     a.newRenderer(logger),
		SnapshotPath: snapshotPath,
		Logger:       logger,
		Out:          cmd.OutOrStdout(),
	})
	return err
}
