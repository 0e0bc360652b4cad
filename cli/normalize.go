package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/Nareth123/angular/engine/animation"
	"github.com/Nareth123/angular/engine/style"
	"github.com/Nareth123/angular/engine/timeline"
	"github.com/Nareth123/angular/pkg/config"
	"github.com/Nareth123/angular/pkg/logger"
)

func NormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [timeline-file]",
		Short: "Normalize a timeline definition into renderable keyframes",
		Args:  cobra.ExactArgs(1),
		RunE:  runNormalize,
	}
	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetupLogger(logLevel, logJSON, logSource)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	def, err := timeline.LoadFile(args[0])
	if err != nil {
		return err
	}

	keyframes, err := def.BuildKeyframes()
	if err != nil {
		return err
	}

	driver, err := animation.NewHostDriver(cfg.Capabilities(), cfg.DOM.StyleCacheSize)
	if err != nil {
		return err
	}
	normalized, err := animation.NormalizeKeyframes(
		driver,
		style.NewWebNormalizer(),
		nil,
		keyframes,
		nil,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to normalize timeline %s: %w", def.Name, err)
	}
	logger.Info("normalized timeline", "id", def.ID, "name", def.Name, "keyframes", len(normalized))

	output := make([]map[string]any, 0, len(normalized))
	for _, keyframe := range normalized {
		output = append(output, map[string]any{
			"offset": keyframe.Offset,
			"styles": map[string]any(keyframe.Styles),
		})
	}
	rendered, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to render normalized keyframes: %w", err)
	}
	cmd.Println(string(rendered))
	return nil
}
