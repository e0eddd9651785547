package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/geoviz/config"
	"github.com/meghashyamc/geoviz/game"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		env    string
		width  int
		height int
		title  string
	)

	cmd := &cobra.Command{
		Use:          "geoviz",
		Short:        "Drag points and an arrow to explore line intersections, projections and reflections",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(env)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Set("WINDOW_WIDTH", width)
			}
			if cmd.Flags().Changed("height") {
				cfg.Set("WINDOW_HEIGHT", height)
			}
			if cmd.Flags().Changed("title") {
				cfg.Set("WINDOW_TITLE", title)
			}

			g, err := game.NewGame(cfg)
			if err != nil {
				slog.Error("error creating visualizer", "err", err)
				return err
			}
			if err := g.Run(); err != nil {
				slog.Error("error running visualizer", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&env, "env", "", "config environment, selects config/config.<env>.yaml (default $ENV or local)")
	cmd.Flags().IntVar(&width, "width", 0, "window width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "window height in pixels")
	cmd.Flags().StringVar(&title, "title", "", "window title")

	return cmd
}
