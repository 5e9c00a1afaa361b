package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"kinetic/config"
	"kinetic/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the layout engine over HTTP",
	Long: `Serve POST /v1/screens and GET /healthz. Request fields left unset take
their values from the config and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLayoutFlags(cmd.Flags(), cfg); err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		measurer, release := newMeasurer(cfg)
		defer release()

		gin.SetMode(gin.ReleaseMode)
		h := server.NewHandler(logger, measurer, server.Defaults{
			Width:            cfg.Canvas.Width,
			Height:           cfg.Canvas.Height,
			GapThreshold:     cfg.Grouping.GapThreshold,
			MaxWordsPerGroup: cfg.Grouping.MaxWordsPerGroup,
			Options:          cfg.LayoutOptions(),
			AutoRTL:          cfg.Layout.Direction == config.DirectionAuto,
		}, cfg.Server.MaxWords)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, logger, server.Config{
			Addr:            cfg.Server.Addr,
			ReadTimeout:     cfg.Server.ReadTimeout,
			WriteTimeout:    cfg.Server.WriteTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		}, server.NewRouter(logger, h))
	},
}

func init() {
	addLayoutFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
