package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arash-karimi/moodreel/config"
	srv "github.com/arash-karimi/moodreel/internal/server"
)

func main() {
	var root = &cobra.Command{Use: "moodreel"}

	var serveAddr string
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if serveAddr == "" {
				serveAddr = os.Getenv("MOODREEL_HTTP_ADDR")
			}
			return srv.Run(cfg, serveAddr)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config)")

	root.AddCommand(serve)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
