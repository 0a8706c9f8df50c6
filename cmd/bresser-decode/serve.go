package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matthias-bs/bresser-decode/internal/options"
	"github.com/matthias-bs/bresser-decode/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the uplink webhook",
	Long:  "serve accepts uplinks from a LoRaWAN network server over HTTP and answers with the decoded fields.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, ok := options.ProfileFromContext(cmd.Context())
		if !ok {
			return errNoProfile
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(p, logrus.StandardLogger()).ListenAndServe(ctx, settings.Server.Listen)
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "address to listen on (default from config, 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}
