package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopctl/config"
	"github.com/shashiranjanraj/shopctl/internal/stub"
)

var stubAddr string

// shopctl stub — run the in-memory API locally.
//
// Point the CLI at it with API_BASE_URL=http://localhost:8080.
var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local in-memory rendition of the shop API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		addr := stubAddr
		if addr == "" {
			addr = config.StubAddr()
		}

		srv := stub.NewServer(stub.NewStore())
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", "", "listen address (default from STUB_ADDR)")
}
