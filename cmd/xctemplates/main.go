package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/xctemplates/internal/cli"
)

func main() {
	// Interrupting kills any mkdir/rm still running
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.PrintError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
