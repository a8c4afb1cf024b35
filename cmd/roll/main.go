// Package main rolls randomized skill share distributions from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/netrey95-hub/skills/internal/cmd/roll"
	"github.com/netrey95-hub/skills/internal/platform/config"
	apperrors "github.com/netrey95-hub/skills/internal/platform/errors"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf(apperrors.ExitUsage, "parse flags: %v", err)
	}
	log.SetPrefix("[ROLL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rollcmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Printf("roll: %v", err)
		stop()
		code, message := apperrors.ExitStatus(err, cfg.Locale)
		config.Exitf(code, "%s", message)
	}
}
