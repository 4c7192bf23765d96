package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	recordstorecmd "github.com/louisbranch/recordstore/internal/cmd/recordstore"
	"github.com/louisbranch/recordstore/internal/platform/config"
)

func main() {
	cfg, err := recordstorecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[RECORDSTORE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := recordstorecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("run walkthrough: %v", err)
	}
}
