package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-formext/internal/install"
)

func main() {
	output := flag.String("output", install.DefaultPath, "initializer path to write")
	force := flag.Bool("force", false, "overwrite an existing initializer without asking")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := install.Run(ctx, install.NewSurveyDriver(), install.Options{
		Path:  *output,
		Force: *force,
	}); err != nil {
		log.Fatalf("Failed to write initializer: %v", err)
	}
}
