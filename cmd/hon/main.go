package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/hon-lang/hon/internal/diagnostics"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version string = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newCLI(os.Stdout, os.Stderr).execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		// diagnostics were already printed
		if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", APP_NAME, err)
		}
		os.Exit(1)
	}
}
