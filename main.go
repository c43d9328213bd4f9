package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/AidanDelaney/thrivebox/cmd"
	thrivebox "github.com/AidanDelaney/thrivebox/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err == nil {
		return
	}

	// the last external process decides the exit status; it already
	// reported its own failure
	var failure *thrivebox.ExternalProcessFailure
	if errors.As(err, &failure) && failure.ExitCode > 0 {
		os.Exit(failure.ExitCode)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
