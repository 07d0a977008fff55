// Package main is the entry point for create-bread-app.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/breadjs/create-bread-app/internal/cmd"
	oerrors "github.com/breadjs/create-bread-app/internal/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)
	return oerrors.ExitCodeFromError(err)
}
