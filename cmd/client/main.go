package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-file-vault/internal/service"
	"github.com/MKhiriev/go-file-vault/internal/tui"
	"github.com/MKhiriev/go-file-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(build).ExecuteContext(ctx)
	stop()
	closeStorages()

	if err != nil {
		exitOnError(err)
	}
}

// exitOnError prints err with a hint for the user and exits with status 1.
// An interrupted command exits with 130.
func exitOnError(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, tui.ErrUserQuit) {
		fmt.Fprintln(os.Stderr, "Interrupted")
		os.Exit(130)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if hint := service.Hint(err); hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
	}
	os.Exit(1)
}
