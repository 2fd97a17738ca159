// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/tasklist"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newSession)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

// newSession builds the in-memory task list for this process.
func newSession(cfg *config.Config, logger *log.Logger) (service.Service, error) {
	ids, err := tasklist.NewIDGenerator(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}
	return tasklist.New(
		tasklist.WithIDGenerator(ids),
		tasklist.WithLogger(logger),
	), nil
}
