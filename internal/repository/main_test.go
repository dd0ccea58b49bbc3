//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"studio-admin-backend/internal/logger"
	"studio-admin-backend/internal/testutils"
)

// TestMain shares one postgres container across the repository suites and removes it on exit
func TestMain(m *testing.M) {
	log := logger.New().WithField("suite", "repository")

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		log.Warn("interrupted, removing test database container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	log.WithField("exit_code", code).Info("repository integration tests finished")
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
