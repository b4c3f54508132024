//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "bin/vocabd"
	pkgMain = "./cmd/vocabd"
	ldflags = "-X github.com/vilyaua/AI-01/internal/app.Version=%s -X github.com/vilyaua/AI-01/internal/app.Commit=%s"
)

// Default target when running plain `mage`.
var Default = Build

// Build compiles the vocabd binary into bin/.
func Build() error {
	mg.Deps(Generate)
	version := envOr("VERSION", "dev")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	return sh.RunV("go", "build", "-ldflags", fmt.Sprintf(ldflags, version, commit), "-o", binary, pkgMain)
}

// Generate regenerates moq mocks.
func Generate() error {
	return sh.RunV("go", "generate", "./internal/...")
}

// Test runs unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// E2E runs the end-to-end suite against a PostgreSQL testcontainer.
func E2E() error {
	return sh.RunV("go", "test", "-tags", "e2e", "-count=1", "./tests/e2e/...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Migrate applies pending migrations using the configured database.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(binary, "migrate", "up")
}

// Serve builds and runs the API.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(binary, "serve")
}

// Clean removes build output.
func Clean() error {
	return os.RemoveAll("bin")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
