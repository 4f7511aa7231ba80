//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the server, migrator and seeder into ./bin.
func Build() error {
	mg.Deps(Tidy)
	for _, cmd := range []string{"main", "migrator", "seeder"} {
		fmt.Println(">> Building", cmd, "...")
		if err := sh.Run("go", "build", "-o", "bin/athena-"+cmd, "./cmd/"+cmd); err != nil {
			return err
		}
	}
	return nil
}

// Run builds then starts the server.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting athena ...")
	return sh.RunV("./bin/athena-main")
}

// Migrate applies database migrations from ./migrations.
func Migrate() error {
	fmt.Println(">> Applying migrations...")
	return sh.RunV("go", "run", "./cmd/migrator")
}

// Seed fills the database with generated demo employees.
func Seed() error {
	mg.Deps(Migrate)
	fmt.Println(">> Seeding employees...")
	return sh.RunV("go", "run", "./cmd/seeder")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests with the race detector.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Integration runs the repository tests against a throwaway Postgres container.
func Integration() error {
	fmt.Println(">> Running integration tests...")
	return sh.RunV("go", "test", "-tags", "integration", "./internal/repository/...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println(">> Cleaning...")
	return os.RemoveAll("bin")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
