// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// The default command is "up". Requires DATABASE_DSN to be set.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [up|down|status|version]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		log.Fatalf("open migrator: %v", err)
	}
	defer m.Close()

	if err := run(ctx, m, command); err != nil {
		log.Printf("%s: %v", command, err)
		m.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, m *postgres.Migrator, command string) error {
	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Applied %d migration(s).\n", applied)
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		fmt.Println("Rolled back one migration.")
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Current version: %d\n", v)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
