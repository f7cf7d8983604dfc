// Command server runs the job portal HTTP API and the in-process expiry
// reminder scheduler.
//
// A .env file in the working directory is loaded when present; variables
// already set in the environment take precedence.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/jobportal-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
