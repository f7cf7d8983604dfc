package app

import "log/slog"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/jobportal-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/jobportal-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildAttr groups the build metadata for the startup log line.
func buildAttr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}
