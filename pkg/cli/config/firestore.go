package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds the report archive configuration
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID of the report archive",
			Category:    "Firestore",
			Sources:     cli.EnvVars("TECHFLOW_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("TECHFLOW_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding the reports",
			Category:    "Firestore",
			Value:       repository.DefaultReportsCollection,
			Sources:     cli.EnvVars("TECHFLOW_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure creates the report archive. Without a project the archive lives
// in memory.
func (f *Firestore) Configure(ctx context.Context) (interfaces.ReportRepository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Using memory database instead of firestore. Reports will be removed when shutting down")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID,
		repository.WithCollection(f.Collection),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}

	return repo, nil
}

// IsConfigured checks if Firestore is properly configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
