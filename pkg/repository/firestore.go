package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultReportsCollection holds one document per report date
const DefaultReportsCollection = "reports"

// Firestore implements ReportRepository with Firestore
type Firestore struct {
	client     *firestore.Client
	collection string
}

// FirestoreOption configures Firestore
type FirestoreOption func(*Firestore)

// WithCollection stores reports in another collection
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		f.collection = name
	}
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	f := &Firestore{
		client:     client,
		collection: DefaultReportsCollection,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Fail fast on an invalid project or missing permissions
	_, err = client.Collection(f.collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", f.collection,
	)

	return f, nil
}

// PutReport saves a report, keyed by its date
func (f *Firestore) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if err := report.Date.Validate(); err != nil {
		return goerr.Wrap(err, "invalid report")
	}

	_, err := f.client.Collection(f.collection).Doc(report.Date.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to firestore", goerr.V("date", report.Date))
	}

	return nil
}

// GetReport retrieves the report of a date
func (f *Firestore) GetReport(ctx context.Context, date types.ReportDate) (*model.Report, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(f.collection).Doc(date.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReportNotFound, "failed to get report", goerr.V("date", date))
		}
		return nil, goerr.Wrap(err, "failed to get report from firestore", goerr.V("date", date))
	}

	var report model.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("date", date))
	}

	return &report, nil
}

// GetLatestReport retrieves the report with the newest date. Document IDs
// are YYYY-MM-DD, so ID order is date order.
func (f *Firestore) GetLatestReport(ctx context.Context) (*model.Report, error) {
	iter := f.client.Collection(f.collection).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(model.ErrReportNotFound, "no report archived")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query latest report")
	}

	var report model.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("docID", doc.Ref.ID))
	}

	return &report, nil
}

// ListReportDates returns archived dates, newest first
func (f *Firestore) ListReportDates(ctx context.Context) ([]types.ReportDate, error) {
	iter := f.client.Collection(f.collection).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Select().
		Documents(ctx)
	defer iter.Stop()

	dates := []types.ReportDate{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports")
		}
		dates = append(dates, types.ReportDate(doc.Ref.ID))
	}

	return dates, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.ReportRepository = (*Firestore)(nil) // Compile-time interface check
