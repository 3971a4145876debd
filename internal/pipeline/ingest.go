package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pancake-labs/lead-ingest/internal/model"
	"github.com/pancake-labs/lead-ingest/internal/store"
)

// recordOutcome is the terminal state of one record's processing.
type recordOutcome string

const (
	outcomeAppended recordOutcome = "appended"
	outcomeSkipped  recordOutcome = "skipped"
)

// Result aggregates the per-record outcomes of one delivery. A delivery with
// zero normalized records is success with zero processed.
type Result struct {
	Appended int     `json:"appended"`
	Skipped  int     `json:"skipped"`
	Failed   int     `json:"failed"`
	Errors   []error `json:"-"`
}

// OK reports whether every record reached a terminal state without a store
// failure.
func (r Result) OK() bool {
	return r.Failed == 0
}

// Ingestor runs the normalize -> resolve partition -> dedupe -> append
// pipeline for each webhook delivery. It holds no per-request state; the
// singleflight group only collapses concurrent identical check-and-append
// sequences within this process, narrowing (not closing) the duplicate-row
// race inherent to the non-transactional store.
type Ingestor struct {
	store  store.PartitionStore
	flight singleflight.Group
}

// NewIngestor creates an Ingestor over the given partition store.
func NewIngestor(st store.PartitionStore) *Ingestor {
	return &Ingestor{store: st}
}

// Process normalizes one webhook body and records every resulting lead.
// Records are processed independently: a store failure on one record is
// counted and reported but never aborts its siblings.
func (in *Ingestor) Process(ctx context.Context, payload *model.WebhookPayload) Result {
	records := Normalize(payload)

	var res Result
	for _, rec := range records {
		outcome, err := in.processRecord(ctx, rec)
		switch {
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, err)
			zap.L().Error("ingest: record failed",
				zap.String("customer_id", rec.CustomerID),
				zap.String("post_id", rec.PostID),
				zap.Error(err))
		case outcome == outcomeSkipped:
			res.Skipped++
			zap.L().Info("ingest: duplicate skipped",
				zap.String("customer_id", rec.CustomerID),
				zap.String("post_id", rec.PostID))
		default:
			res.Appended++
			zap.L().Info("ingest: lead recorded",
				zap.String("customer_id", rec.CustomerID),
				zap.String("post_id", rec.PostID),
				zap.String("phone", rec.Phone),
				zap.String("partition", PartitionKey(rec.CommentTime)))
		}
	}
	return res
}

// processRecord runs the check-and-append sequence for one record. The
// sequence is keyed by (partition, customerId, postId) so concurrent
// redeliveries of the same activity share a single execution.
func (in *Ingestor) processRecord(ctx context.Context, rec model.LeadRecord) (recordOutcome, error) {
	key := PartitionKey(rec.CommentTime)
	flightKey := strings.Join([]string{key, rec.CustomerID, rec.PostID}, "|")

	v, err, _ := in.flight.Do(flightKey, func() (interface{}, error) {
		if err := in.store.EnsurePartition(ctx, key); err != nil {
			return nil, err
		}

		found, err := in.store.Exists(ctx, key, rec.CustomerID, rec.PostID)
		if err != nil {
			// "Could not check" is not "not found": appending here would
			// risk a duplicate row on redelivery.
			return nil, err
		}
		if found {
			return outcomeSkipped, nil
		}

		if err := in.store.Append(ctx, key, rec); err != nil {
			return nil, err
		}
		return outcomeAppended, nil
	})
	if err != nil {
		return "", err
	}
	return v.(recordOutcome), nil
}
