package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pancake-labs/lead-ingest/internal/model"
	"github.com/pancake-labs/lead-ingest/pkg/sheets"
)

// Default grid size for a freshly created monthly partition.
const (
	DefaultPartitionRows int64 = 2000
	DefaultPartitionCols int64 = 10
)

const defaultCallTimeout = 10 * time.Second

// dedupRange is the fixed identifying-column prefix the existence scan
// reads: customerId and postId, columns A and B. The scan width is pinned
// here, independent of the total row width.
const dedupRange = "A:B"

// appendRange covers the full row schema, columns A-F.
const appendRange = "A:F"

// SheetStore implements PartitionStore on a Google Sheets document. Every
// API call is bounded by a per-call timeout; a call that cannot complete
// surfaces as ErrUnavailable rather than hanging the request.
type SheetStore struct {
	client      sheets.Client
	callTimeout time.Duration
	rows, cols  int64
}

// SheetStoreOption configures a SheetStore.
type SheetStoreOption func(*SheetStore)

// WithCallTimeout overrides the per-call timeout.
func WithCallTimeout(d time.Duration) SheetStoreOption {
	return func(s *SheetStore) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

// WithPartitionSize overrides the grid size of newly created partitions.
func WithPartitionSize(rows, cols int64) SheetStoreOption {
	return func(s *SheetStore) {
		if rows > 0 {
			s.rows = rows
		}
		if cols > 0 {
			s.cols = cols
		}
	}
}

// NewSheetStore creates a SheetStore over the given Sheets client.
func NewSheetStore(client sheets.Client, opts ...SheetStoreOption) *SheetStore {
	s := &SheetStore{
		client:      client,
		callTimeout: defaultCallTimeout,
		rows:        DefaultPartitionRows,
		cols:        DefaultPartitionCols,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SheetStore) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.callTimeout)
}

// unavailable folds an API failure into the ErrUnavailable sentinel, keeping
// the underlying detail in the message.
func unavailable(err error, op, key string) error {
	return eris.Wrapf(ErrUnavailable, "%s %s: %v", op, key, err)
}

// EnsurePartition creates the monthly tab if it does not exist yet. Losing
// the creation race to a concurrent caller counts as success.
func (s *SheetStore) EnsurePartition(ctx context.Context, key string) error {
	listCtx, cancel := s.callCtx(ctx)
	defer cancel()

	titles, err := s.client.SheetTitles(listCtx)
	if err != nil {
		return unavailable(err, "list partitions for", key)
	}
	if slices.Contains(titles, key) {
		return nil
	}

	addCtx, cancelAdd := s.callCtx(ctx)
	defer cancelAdd()

	if err := s.client.AddSheet(addCtx, key, s.rows, s.cols); err != nil {
		if sheets.IsAlreadyExists(err) {
			return nil
		}
		return unavailable(err, "create partition", key)
	}

	zap.L().Info("store: created partition", zap.String("partition", key))
	return nil
}

// Exists scans the partition's identifying columns for an exact match on
// both customerID and postID.
func (s *SheetStore) Exists(ctx context.Context, key, customerID, postID string) (bool, error) {
	readCtx, cancel := s.callCtx(ctx)
	defer cancel()

	rows, err := s.client.ReadRange(readCtx, fmt.Sprintf("%s!%s", key, dedupRange))
	if err != nil {
		return false, unavailable(err, "scan partition", key)
	}

	for _, row := range rows {
		if len(row) >= model.IdentityColumns && row[0] == customerID && row[1] == postID {
			return true, nil
		}
	}
	return false, nil
}

// Append writes the record as one row at the end of the partition.
func (s *SheetStore) Append(ctx context.Context, key string, rec model.LeadRecord) error {
	appendCtx, cancel := s.callCtx(ctx)
	defer cancel()

	if err := s.client.AppendRow(appendCtx, fmt.Sprintf("%s!%s", key, appendRange), rec.Row()); err != nil {
		return unavailable(err, "append to partition", key)
	}
	return nil
}
