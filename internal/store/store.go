// Package store provides the partitioned spreadsheet persistence layer: one
// monthly tab per partition, one appended row per recorded lead.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/pancake-labs/lead-ingest/internal/model"
)

// ErrUnavailable marks failures to reach or use the external spreadsheet
// (network, auth, quota, timeout). Callers must never conflate it with a
// successful duplicate check.
var ErrUnavailable = eris.New("store: spreadsheet unavailable")

// PartitionStore is the pipeline's view of the external spreadsheet.
//
// EnsurePartition -> Exists -> Append is not atomic as a unit: the
// spreadsheet API offers no transactional check-and-append, so two
// concurrent deliveries for the same customer/post pair can both pass the
// existence check before either appends. Deduplication here is best-effort,
// at-least-once; stronger guarantees need an external lock keyed by
// (partition, customerID, postID).
type PartitionStore interface {
	// EnsurePartition creates the named partition if absent. A partition
	// already created by a concurrent caller is success, not an error.
	EnsurePartition(ctx context.Context, key string) error
	// Exists reports whether the partition already holds a row whose
	// identifying columns equal (customerID, postID) exactly.
	Exists(ctx context.Context, key, customerID, postID string) (bool, error)
	// Append writes one row in the fixed column order.
	Append(ctx context.Context, key string, rec model.LeadRecord) error
}
