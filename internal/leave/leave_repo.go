package leave

import (
	"context"
	"strings"
	"sync"

	leaveerrors "github.com/PILLP-HO/pillp-lms/internal/leave/errors"
	"github.com/PILLP-HO/pillp-lms/internal/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Origin() Origin

	// Append adds a record and persists the whole collection.
	Append(ctx context.Context, rec Record) error

	// Update mutates the record with the given id in place (positional
	// replace) and persists. Returns the record as reloaded from storage.
	Update(ctx context.Context, id string, mutate func(*Record)) (*Record, error)

	FindByID(ctx context.Context, id string) (*Record, error)
	ListWhere(ctx context.Context, pred func(Record) bool) ([]Record, error)

	// Path is the backing workbook location, exposed for exports.
	Path() string
}

// ledger is a spreadsheet-backed collection. Every mutation rewrites the
// whole workbook and reloads it, so the in-memory view is always whatever a
// fresh read of the file would return. The mutex makes each read-modify-write
// a critical section; without it two concurrent status changes on the same id
// would race with last-writer-wins.
type ledger struct {
	mu      sync.RWMutex
	origin  Origin
	wb      *storage.Workbook
	records []Record
	logger  *zap.Logger
}

// NewLedger opens (or creates) the backing workbook and loads the collection.
func NewLedger(origin Origin, path string, logger ...*zap.Logger) (Repository, error) {
	l := zap.L().Named("leave.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.ledger")
	}

	headers := StaffLeaveHeaders
	if origin == OriginEmployee {
		headers = EmployeeLeaveHeaders
	}

	wb := storage.NewWorkbook(path, headers)
	rows, err := wb.ReadAll()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}

	l.Info("leave ledger loaded",
		zap.String("origin", string(origin)),
		zap.String("path", path),
		zap.Int("count", len(records)),
	)

	return &ledger{origin: origin, wb: wb, records: records, logger: l}, nil
}

func (g *ledger) Origin() Origin {
	return g.origin
}

func (g *ledger) Path() string {
	return g.wb.Path()
}

func (g *ledger) Append(ctx context.Context, rec Record) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.records = append(g.records, rec)
	if err := g.persistAndReloadLocked(); err != nil {
		g.logger.Error("append leave persist failed",
			zap.String("leave_id", rec.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (g *ledger) Update(ctx context.Context, id string, mutate func(*Record)) (*Record, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.indexOfLocked(id)
	if idx < 0 {
		return nil, leaveerrors.ErrLeaveNotFound
	}

	rec := g.records[idx]
	mutate(&rec)
	rec.ID = id // identity is immutable
	g.records[idx] = rec

	if err := g.persistAndReloadLocked(); err != nil {
		g.logger.Error("update leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	idx = g.indexOfLocked(id)
	if idx < 0 {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	updated := g.records[idx]
	return &updated, nil
}

func (g *ledger) FindByID(ctx context.Context, id string) (*Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx := g.indexOfLocked(id); idx >= 0 {
		rec := g.records[idx]
		return &rec, nil
	}
	return nil, leaveerrors.ErrLeaveNotFound
}

func (g *ledger) ListWhere(ctx context.Context, pred func(Record) bool) ([]Record, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	matched := make([]Record, 0)
	for _, rec := range g.records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (g *ledger) indexOfLocked(id string) int {
	for i, rec := range g.records {
		if strings.EqualFold(rec.ID, id) {
			return i
		}
	}
	return -1
}

// persistAndReloadLocked writes the whole collection and reads it back, so
// the read-after-write path is unconditionally canonical.
func (g *ledger) persistAndReloadLocked() error {
	rows := make([]map[string]string, 0, len(g.records))
	for _, rec := range g.records {
		rows = append(rows, recordToRow(rec))
	}
	if err := g.wb.WriteAll(rows); err != nil {
		return err
	}

	reloaded, err := g.wb.ReadAll()
	if err != nil {
		return err
	}
	g.records = g.records[:0]
	for _, row := range reloaded {
		g.records = append(g.records, recordFromRow(row))
	}
	return nil
}
