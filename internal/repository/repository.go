// Package repository owns all persistence for the five ledger
// collections. Interfaces here are the seam the service layer and
// tests mock; the gorm implementations live alongside them.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means a referenced project/entry/withdrawal id does
	// not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotConfigured means a singleton config row has not been
	// written yet. Reads never create it; only updates do.
	ErrNotConfigured = errors.New("configuration row missing")
)

// EntryFilter narrows time-entry listings. Zero values mean "no
// filter"; Limit 0 means unpaginated.
type EntryFilter struct {
	ProjectID uint
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type Projects interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	// Delete cascades: the project's time entries go with it, in one
	// transaction, so no orphan snapshots survive.
	Delete(ctx context.Context, id uint) error
}

type Entries interface {
	List(ctx context.Context, f EntryFilter) ([]models.TimeEntry, int64, error)
	Get(ctx context.Context, id uint) (*models.TimeEntry, error)
	Create(ctx context.Context, e *models.TimeEntry) error
	Delete(ctx context.Context, id uint) error
	// SumGrossForProject totals gross USD billed against one project
	// (the "paid amount" of a fixed contract).
	SumGrossForProject(ctx context.Context, projectID uint) (float64, error)
	// SumNet totals net USD across all entries.
	SumNet(ctx context.Context) (float64, error)
}

type Withdrawals interface {
	List(ctx context.Context) ([]models.Withdrawal, error)
	Get(ctx context.Context, id uint) (*models.Withdrawal, error)
	Create(ctx context.Context, w *models.Withdrawal) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	// SumNetEarnings totals the net earnings already drawn down.
	SumNetEarnings(ctx context.Context) (float64, error)
}

type Settings interface {
	GetDeductions(ctx context.Context) (*models.DeductionConfig, error)
	UpdateDeductions(ctx context.Context, c *models.DeductionConfig) error
	GetCurrency(ctx context.Context) (*models.CurrencyConfig, error)
	UpdateCurrency(ctx context.Context, usdToINR float64) (*models.CurrencyConfig, error)
}

type Audit interface {
	Create(ctx context.Context, l *models.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error)
}

type Backups interface {
	Create(ctx context.Context, b *models.Backup) error
	List(ctx context.Context) ([]models.Backup, error)
	Get(ctx context.Context, id uint) (*models.Backup, error)
	Delete(ctx context.Context, id uint) error
}

// Store bundles the per-collection repositories and gives the service
// layer a single transactional boundary.
type Store struct {
	Projects    Projects
	Entries     Entries
	Withdrawals Withdrawals
	Settings    Settings
	Audit       Audit
	Backups     Backups

	db *gorm.DB
}

// NewStore wires gorm-backed repositories over one database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Projects:    &projectRepo{db: db},
		Entries:     &entryRepo{db: db},
		Withdrawals: &withdrawalRepo{db: db},
		Settings:    &settingsRepo{db: db},
		Audit:       &auditRepo{db: db},
		Backups:     &backupRepo{db: db},
		db:          db,
	}
}

// Transact runs fn with a Store bound to a single database
// transaction. Read-validate-write sequences (budget and balance
// checks) go through here so the aggregate read and the insert land
// atomically. Stores built without a database (test fakes) run fn
// directly.
func (s *Store) Transact(ctx context.Context, fn func(*Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
