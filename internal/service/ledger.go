// Package service orchestrates the earnings pipeline over the
// repositories: fetch project and config, parse and compute, validate
// budget or balance, then persist. Validation always completes before
// the first write so a rejected request never leaves a partial row.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/earnings"
	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/timeparse"
)

// ErrInvalidAmount rejects fixed-project milestones whose manual gross
// is zero or negative; a 0-value snapshot row is never worth storing.
var ErrInvalidAmount = errors.New("milestone amount must be positive")

type Ledger struct {
	store *repository.Store
}

func NewLedger(store *repository.Store) *Ledger {
	return &Ledger{store: store}
}

// CreateEntryInput is one logged unit of work. Hourly projects use
// RawTime (the user-typed value, kept verbatim) and optionally Format;
// fixed projects use AmountUSD.
type CreateEntryInput struct {
	ProjectID   uint
	RawTime     string
	Format      string // "", "hm" or "fractional"
	AmountUSD   float64
	Date        time.Time
	Description string
}

// CreateTimeEntry runs the full pipeline and persists the snapshot.
// The deduction and currency config in force right now are copied into
// the row; editing them later never changes this entry.
func (l *Ledger) CreateTimeEntry(ctx context.Context, in CreateEntryInput) (*models.TimeEntry, error) {
	project, err := l.store.Projects.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	ded, fx, err := l.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		ProjectID:   project.ID,
		Date:        in.Date,
		Description: in.Description,
	}

	if project.Type == models.ProjectFixed {
		if in.AmountUSD <= 0 {
			return nil, ErrInvalidAmount
		}
		err := l.store.Transact(ctx, func(tx *repository.Store) error {
			paid, err := tx.Entries.SumGrossForProject(ctx, project.ID)
			if err != nil {
				return err
			}
			remaining := earnings.RemainingBudget(project.Rate, paid)
			if err := earnings.CheckBudget(in.AmountUSD, remaining); err != nil {
				return err
			}
			b := earnings.Compute(earnings.Input{Fixed: true, ManualGrossUSD: in.AmountUSD}, ded, fx)
			applyBreakdown(entry, b)
			return tx.Entries.Create(ctx, entry)
		})
		if err != nil {
			return nil, err
		}
		return entry, nil
	}

	parsed, err := timeparse.Parse(in.RawTime, timeparse.Options{Format: timeparse.Format(in.Format)})
	if err != nil {
		return nil, err
	}
	if parsed.HadOverflow {
		slog.Warn("time entry minute component is 60 or more, stored literally",
			"raw", parsed.Source, "minutes", parsed.Minutes)
	}

	entry.Minutes = parsed.Minutes
	entry.InputFormat = string(parsed.Format)
	entry.RawInput = parsed.Source

	b := earnings.Compute(earnings.Input{Minutes: parsed.Minutes, HourlyRate: project.Rate}, ded, fx)
	applyBreakdown(entry, b)

	if err := l.store.Entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateWithdrawalInput describes a new drawdown request. The final
// withdrawal amount is always computed here, never taken from the
// caller.
type CreateWithdrawalInput struct {
	NetEarnings    float64
	TransactionFee float64
	Date           time.Time
	Notes          string
}

func (l *Ledger) CreateWithdrawal(ctx context.Context, in CreateWithdrawalInput) (*models.Withdrawal, error) {
	w := &models.Withdrawal{
		NetEarnings:      in.NetEarnings,
		TransactionFee:   in.TransactionFee,
		WithdrawalAmount: in.NetEarnings - in.TransactionFee,
		WithdrawalDate:   in.Date,
		PaymentStatus:    models.WithdrawalPending,
		Notes:            in.Notes,
	}
	err := l.store.Transact(ctx, func(tx *repository.Store) error {
		totalNet, err := tx.Entries.SumNet(ctx)
		if err != nil {
			return err
		}
		withdrawn, err := tx.Withdrawals.SumNetEarnings(ctx)
		if err != nil {
			return err
		}
		available := earnings.AvailableBalance(totalNet, withdrawn)
		if err := earnings.CheckWithdrawal(in.NetEarnings, available); err != nil {
			return err
		}
		return tx.Withdrawals.Create(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// SetWithdrawalStatus toggles pending <-> received. Setting the status
// a withdrawal already has is a no-op, not an error.
func (l *Ledger) SetWithdrawalStatus(ctx context.Context, id uint, status string) error {
	if status != models.WithdrawalPending && status != models.WithdrawalReceived {
		return errors.New("payment status must be pending or received")
	}
	return l.store.Withdrawals.UpdateStatus(ctx, id, status)
}

// AvailableBalance is net earnings accumulated minus amounts already
// withdrawn, floored at zero.
func (l *Ledger) AvailableBalance(ctx context.Context) (float64, error) {
	totalNet, err := l.store.Entries.SumNet(ctx)
	if err != nil {
		return 0, err
	}
	withdrawn, err := l.store.Withdrawals.SumNetEarnings(ctx)
	if err != nil {
		return 0, err
	}
	return earnings.AvailableBalance(totalNet, withdrawn), nil
}

// RemainingBudget reports the unbilled portion of a fixed contract.
func (l *Ledger) RemainingBudget(ctx context.Context, projectID uint) (float64, error) {
	project, err := l.store.Projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	paid, err := l.store.Entries.SumGrossForProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return earnings.RemainingBudget(project.Rate, paid), nil
}

func (l *Ledger) loadConfig(ctx context.Context) (earnings.Deductions, float64, error) {
	dc, err := l.store.Settings.GetDeductions(ctx)
	if errors.Is(err, repository.ErrNotConfigured) {
		return earnings.Deductions{}, 0, earnings.ErrMissingConfiguration
	}
	if err != nil {
		return earnings.Deductions{}, 0, err
	}
	cc, err := l.store.Settings.GetCurrency(ctx)
	if errors.Is(err, repository.ErrNotConfigured) {
		return earnings.Deductions{}, 0, earnings.ErrMissingConfiguration
	}
	if err != nil {
		return earnings.Deductions{}, 0, err
	}
	ded := earnings.Deductions{
		ServiceFeePercent: dc.ServiceFeePercent,
		TDSPercent:        dc.TDSPercent,
		GSTPercent:        dc.GSTPercent,
		TransferFeeUSD:    dc.TransferFeeUSD,
	}
	return ded, cc.USDToINR, nil
}

func applyBreakdown(e *models.TimeEntry, b earnings.Breakdown) {
	e.GrossUSD = b.GrossUSD
	e.DeductionService = b.ServiceFeeUSD
	e.DeductionTDS = b.TDSUSD
	e.DeductionGST = b.GSTUSD
	e.DeductionTransfer = b.TransferFeeUSD
	e.DeductionTotal = b.DeductionTotalUSD
	e.NetUSD = b.NetUSD
	e.NetINR = b.NetINR
	e.ExchangeRate = b.ExchangeRate
}
