package service

import (
	"context"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
)

// In-memory repositories for exercising the service pipeline without
// a database. A Store built this way runs Transact callbacks directly.

func newFakeStore() (*repository.Store, *fakeState) {
	st := &fakeState{}
	return &repository.Store{
		Projects:    &fakeProjects{st: st},
		Entries:     &fakeEntries{st: st},
		Withdrawals: &fakeWithdrawals{st: st},
		Settings:    &fakeSettings{st: st},
	}, st
}

type fakeState struct {
	projects    []models.Project
	entries     []models.TimeEntry
	withdrawals []models.Withdrawal
	deductions  *models.DeductionConfig
	currency    *models.CurrencyConfig
	nextID      uint
}

func (st *fakeState) id() uint {
	st.nextID++
	return st.nextID
}

type fakeProjects struct{ st *fakeState }

func (f *fakeProjects) List(ctx context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), f.st.projects...), nil
}

func (f *fakeProjects) Get(ctx context.Context, id uint) (*models.Project, error) {
	for i := range f.st.projects {
		if f.st.projects[i].ID == id {
			p := f.st.projects[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjects) Create(ctx context.Context, p *models.Project) error {
	p.ID = f.st.id()
	f.st.projects = append(f.st.projects, *p)
	return nil
}

func (f *fakeProjects) Update(ctx context.Context, p *models.Project) error {
	for i := range f.st.projects {
		if f.st.projects[i].ID == p.ID {
			f.st.projects[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProjects) Delete(ctx context.Context, id uint) error {
	found := false
	kept := f.st.projects[:0]
	for _, p := range f.st.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	f.st.projects = kept
	if !found {
		return repository.ErrNotFound
	}
	remaining := f.st.entries[:0]
	for _, e := range f.st.entries {
		if e.ProjectID != id {
			remaining = append(remaining, e)
		}
	}
	f.st.entries = remaining
	return nil
}

type fakeEntries struct{ st *fakeState }

func (f *fakeEntries) List(ctx context.Context, flt repository.EntryFilter) ([]models.TimeEntry, int64, error) {
	var out []models.TimeEntry
	for _, e := range f.st.entries {
		if flt.ProjectID != 0 && e.ProjectID != flt.ProjectID {
			continue
		}
		if flt.From != nil && e.Date.Before(*flt.From) {
			continue
		}
		if flt.To != nil && !e.Date.Before(*flt.To) {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntries) Get(ctx context.Context, id uint) (*models.TimeEntry, error) {
	for i := range f.st.entries {
		if f.st.entries[i].ID == id {
			e := f.st.entries[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEntries) Create(ctx context.Context, e *models.TimeEntry) error {
	e.ID = f.st.id()
	e.CreatedAt = time.Now()
	f.st.entries = append(f.st.entries, *e)
	return nil
}

func (f *fakeEntries) Delete(ctx context.Context, id uint) error {
	for i := range f.st.entries {
		if f.st.entries[i].ID == id {
			f.st.entries = append(f.st.entries[:i], f.st.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeEntries) SumGrossForProject(ctx context.Context, projectID uint) (float64, error) {
	var total float64
	for _, e := range f.st.entries {
		if e.ProjectID == projectID {
			total += e.GrossUSD
		}
	}
	return total, nil
}

func (f *fakeEntries) SumNet(ctx context.Context) (float64, error) {
	var total float64
	for _, e := range f.st.entries {
		total += e.NetUSD
	}
	return total, nil
}

type fakeWithdrawals struct{ st *fakeState }

func (f *fakeWithdrawals) List(ctx context.Context) ([]models.Withdrawal, error) {
	return append([]models.Withdrawal(nil), f.st.withdrawals...), nil
}

func (f *fakeWithdrawals) Get(ctx context.Context, id uint) (*models.Withdrawal, error) {
	for i := range f.st.withdrawals {
		if f.st.withdrawals[i].ID == id {
			w := f.st.withdrawals[i]
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeWithdrawals) Create(ctx context.Context, w *models.Withdrawal) error {
	w.ID = f.st.id()
	f.st.withdrawals = append(f.st.withdrawals, *w)
	return nil
}

func (f *fakeWithdrawals) UpdateStatus(ctx context.Context, id uint, status string) error {
	for i := range f.st.withdrawals {
		if f.st.withdrawals[i].ID == id {
			f.st.withdrawals[i].PaymentStatus = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeWithdrawals) Delete(ctx context.Context, id uint) error {
	for i := range f.st.withdrawals {
		if f.st.withdrawals[i].ID == id {
			f.st.withdrawals = append(f.st.withdrawals[:i], f.st.withdrawals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeWithdrawals) SumNetEarnings(ctx context.Context) (float64, error) {
	var total float64
	for _, w := range f.st.withdrawals {
		total += w.NetEarnings
	}
	return total, nil
}

type fakeSettings struct{ st *fakeState }

func (f *fakeSettings) GetDeductions(ctx context.Context) (*models.DeductionConfig, error) {
	if f.st.deductions == nil {
		return nil, repository.ErrNotConfigured
	}
	c := *f.st.deductions
	return &c, nil
}

func (f *fakeSettings) UpdateDeductions(ctx context.Context, c *models.DeductionConfig) error {
	cp := *c
	f.st.deductions = &cp
	return nil
}

func (f *fakeSettings) GetCurrency(ctx context.Context) (*models.CurrencyConfig, error) {
	if f.st.currency == nil {
		return nil, repository.ErrNotConfigured
	}
	c := *f.st.currency
	return &c, nil
}

func (f *fakeSettings) UpdateCurrency(ctx context.Context, usdToINR float64) (*models.CurrencyConfig, error) {
	f.st.currency = &models.CurrencyConfig{ID: 1, USDToINR: usdToINR, LastUpdated: time.Now()}
	c := *f.st.currency
	return &c, nil
}
