package workingday

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/entry"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/domain/workingday"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
)

type fakeWorkingDayRepo struct {
	days          map[string]workingday.WorkingDay
	createErr     error
	finishFailIDs map[string]bool
	missLookups   int
}

func newFakeWorkingDayRepo() *fakeWorkingDayRepo {
	return &fakeWorkingDayRepo{
		days:          make(map[string]workingday.WorkingDay),
		finishFailIDs: make(map[string]bool),
	}
}

func (f *fakeWorkingDayRepo) GetOpenByUserAndDate(_ context.Context, userID string, workedDate time.Time) (workingday.WorkingDay, error) {
	if f.missLookups > 0 {
		f.missLookups--
		return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
	}
	for _, day := range f.days {
		if day.UserID == userID && day.WorkedDate.Equal(workedDate) && !day.Finished {
			return day, nil
		}
	}
	return workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound
}

func (f *fakeWorkingDayRepo) Create(_ context.Context, day workingday.WorkingDay) (workingday.WorkingDay, error) {
	if f.createErr != nil {
		return workingday.WorkingDay{}, f.createErr
	}
	for _, existing := range f.days {
		if existing.UserID == day.UserID && existing.WorkedDate.Equal(day.WorkedDate) && !existing.Finished {
			return workingday.WorkingDay{}, workingday.ErrOpenDayExists
		}
	}
	f.days[day.ID] = day
	return day, nil
}

func (f *fakeWorkingDayRepo) ListUnfinishedBefore(_ context.Context, date time.Time) ([]workingday.WorkingDay, error) {
	result := make([]workingday.WorkingDay, 0)
	for _, day := range f.days {
		if !day.Finished && day.WorkedDate.Before(date) {
			result = append(result, day)
		}
	}
	return result, nil
}

func (f *fakeWorkingDayRepo) Finish(_ context.Context, id string, workedMinutes int) error {
	if f.finishFailIDs[id] {
		return errors.New("finish failed")
	}
	day, ok := f.days[id]
	if !ok {
		return workingday.ErrWorkingDayNotFound
	}
	day.Finished = true
	day.WorkedTime = workedMinutes
	f.days[id] = day
	return nil
}

func (f *fakeWorkingDayRepo) List(_ context.Context, filter workingday.ListWorkingDaysFilter) ([]workingday.WorkingDay, error) {
	result := make([]workingday.WorkingDay, 0)
	for _, day := range f.days {
		if day.UserID == filter.UserID {
			result = append(result, day)
		}
	}
	return result, nil
}

type fakeEntryRepo struct {
	approvedByDay map[string][]entry.Entry
	listErrDayIDs map[string]bool
}

func (f *fakeEntryRepo) Create(_ context.Context, e entry.Entry) (entry.Entry, error) { return e, nil }
func (f *fakeEntryRepo) GetByID(_ context.Context, _ string) (entry.Entry, error) {
	return entry.Entry{}, entry.ErrEntryNotFound
}
func (f *fakeEntryRepo) ExistsForUserBetween(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}
func (f *fakeEntryRepo) ListForUserBetween(_ context.Context, _ string, _, _ time.Time) ([]entry.Entry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) ListApprovedByWorkingDay(_ context.Context, workingDayID string) ([]entry.Entry, error) {
	if f.listErrDayIDs[workingDayID] {
		return nil, errors.New("list failed")
	}
	return f.approvedByDay[workingDayID], nil
}
func (f *fakeEntryRepo) SetApproved(_ context.Context, _ string) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(wdRepo *fakeWorkingDayRepo, entryRepo *fakeEntryRepo, at time.Time) workingday.WorkingDayService {
	return NewWorkingDayService(nil, wdRepo, entryRepo, clock.Fixed{Time: at}, discardLogger())
}

func TestEnsureWorkingDayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeWorkingDayRepo()
	svc := newTestService(repo, &fakeEntryRepo{}, now)

	first, err := svc.EnsureWorkingDay(ctx, "user-1", "company-1", now)
	require.NoError(t, err)

	second, err := svc.EnsureWorkingDay(ctx, "user-1", "company-1", now)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.days, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), first.WorkedDate)
	assert.False(t, first.Finished)
}

func TestEnsureWorkingDayRefetchesAfterInsertRace(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeWorkingDayRepo()
	svc := newTestService(repo, &fakeEntryRepo{}, now)

	// Another request wins the insert between our lookup and create.
	winner := workingday.WorkingDay{
		ID:         "wd-winner",
		UserID:     "user-1",
		CompanyID:  "company-1",
		WorkedDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	repo.createErr = workingday.ErrOpenDayExists
	repo.days[winner.ID] = winner
	repo.missLookups = 1

	day, err := svc.EnsureWorkingDay(ctx, "user-1", "company-1", now)
	require.NoError(t, err)
	assert.Equal(t, "wd-winner", day.ID)
}

func TestCloseoutStaleDaysSumsApprovedPairs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC)
	repo := newFakeWorkingDayRepo()

	yesterday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.days["wd-1"] = workingday.WorkingDay{ID: "wd-1", UserID: "user-1", WorkedDate: yesterday}

	at := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	}
	entryRepo := &fakeEntryRepo{approvedByDay: map[string][]entry.Entry{
		"wd-1": {
			{ID: "e1", EntryTime: at(8, 0)},
			{ID: "e2", EntryTime: at(8, 10)},
			{ID: "e3", EntryTime: at(9, 0)},
			{ID: "e4", EntryTime: at(9, 5)},
		},
	}}

	svc := newTestService(repo, entryRepo, now)
	closed, err := svc.CloseoutStaleDays(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, closed)
	assert.True(t, repo.days["wd-1"].Finished)
	assert.Equal(t, 15, repo.days["wd-1"].WorkedTime)
}

func TestCloseoutStaleDaysLeavesCurrentDayOpen(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 11, 0, 5, 0, 0, time.UTC)
	repo := newFakeWorkingDayRepo()

	repo.days["wd-today"] = workingday.WorkingDay{
		ID:         "wd-today",
		UserID:     "user-1",
		WorkedDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	svc := newTestService(repo, &fakeEntryRepo{}, now)
	closed, err := svc.CloseoutStaleDays(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 0, closed)
	assert.False(t, repo.days["wd-today"].Finished)
}

func TestCloseoutStaleDaysSkipsFailedDayAndContinues(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 0, 5, 0, 0, time.UTC)
	repo := newFakeWorkingDayRepo()

	repo.days["wd-bad"] = workingday.WorkingDay{
		ID: "wd-bad", UserID: "user-1",
		WorkedDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	repo.days["wd-good"] = workingday.WorkingDay{
		ID: "wd-good", UserID: "user-2",
		WorkedDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	repo.finishFailIDs["wd-bad"] = true

	svc := newTestService(repo, &fakeEntryRepo{}, now)
	closed, err := svc.CloseoutStaleDays(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, closed)
	assert.True(t, repo.days["wd-good"].Finished)
	assert.False(t, repo.days["wd-bad"].Finished)
	// A day with no approved entries closes at zero worked minutes.
	assert.Equal(t, 0, repo.days["wd-good"].WorkedTime)
}
