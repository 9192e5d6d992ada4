package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshift-bot/internal/model"
)

type fakeShiftRepo struct {
	mu         sync.Mutex
	shifts     map[int64]map[string]model.ShiftRecord
	rates      map[int64]model.RateTable
	shiftSaves int
	rateSaves  int
	saveErr    error
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{
		shifts: map[int64]map[string]model.ShiftRecord{},
		rates:  map[int64]model.RateTable{},
	}
}

func (f *fakeShiftRepo) LoadShifts(_ context.Context, userID int64) (map[string]model.ShiftRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]model.ShiftRecord{}
	for k, v := range f.shifts[userID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeShiftRepo) SaveShifts(_ context.Context, userID int64, shifts map[string]model.ShiftRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shiftSaves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.shifts[userID] = shifts
	return nil
}

func (f *fakeShiftRepo) LoadRates(_ context.Context, userID int64) (model.RateTable, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rates[userID]
	return r, ok, nil
}

func (f *fakeShiftRepo) SaveRates(_ context.Context, userID int64, rates model.RateTable) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateSaves++
	f.rates[userID] = rates
	return nil
}

func (f *fakeShiftRepo) saves() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shiftSaves, f.rateSaves
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeShiftRepo, delay time.Duration) *ShiftServiceImpl {
	return NewShiftService(repo, DefaultRates, delay)
}

func TestShiftDefaults(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), time.Hour)
	defer svc.Close()
	ctx := context.Background()

	tue, err := svc.Shift(ctx, 1, day(2025, time.March, 11))
	require.NoError(t, err)
	assert.Equal(t, model.ShiftRecord{ID: "2025-03-11", Date: "2025-03-11", StartTime: "02:00", EndTime: "10:00"}, tue)

	mon, err := svc.MarkWorkDay(ctx, 1, day(2025, time.March, 10))
	require.NoError(t, err)
	assert.True(t, mon.IsWorkDay)
	assert.Equal(t, "03:00", mon.StartTime)
	assert.Equal(t, "11:00", mon.EndTime)
}

func TestMarkWorkDayKeepsEditedTimes(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), time.Hour)
	defer svc.Close()
	ctx := context.Background()
	d := day(2025, time.March, 12)

	_, err := svc.UpdateShift(ctx, 1, d, func(rec *model.ShiftRecord) {
		rec.IsWorkDay = true
		rec.StartTime = "22:00"
		rec.EndTime = "06:00"
	})
	require.NoError(t, err)

	rec, err := svc.MarkWorkDay(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, "22:00", rec.StartTime)
}

func TestMutationsAreCoalesced(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo, 50*time.Millisecond)
	defer svc.Close()
	ctx := context.Background()
	d := day(2025, time.March, 12)

	_, err := svc.MarkWorkDay(ctx, 1, d)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := svc.UpdateShift(ctx, 1, d, func(rec *model.ShiftRecord) {
			rec.EndTime = "11:00"
			rec.IsCompleted = !rec.IsCompleted
		})
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		n, _ := repo.saves()
		return n == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	n, _ := repo.saves()
	assert.Equal(t, 1, n)

	saved := repo.shifts[1]["2025-03-12"]
	assert.True(t, saved.IsWorkDay)
	assert.Equal(t, "11:00", saved.EndTime)
	assert.False(t, saved.IsCompleted)
}

func TestCloseCancelsPendingWrites(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo, 30*time.Millisecond)

	_, err := svc.MarkWorkDay(context.Background(), 1, day(2025, time.March, 12))
	require.NoError(t, err)
	svc.Close()

	time.Sleep(80 * time.Millisecond)
	n, _ := repo.saves()
	assert.Zero(t, n)
}

func TestFlushWritesPendingImmediately(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.MarkWorkDay(ctx, 1, day(2025, time.March, 12))
	require.NoError(t, err)
	_, err = svc.AdjustRate(ctx, 1, model.RateDay, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Flush(ctx))

	shiftSaves, rateSaves := repo.saves()
	assert.Equal(t, 1, shiftSaves)
	assert.Equal(t, 1, rateSaves)
	assert.Equal(t, 35.0, repo.rates[1].Day)
}

func TestFlushReportsSaveError(t *testing.T) {
	repo := newFakeShiftRepo()
	repo.saveErr = errors.New("disk full")
	svc := newTestService(repo, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.MarkWorkDay(ctx, 1, day(2025, time.March, 12))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Flush(ctx), repo.saveErr)
}

func TestResetAndRemove(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newTestService(repo, time.Hour)
	defer svc.Close()
	ctx := context.Background()
	d := day(2025, time.March, 12)

	_, err := svc.UpdateShift(ctx, 1, d, func(rec *model.ShiftRecord) {
		rec.IsWorkDay = true
		rec.IsCompleted = true
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetShift(ctx, 1, d))
	month, err := svc.MonthShifts(ctx, 1, 2025, time.March)
	require.NoError(t, err)
	require.Contains(t, month, "2025-03-12")
	assert.False(t, month["2025-03-12"].IsWorkDay)
	assert.False(t, month["2025-03-12"].IsCompleted)

	require.NoError(t, svc.RemoveShift(ctx, 1, d))
	month, err = svc.MonthShifts(ctx, 1, 2025, time.March)
	require.NoError(t, err)
	assert.NotContains(t, month, "2025-03-12")
}

func TestMonthStats(t *testing.T) {
	repo := newFakeShiftRepo()
	repo.shifts[1] = map[string]model.ShiftRecord{
		"2025-03-10": {ID: "2025-03-10", Date: "2025-03-10", IsWorkDay: true, StartTime: "02:00", EndTime: "10:00", IsCompleted: true},
		"2025-03-11": {ID: "2025-03-11", Date: "2025-03-11", IsWorkDay: true, StartTime: "22:00", EndTime: "06:00"},
		"2025-03-12": {ID: "2025-03-12", Date: "2025-03-12", StartTime: "02:00", EndTime: "10:00"},
		"2025-04-01": {ID: "2025-04-01", Date: "2025-04-01", IsWorkDay: true, StartTime: "02:00", EndTime: "10:00", IsCompleted: true},
	}
	svc := newTestService(repo, time.Hour)
	defer svc.Close()

	stats, err := svc.MonthStats(context.Background(), 1, 2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.WorkDays)
	assert.Equal(t, 1, stats.CompletedDays)
	assert.InDelta(t, 286.80+294.20, stats.Projected, 1e-6)
	assert.InDelta(t, 286.80, stats.Earned, 1e-6)
}

func TestAutoFill(t *testing.T) {
	repo := newFakeShiftRepo()
	repo.shifts[1] = map[string]model.ShiftRecord{
		"2025-03-03": {ID: "2025-03-03", Date: "2025-03-03", IsWorkDay: true, StartTime: "22:00", EndTime: "06:00"},
	}
	svc := newTestService(repo, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	added, err := svc.AutoFill(ctx, 1, 2025, time.March, weekdays)
	require.NoError(t, err)
	// в марте 2025 21 будний день, один уже рабочий
	assert.Equal(t, 20, added)

	month, err := svc.MonthShifts(ctx, 1, 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, "22:00", month["2025-03-03"].StartTime)
	assert.Equal(t, "03:00", month["2025-03-10"].StartTime)
	assert.Equal(t, "02:00", month["2025-03-11"].StartTime)
	assert.NotContains(t, month, "2025-03-08")

	again, err := svc.AutoFill(ctx, 1, 2025, time.March, weekdays)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestAdjustRate(t *testing.T) {
	repo := newFakeShiftRepo()
	repo.rates[1] = model.RateTable{Day: 0.3, Night: 37.70}
	svc := newTestService(repo, time.Hour)
	defer svc.Close()
	ctx := context.Background()

	rates, err := svc.AdjustRate(ctx, 1, model.RateNight, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 37.8, rates.Night)

	rates, err = svc.AdjustRate(ctx, 1, model.RateDay, -1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rates.Day)

	_, err = svc.AdjustRate(ctx, 1, "weekend", 1)
	assert.ErrorIs(t, err, ErrInvalidRateKind)

	res, err := svc.Earnings(ctx, 1, model.ShiftRecord{StartTime: "02:00", EndTime: "10:00"})
	require.NoError(t, err)
	assert.InDelta(t, 4*37.8, res.TotalPay, 1e-9)
}

func TestDefaultRatesForNewUser(t *testing.T) {
	svc := newTestService(newFakeShiftRepo(), time.Hour)
	defer svc.Close()

	rates, err := svc.Rates(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, DefaultRates, rates)
}
