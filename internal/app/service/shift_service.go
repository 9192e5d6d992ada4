package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"workshift-bot/internal/domain"
	"workshift-bot/internal/metrics"
	"workshift-bot/internal/model"
	"workshift-bot/pkg/debounce"
)

const (
	DefaultSaveDelay = 500 * time.Millisecond
	saveTimeout      = 10 * time.Second
)

// Время смены по умолчанию; по понедельникам смена на час позже.
const (
	DefaultStart       = "02:00"
	DefaultEnd         = "10:00"
	DefaultMondayStart = "03:00"
	DefaultMondayEnd   = "11:00"
)

var DefaultRates = model.RateTable{Day: 34.00, Night: 37.70}

var ErrInvalidRateKind = errors.New("unknown rate kind")

var _ domain.ShiftService = (*ShiftServiceImpl)(nil)

// ShiftServiceImpl держит карту смен каждого пользователя в памяти и
// сохраняет её с задержкой: частые правки дают одну запись за паузу.
type ShiftServiceImpl struct {
	Repo         domain.ShiftRepo
	DefaultRates model.RateTable
	SaveDelay    time.Duration

	mu       sync.Mutex
	sessions map[int64]*session
}

type session struct {
	mu     sync.Mutex
	loaded bool
	shifts map[string]model.ShiftRecord
	rates  model.RateTable

	shiftSaver *debounce.Debouncer
	rateSaver  *debounce.Debouncer
}

func NewShiftService(repo domain.ShiftRepo, rates model.RateTable, saveDelay time.Duration) *ShiftServiceImpl {
	if saveDelay <= 0 {
		saveDelay = DefaultSaveDelay
	}
	return &ShiftServiceImpl{
		Repo:         repo,
		DefaultRates: rates,
		SaveDelay:    saveDelay,
		sessions:     make(map[int64]*session),
	}
}

// session возвращает заблокированную сессию пользователя, при первом обращении загружая данные.
// Вызывающий обязан сделать sess.mu.Unlock().
func (s *ShiftServiceImpl) session(ctx context.Context, userID int64) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{
			shiftSaver: debounce.New(s.SaveDelay),
			rateSaver:  debounce.New(s.SaveDelay),
		}
		s.sessions[userID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	if sess.loaded {
		return sess, nil
	}
	shifts, err := s.Repo.LoadShifts(ctx, userID)
	if err != nil {
		sess.mu.Unlock()
		return nil, fmt.Errorf("load shifts: %w", err)
	}
	rates, ok, err := s.Repo.LoadRates(ctx, userID)
	if err != nil {
		sess.mu.Unlock()
		return nil, fmt.Errorf("load rates: %w", err)
	}
	if !ok {
		rates = s.DefaultRates
	}
	sess.shifts = shifts
	sess.rates = rates
	sess.loaded = true
	return sess, nil
}

func dateKey(date time.Time) string {
	return date.Format(model.DateLayout)
}

// blankShift — запись для дня без смены, со временем по умолчанию.
func blankShift(date time.Time) model.ShiftRecord {
	key := dateKey(date)
	start, end := DefaultStart, DefaultEnd
	if date.Weekday() == time.Monday {
		start, end = DefaultMondayStart, DefaultMondayEnd
	}
	return model.ShiftRecord{ID: key, Date: key, StartTime: start, EndTime: end}
}

func (s *ShiftServiceImpl) Shift(ctx context.Context, userID int64, date time.Time) (model.ShiftRecord, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.ShiftRecord{}, err
	}
	defer sess.mu.Unlock()
	if rec, ok := sess.shifts[dateKey(date)]; ok {
		return rec, nil
	}
	return blankShift(date), nil
}

// MarkWorkDay делает день рабочим; новая смена получает время по умолчанию.
func (s *ShiftServiceImpl) MarkWorkDay(ctx context.Context, userID int64, date time.Time) (model.ShiftRecord, error) {
	return s.UpdateShift(ctx, userID, date, func(rec *model.ShiftRecord) {
		if rec.IsWorkDay {
			return
		}
		blank := blankShift(date)
		rec.IsWorkDay = true
		rec.StartTime, rec.EndTime = blank.StartTime, blank.EndTime
	})
}

// UpdateShift меняет смену дня на месте и планирует сохранение.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, userID int64, date time.Time, mutate func(*model.ShiftRecord)) (model.ShiftRecord, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.ShiftRecord{}, err
	}
	defer sess.mu.Unlock()

	key := dateKey(date)
	rec, ok := sess.shifts[key]
	if !ok {
		rec = blankShift(date)
	}
	mutate(&rec)
	rec.ID, rec.Date = key, key
	sess.shifts[key] = rec
	s.scheduleShifts(userID, sess)
	return rec, nil
}

// ResetShift снимает отметку рабочего дня, не удаляя запись.
func (s *ShiftServiceImpl) ResetShift(ctx context.Context, userID int64, date time.Time) error {
	_, err := s.UpdateShift(ctx, userID, date, func(rec *model.ShiftRecord) {
		rec.IsWorkDay = false
		rec.IsCompleted = false
	})
	return err
}

func (s *ShiftServiceImpl) RemoveShift(ctx context.Context, userID int64, date time.Time) error {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()
	key := dateKey(date)
	if _, ok := sess.shifts[key]; !ok {
		return nil
	}
	delete(sess.shifts, key)
	s.scheduleShifts(userID, sess)
	return nil
}

func (s *ShiftServiceImpl) MonthShifts(ctx context.Context, userID int64, year int, month time.Month) (map[string]model.ShiftRecord, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	out := make(map[string]model.ShiftRecord)
	for k, rec := range sess.shifts {
		if strings.HasPrefix(k, prefix) {
			out[k] = rec
		}
	}
	return out, nil
}

func (s *ShiftServiceImpl) MonthStats(ctx context.Context, userID int64, year int, month time.Month) (model.MonthStats, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.MonthStats{}, err
	}
	defer sess.mu.Unlock()

	var stats model.MonthStats
	for _, rec := range sess.shifts {
		d, ok := rec.Day()
		if !ok || !rec.IsWorkDay || d.Year() != year || d.Month() != month {
			continue
		}
		pay := CalculateEarnings(rec.StartTime, rec.EndTime, sess.rates).TotalPay
		stats.Projected += pay
		stats.WorkDays++
		if rec.IsCompleted {
			stats.Earned += pay
			stats.CompletedDays++
		}
	}
	return stats, nil
}

// AutoFill отмечает рабочими все дни месяца с указанными днями недели,
// которые ещё не рабочие. Возвращает число добавленных смен.
func (s *ShiftServiceImpl) AutoFill(ctx context.Context, userID int64, year int, month time.Month, weekdays []time.Weekday) (int, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return 0, err
	}
	defer sess.mu.Unlock()

	want := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		want[wd] = true
	}
	added := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if !want[d.Weekday()] {
			continue
		}
		key := dateKey(d)
		if rec, ok := sess.shifts[key]; ok && rec.IsWorkDay {
			continue
		}
		rec := blankShift(d)
		rec.IsWorkDay = true
		sess.shifts[key] = rec
		added++
	}
	if added > 0 {
		s.scheduleShifts(userID, sess)
	}
	return added, nil
}

func (s *ShiftServiceImpl) Rates(ctx context.Context, userID int64) (model.RateTable, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.RateTable{}, err
	}
	defer sess.mu.Unlock()
	return sess.rates, nil
}

// AdjustRate меняет ставку на delta, округляя до копеек и не опуская ниже нуля.
func (s *ShiftServiceImpl) AdjustRate(ctx context.Context, userID int64, kind model.RateKind, delta float64) (model.RateTable, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.RateTable{}, err
	}
	defer sess.mu.Unlock()

	var target *float64
	switch kind {
	case model.RateDay:
		target = &sess.rates.Day
	case model.RateNight:
		target = &sess.rates.Night
	default:
		return sess.rates, fmt.Errorf("%w: %q", ErrInvalidRateKind, kind)
	}
	v := decimal.NewFromFloat(*target).Add(decimal.NewFromFloat(delta)).Round(2)
	if v.IsNegative() {
		v = decimal.Zero
	}
	*target = v.InexactFloat64()
	s.scheduleRates(userID, sess)
	return sess.rates, nil
}

func (s *ShiftServiceImpl) Earnings(ctx context.Context, userID int64, shift model.ShiftRecord) (model.EarningsResult, error) {
	rates, err := s.Rates(ctx, userID)
	if err != nil {
		return model.EarningsResult{}, err
	}
	return CalculateEarnings(shift.StartTime, shift.EndTime, rates), nil
}

// scheduleShifts перевзводит отложенную запись; снимок карты берётся в момент записи.
// Вызывается под sess.mu.
func (s *ShiftServiceImpl) scheduleShifts(userID int64, sess *session) {
	sess.shiftSaver.Schedule(func() error {
		sess.mu.Lock()
		snapshot := make(map[string]model.ShiftRecord, len(sess.shifts))
		for k, v := range sess.shifts {
			snapshot[k] = v
		}
		sess.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return s.commit(userID, "shifts", s.Repo.SaveShifts(ctx, userID, snapshot))
	})
}

func (s *ShiftServiceImpl) scheduleRates(userID int64, sess *session) {
	sess.rateSaver.Schedule(func() error {
		sess.mu.Lock()
		rates := sess.rates
		sess.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return s.commit(userID, "rates", s.Repo.SaveRates(ctx, userID, rates))
	})
}

func (s *ShiftServiceImpl) commit(userID int64, what string, err error) error {
	if err != nil {
		metrics.Flushes.WithLabelValues("error").Inc()
		slog.Error("failed to save", "what", what, "user", userID, "error", err)
		return err
	}
	metrics.Flushes.WithLabelValues("ok").Inc()
	slog.Debug("saved", "what", what, "user", userID)
	return nil
}

func (s *ShiftServiceImpl) snapshotSessions() []*session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// Flush сразу записывает все отложенные изменения.
func (s *ShiftServiceImpl) Flush(ctx context.Context) error {
	var errs []error
	for _, sess := range s.snapshotSessions() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sess.shiftSaver.Flush(); err != nil {
			errs = append(errs, err)
		}
		if err := sess.rateSaver.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close отменяет отложенные записи без сохранения; перед ним нужен Flush, если данные важны.
func (s *ShiftServiceImpl) Close() {
	for _, sess := range s.snapshotSessions() {
		sess.shiftSaver.Cancel()
		sess.rateSaver.Cancel()
	}
}
