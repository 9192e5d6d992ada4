// Package debounce откладывает запись до паузы в изменениях.
package debounce

import (
	"sync"
	"time"
)

// Debouncer выполняет последнюю запланированную функцию после того,
// как в течение delay не было новых вызовов Schedule.
// Ошибку, возвращённую функцией по таймеру, обрабатывает сама функция;
// Flush возвращает её вызывающему.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func() error
	gen     uint64
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule отменяет ранее запланированный вызов и ставит fn заново.
func (d *Debouncer) Schedule(fn func() error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	_ = fn()
}

// Flush выполняет отложенный вызов сразу, если он есть.
func (d *Debouncer) Flush() error {
	d.mu.Lock()
	fn := d.take()
	d.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn()
}

// Cancel отбрасывает отложенный вызов без выполнения.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.take()
	d.mu.Unlock()
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// take снимает отложенный вызов; вызывается под d.mu.
func (d *Debouncer) take() func() error {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.pending
	d.pending = nil
	return fn
}
