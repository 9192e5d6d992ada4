package workerpool

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("worker pool closed")

// Task описывает универсальную задачу для пула
// fn должен быть безопасен для конкурентного выполнения
// resultCh — канал для возврата результата (если нужен), лучше буферизованный
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
}

// NewWorkerPool создаёт пул с N воркерами
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := task.Fn()
			if task.ResultC != nil {
				select {
				case task.ResultC <- Result{Value: res, Err: err}:
				default:
					// никто не ждёт результат (вызывающий ушёл по таймауту)
				}
			}
		}
	}
}

// Submit отправляет задачу в пул. Блокируется, пока очередь полна,
// но не дольше жизни ctx и самого пула.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	if wp.ctx.Err() != nil {
		return ErrClosed
	}
	select {
	case <-wp.ctx.Done():
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close завершает работу пула. Задачи из очереди не выполняются.
func (wp *WorkerPool) Close() {
	wp.cancel()
}
