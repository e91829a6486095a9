package reconciler

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/sirupsen/logrus"
)

const lockKeyPrefix = "lease-engine:job:"

// Runner запускает плановую джобу под распределенной блокировкой, чтобы
// при нескольких инстансах сервиса джоба выполнялась в одном. Без Redis
// (rs == nil) джобы выполняются без блокировки.
type Runner struct {
	rs *redsync.Redsync
	l  *logrus.Entry
}

func NewRunner(rs *redsync.Redsync, l *logrus.Logger) *Runner {
	return &Runner{
		rs: rs,
		l:  l.WithField("component", "job_runner"),
	}
}

// Wrap оборачивает джобу в функцию для планировщика: таймаут, блокировка,
// логирование ошибок. Занятая блокировка означает, что джобу уже выполняет
// другой инстанс, это не ошибка.
func (r *Runner) Wrap(name string, timeout time.Duration, job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		l := r.l.WithField("job", name)

		if r.rs != nil {
			mutex := r.rs.NewMutex(lockKeyPrefix+name, redsync.WithExpiry(timeout))
			if lockErr := mutex.LockContext(ctx); lockErr != nil {
				l.WithError(lockErr).Debug("job lock is held elsewhere, skipping")
				return
			}
			defer func() {
				if _, unlockErr := mutex.UnlockContext(ctx); unlockErr != nil {
					l.WithError(unlockErr).Warn("job lock release failed")
				}
			}()
		}

		started := time.Now()
		if jobErr := job(ctx); jobErr != nil {
			l.WithError(jobErr).Error("job failed")
			return
		}
		l.WithField("elapsed", time.Since(started).String()).Debug("job finished")
	}
}
