// Package scheduler tareas periódicas del terminal.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/bizdash/pkg/logger"
)

// Expirer limpia la sesión local si el token ya expiró.
type Expirer interface {
	ExpireIfExpired(ctx context.Context, now time.Time) (bool, error)
}

// ExpiryWatcher revisa la expiración del token según una expresión cron.
type ExpiryWatcher struct {
	cron    *cron.Cron
	session Expirer
	log     *logger.Logger
	now     func() time.Time
}

// NewExpiryWatcher registra el job; expr acepta sintaxis cron estándar o descriptores (@every 1m).
func NewExpiryWatcher(expr string, session Expirer, log *logger.Logger) (*ExpiryWatcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	w := &ExpiryWatcher{
		cron:    cron.New(),
		session: session,
		log:     log.Component("session-expiry"),
		now:     time.Now,
	}
	if _, err := w.cron.AddFunc(expr, w.Check); err != nil {
		return nil, fmt.Errorf("scheduler: expresión cron inválida %q: %w", expr, err)
	}
	return w, nil
}

// Check ejecuta una revisión.
func (w *ExpiryWatcher) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	expired, err := w.session.ExpireIfExpired(ctx, w.now())
	if err != nil {
		w.log.Warn().Err(err).Msg("no se pudo limpiar la sesión expirada")
		return
	}
	if expired {
		w.log.Info().Msg("token expirado: sesión local cerrada")
	}
}

func (w *ExpiryWatcher) Start() { w.cron.Start() }

// Stop detiene el cron y espera a que termine el job en curso.
func (w *ExpiryWatcher) Stop() { <-w.cron.Stop().Done() }
