package screen_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/screen"
)

func TestLoad_PublicaResultado(t *testing.T) {
	var v screen.View[string, int]
	got, err := v.Load(context.Background(), "this_month", func(_ context.Context, p string) (int, error) {
		return len(p), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	cur := v.Current()
	assert.Equal(t, "this_month", cur.Params)
	assert.Equal(t, 10, cur.Data)
	assert.Equal(t, uint64(1), cur.Ticket)
}

func TestLoad_RespuestaTardiaNoPisaLaNueva(t *testing.T) {
	var v screen.View[string, string]
	release := make(chan struct{})
	started := make(chan struct{})

	slowDone := make(chan error, 1)
	go func() {
		_, err := v.Load(context.Background(), "last_year", func(ctx context.Context, p string) (string, error) {
			close(started)
			<-release
			return "stale:" + p, nil
		})
		slowDone <- err
	}()
	<-started

	got, err := v.Load(context.Background(), "today", func(_ context.Context, p string) (string, error) {
		return "fresh:" + p, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh:today", got)

	close(release)
	assert.ErrorIs(t, <-slowDone, screen.ErrSuperseded)

	cur := v.Current()
	assert.Equal(t, "today", cur.Params)
	assert.Equal(t, "fresh:today", cur.Data)
}

func TestLoad_CancelaLaCargaAnterior(t *testing.T) {
	var v screen.View[int, int]
	started := make(chan struct{})
	cancelled := make(chan error, 1)

	go func() {
		_, _ = v.Load(context.Background(), 1, func(ctx context.Context, _ int) (int, error) {
			close(started)
			select {
			case <-ctx.Done():
				cancelled <- ctx.Err()
			case <-time.After(5 * time.Second):
				cancelled <- nil
			}
			return 0, ctx.Err()
		})
	}()
	<-started

	_, err := v.Load(context.Background(), 2, func(context.Context, int) (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.ErrorIs(t, <-cancelled, context.Canceled)
}

func TestLoad_ErrorSePublica(t *testing.T) {
	var v screen.View[string, []int]
	boom := errors.New("backend caído")
	_, err := v.Load(context.Background(), "x", func(context.Context, string) ([]int, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, v.Current().Err, boom)
}
