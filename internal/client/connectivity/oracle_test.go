package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProber — управляемая из теста health-проба
type fakeProber struct {
	err   error
	calls int
}

func (p *fakeProber) Health(ctx context.Context) error {
	p.calls++
	return p.err
}

func TestOracle_StartsOnline(t *testing.T) {
	o := New(&fakeProber{}, testLogger())
	assert.True(t, o.IsOnline())
}

func TestOracle_SetOnline(t *testing.T) {
	o := New(&fakeProber{}, testLogger())

	o.SetOnline(false)
	assert.False(t, o.IsOnline())

	o.SetOnline(true)
	assert.True(t, o.IsOnline())
}

func TestOracle_OnOnlineFiresOnTransition(t *testing.T) {
	o := New(&fakeProber{}, testLogger())

	fired := 0
	o.OnOnline(func() { fired++ })

	// online → online не является переходом
	o.SetOnline(true)
	assert.Zero(t, fired)

	o.SetOnline(false)
	o.SetOnline(true)
	assert.Equal(t, 1, fired)

	// Повторное восстановление снова дергает подписчика
	o.SetOnline(false)
	o.SetOnline(true)
	assert.Equal(t, 2, fired)
}

func TestOracle_OnOnlineUnsubscribe(t *testing.T) {
	o := New(&fakeProber{}, testLogger())

	fired := 0
	unsubscribe := o.OnOnline(func() { fired++ })
	unsubscribe()

	o.SetOnline(false)
	o.SetOnline(true)
	assert.Zero(t, fired)
}

func TestOracle_CheckNow(t *testing.T) {
	prober := &fakeProber{err: errors.New("unreachable")}
	o := New(prober, testLogger())

	// Проба провалилась: оракул переходит в offline
	assert.False(t, o.CheckNow(context.Background()))
	assert.False(t, o.IsOnline())

	fired := 0
	o.OnOnline(func() { fired++ })

	// Backend снова отвечает: проба возвращает online и дергает подписчиков
	prober.err = nil
	assert.True(t, o.CheckNow(context.Background()))
	assert.True(t, o.IsOnline())
	assert.Equal(t, 1, fired)
	assert.Equal(t, 2, prober.calls)
}
