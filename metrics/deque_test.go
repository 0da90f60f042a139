package metrics

import (
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lucasgdosr/arraydeque"
)

func TestStatisticsAlwaysCollected(t *testing.T) {
	d, err := New[int, arraydeque.Array4[int]]()
	require.NoError(t, err)

	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushFront(0))
	require.NoError(t, d.Insert(2, 2))
	require.ErrorIs(t, d.PushBack(3), arraydeque.ErrCapacity)

	stats := d.Stats()
	assert.Equal(t, int64(3), stats.Pushes())
	assert.Equal(t, int64(1), stats.Rejects())
	assert.Equal(t, int64(3), stats.CurrentSize())
	assert.InDelta(t, 0.25, stats.RejectRate(), 1e-9)

	v, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = d.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = d.PopBack()
	require.True(t, ok)
	_, ok = d.PopBack()
	require.False(t, ok)

	summary := stats.Summary()
	assert.Equal(t, int64(3), summary.Pops)
	assert.Equal(t, int64(0), summary.CurrentSize)
	assert.Equal(t, int64(3), summary.MaxSize)
	assert.Equal(t, []int{}, d.Unwrap().MakeSliceCopy())
}

func TestPassThrough(t *testing.T) {
	d, err := New[int, arraydeque.Array8[int]]()
	require.NoError(t, err)
	d.Extend(slices.Values([]int{0, 1, 2, 3, 4}))

	v, ok := d.SwapRemoveBack(0)
	require.True(t, ok)
	assert.Equal(t, 0, v)
	v, ok = d.SwapRemoveFront(2)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = d.At(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{1, 4, 3}, d.MakeSliceCopy())

	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, int64(5), d.Stats().Pops())
	assert.Equal(t, int64(0), d.Stats().CurrentSize())
}

func TestIndexErrorIsNotAReject(t *testing.T) {
	d, err := New[int, arraydeque.Array4[int]]()
	require.NoError(t, err)

	require.ErrorIs(t, d.Insert(5, 1), arraydeque.ErrIndexOutOfRange)
	assert.Equal(t, int64(0), d.Stats().Rejects())
	assert.Equal(t, int64(0), d.Stats().Pushes())
}

func TestExtendSaturation(t *testing.T) {
	d, err := New[int, arraydeque.Array8[int]]()
	require.NoError(t, err)

	assert.Equal(t, 3, d.Extend(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, int64(0), d.Stats().Saturations())

	assert.Equal(t, 4, d.Extend(slices.Values([]int{4, 5, 6, 7, 8, 9})))
	assert.Equal(t, int64(1), d.Stats().Saturations())
	assert.Equal(t, int64(7), d.Stats().Pushes())
	assert.Equal(t, 7, d.Len())
	assert.Equal(t, d.Cap(), d.Len())
}

func TestExtendExactFillIsNotSaturation(t *testing.T) {
	d, err := New[int, arraydeque.Array4[int]]()
	require.NoError(t, err)

	assert.Equal(t, 3, d.Extend(slices.Values([]int{1, 2, 3})))
	assert.True(t, d.Unwrap().Full())
	assert.Equal(t, int64(0), d.Stats().Saturations())

	assert.Equal(t, 0, d.Extend(slices.Values([]int{})))
	assert.Equal(t, int64(0), d.Stats().Saturations())

	assert.Equal(t, 0, d.Extend(slices.Values([]int{4})))
	assert.Equal(t, int64(1), d.Stats().Saturations())
	assert.Equal(t, int64(3), d.Stats().Pushes())
	assert.Equal(t, []int{1, 2, 3}, d.MakeSliceCopy())
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := New[string, arraydeque.Array4[string]](WithRegisterer(reg, "jobs"))
	require.NoError(t, err)

	require.NoError(t, d.PushBack("a"))
	require.NoError(t, d.PushBack("b"))
	_, ok := d.PopFront()
	require.True(t, ok)
	d.Extend(slices.Values([]string{"c", "d", "e"}))
	require.Error(t, d.PushFront("f"))

	assert.Equal(t, 4.0, testutil.ToFloat64(d.metrics.pushes))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.pops))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.rejects))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.saturations))
	assert.Equal(t, 3.0, testutil.ToFloat64(d.metrics.size))
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.utilization))

	n, err := testutil.GatherAndCount(reg, "arraydeque_pushes_total", "arraydeque_size")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New[int, arraydeque.Array4[int]](WithRegisterer(reg, "dup"))
	require.NoError(t, err)

	_, err = New[int, arraydeque.Array4[int]](WithRegisterer(reg, "dup"))
	require.Error(t, err)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)

	_, err = New[int, arraydeque.Array4[int]](WithRegisterer(reg, "other"))
	require.NoError(t, err)
}

func TestNilOptionsIgnored(t *testing.T) {
	d, err := New[int, arraydeque.Array4[int]](nil, WithRegisterer(nil, "x"), WithLogger(nil))
	require.NoError(t, err)
	assert.Nil(t, d.metrics)
	require.NoError(t, d.PushBack(1))
}

func TestRejectsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d, err := New[int, arraydeque.Array2[int]](
		WithLogger(zap.New(core)),
		WithRegisterer(prometheus.NewRegistry(), "tiny"),
	)
	require.NoError(t, err)

	require.NoError(t, d.PushBack(1))
	require.Error(t, d.PushBack(2))

	entries := logs.FilterMessage("element rejected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "push_back", fields["op"])
	assert.Equal(t, "tiny", fields["component"])
	assert.Equal(t, int64(1), fields["len"])
}
