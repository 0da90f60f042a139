// Package metrics instruments an arraydeque.Deque with always-on statistics,
// optional Prometheus metrics, and debug logging of rejected elements.
//
// Statistics are collected for every instrumented Deque. Prometheus export
// is enabled with WithRegisterer:
//
//	d, err := metrics.New[Job, arraydeque.Array64[Job]](
//		metrics.WithRegisterer(prometheus.DefaultRegisterer, "jobs"),
//		metrics.WithLogger(logger),
//	)
//
// Like the Deque it wraps, an instrumented Deque has a single owner and is
// not safe for concurrent use. Only its Statistics may be read concurrently.
package metrics

import (
	"errors"
	"iter"

	"go.uber.org/zap"

	"github.com/lucasgdosr/arraydeque"
)

// Deque wraps an arraydeque.Deque and records every mutation.
type Deque[T, A any, PA arraydeque.Storage[T, A]] struct {
	d       arraydeque.Deque[T, A, PA]
	stats   *Statistics
	metrics *dequeMetrics // nil unless WithRegisterer was given
	log     *zap.Logger
}

// New creates an empty instrumented Deque. It returns an error if the
// Prometheus collectors cannot be registered.
func New[T, A any, PA arraydeque.Storage[T, A]](opts ...Option) (*Deque[T, A, PA], error) {
	o := applyOptions(opts...)

	var m *dequeMetrics
	if o.registerer != nil {
		var err error
		if m, err = newDequeMetrics(o.registerer, o.component); err != nil {
			return nil, err
		}
	}

	log := o.logger
	if o.component != "" {
		log = log.With(zap.String("component", o.component))
	}
	d := &Deque[T, A, PA]{stats: NewStatistics(), metrics: m, log: log}
	d.observeSize()
	return d, nil
}

// Unwrap returns the underlying Deque. Mutations made through it are not
// recorded.
func (d *Deque[T, A, PA]) Unwrap() *arraydeque.Deque[T, A, PA] { return &d.d }

// Stats returns the statistics of the Deque.
func (d *Deque[T, A, PA]) Stats() *Statistics { return d.stats }

// Len returns the number of elements in the Deque.
func (d *Deque[T, A, PA]) Len() int { return d.d.Len() }

// Cap returns the capacity of the Deque.
func (d *Deque[T, A, PA]) Cap() int { return d.d.Cap() }

// PushBack is arraydeque.Deque.PushBack.
func (d *Deque[T, A, PA]) PushBack(t T) error {
	return d.pushed("push_back", d.d.PushBack(t))
}

// PushFront is arraydeque.Deque.PushFront.
func (d *Deque[T, A, PA]) PushFront(t T) error {
	return d.pushed("push_front", d.d.PushFront(t))
}

// Insert is arraydeque.Deque.Insert.
func (d *Deque[T, A, PA]) Insert(i int, t T) error {
	return d.pushed("insert", d.d.Insert(i, t))
}

// PopBack is arraydeque.Deque.PopBack.
func (d *Deque[T, A, PA]) PopBack() (T, bool) {
	return d.popped(d.d.PopBack())
}

// PopFront is arraydeque.Deque.PopFront.
func (d *Deque[T, A, PA]) PopFront() (T, bool) {
	return d.popped(d.d.PopFront())
}

// Remove is arraydeque.Deque.Remove.
func (d *Deque[T, A, PA]) Remove(i int) (T, bool) {
	return d.popped(d.d.Remove(i))
}

// SwapRemoveBack is arraydeque.Deque.SwapRemoveBack.
func (d *Deque[T, A, PA]) SwapRemoveBack(i int) (T, bool) {
	return d.popped(d.d.SwapRemoveBack(i))
}

// SwapRemoveFront is arraydeque.Deque.SwapRemoveFront.
func (d *Deque[T, A, PA]) SwapRemoveFront(i int) (T, bool) {
	return d.popped(d.d.SwapRemoveFront(i))
}

// At is arraydeque.Deque.At.
func (d *Deque[T, A, PA]) At(i int) (T, bool) { return d.d.At(i) }

// MakeSliceCopy is arraydeque.Deque.MakeSliceCopy.
func (d *Deque[T, A, PA]) MakeSliceCopy() []T { return d.d.MakeSliceCopy() }

// Clear removes every element, counting each as a pop.
func (d *Deque[T, A, PA]) Clear() {
	for range d.d.Drain() {
		d.stats.pop()
		if d.metrics != nil {
			d.metrics.pops.Inc()
		}
	}
	d.observeSize()
}

// Extend is arraydeque.Deque.Extend. A call that leaves input behind
// counts as a saturation. To tell, Extend pulls one element of seq past the
// one that filled the Deque; that element is dropped like the rest.
func (d *Deque[T, A, PA]) Extend(seq iter.Seq[T]) int {
	var dropped bool
	n := d.d.Extend(func(yield func(T) bool) {
		accepting := true
		for t := range seq {
			if !accepting {
				dropped = true
				return
			}
			accepting = yield(t)
		}
	})
	if n == 0 && d.d.Full() {
		for range seq {
			dropped = true
			break
		}
	}

	d.stats.push(n)
	if d.metrics != nil {
		d.metrics.pushes.Add(float64(n))
	}
	if dropped {
		d.stats.saturate()
		if d.metrics != nil {
			d.metrics.saturations.Inc()
		}
		d.log.Debug("extend filled deque, remaining input dropped",
			zap.Int("accepted", n), zap.Int("capacity", d.d.Cap()))
	}
	d.observeSize()
	return n
}

func (d *Deque[T, A, PA]) pushed(op string, err error) error {
	switch {
	case err == nil:
		d.stats.push(1)
		if d.metrics != nil {
			d.metrics.pushes.Inc()
		}
		d.observeSize()
	case errors.Is(err, arraydeque.ErrCapacity):
		d.stats.reject()
		if d.metrics != nil {
			d.metrics.rejects.Inc()
		}
		d.log.Debug("element rejected", zap.String("op", op),
			zap.Int("len", d.d.Len()), zap.Error(err))
	}
	return err
}

func (d *Deque[T, A, PA]) popped(t T, ok bool) (T, bool) {
	if ok {
		d.stats.pop()
		if d.metrics != nil {
			d.metrics.pops.Inc()
		}
		d.observeSize()
	}
	return t, ok
}

func (d *Deque[T, A, PA]) observeSize() {
	n := d.d.Len()
	d.stats.updateSize(n)
	if d.metrics != nil {
		d.metrics.updateSize(n, d.d.Cap())
	}
}
