package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lucasgdosr/arraydeque"
	"github.com/lucasgdosr/arraydeque/metrics"
)

// deque is the part of metrics.Deque a script can drive, whatever the
// backing array.
type deque interface {
	PushBack(int) error
	PushFront(int) error
	PopBack() (int, bool)
	PopFront() (int, bool)
	Insert(int, int) error
	Remove(int) (int, bool)
	SwapRemoveBack(int) (int, bool)
	SwapRemoveFront(int) (int, bool)
	At(int) (int, bool)
	Extend(iter.Seq[int]) int
	Clear()
	MakeSliceCopy() []int
	Len() int
	Cap() int
	Stats() *metrics.Statistics
}

var backings = map[int]func(...metrics.Option) (deque, error){
	2:    build[arraydeque.Array2[int]],
	4:    build[arraydeque.Array4[int]],
	8:    build[arraydeque.Array8[int]],
	16:   build[arraydeque.Array16[int]],
	32:   build[arraydeque.Array32[int]],
	64:   build[arraydeque.Array64[int]],
	128:  build[arraydeque.Array128[int]],
	256:  build[arraydeque.Array256[int]],
	512:  build[arraydeque.Array512[int]],
	1024: build[arraydeque.Array1024[int]],
}

func build[A any, PA arraydeque.Storage[int, A]](opts ...metrics.Option) (deque, error) {
	d, err := metrics.New[int, A, PA](opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// arity is the number of arguments of each operation; -1 means any.
var arity = map[string]int{
	"push_back":         1,
	"push_front":        1,
	"pop_back":          0,
	"pop_front":         0,
	"insert":            2,
	"remove":            1,
	"swap_remove_back":  1,
	"swap_remove_front": 1,
	"get":               1,
	"extend":            -1,
	"clear":             0,
	"print":             0,
}

type op struct {
	line int
	name string
	args []int
}

// parseScript reads one operation per line. Blank lines and anything after
// a # are ignored.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		name, rest := fields[0], fields[1:]
		want, ok := arity[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", line, name)
		}
		if want >= 0 && len(rest) != want {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d", line, name, want, len(rest))
		}

		args := make([]int, 0, len(rest))
		for _, f := range rest {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			args = append(args, v)
		}
		ops = append(ops, op{line: line, name: name, args: args})
	}
	return ops, sc.Err()
}

func execute(in io.Reader, out io.Writer, opts runOptions, log *zap.Logger) error {
	newDeque, ok := backings[opts.size]
	if !ok {
		return fmt.Errorf("unsupported size %d, see dequectl sizes", opts.size)
	}
	ops, err := parseScript(in)
	if err != nil {
		return err
	}
	d, err := newDeque(metrics.WithLogger(log))
	if err != nil {
		return err
	}

	for _, o := range ops {
		o.apply(d, out, log)
	}
	fmt.Fprintf(out, "%v len=%d cap=%d\n", d.MakeSliceCopy(), d.Len(), d.Cap())

	if opts.stats {
		return json.NewEncoder(out).Encode(d.Stats().Summary())
	}
	return nil
}

func (o op) apply(d deque, w io.Writer, log *zap.Logger) {
	log.Debug("apply", zap.Int("line", o.line), zap.String("op", o.name), zap.Ints("args", o.args))

	switch o.name {
	case "push_back":
		o.report(d.PushBack(o.args[0]), w, log)
	case "push_front":
		o.report(d.PushFront(o.args[0]), w, log)
	case "insert":
		o.report(d.Insert(o.args[0], o.args[1]), w, log)
	case "pop_back":
		o.show(w)(d.PopBack())
	case "pop_front":
		o.show(w)(d.PopFront())
	case "remove":
		o.show(w)(d.Remove(o.args[0]))
	case "swap_remove_back":
		o.show(w)(d.SwapRemoveBack(o.args[0]))
	case "swap_remove_front":
		o.show(w)(d.SwapRemoveFront(o.args[0]))
	case "get":
		o.show(w)(d.At(o.args[0]))
	case "extend":
		n := d.Extend(slices.Values(o.args))
		fmt.Fprintf(w, "%s: extended %d of %d\n", o.name, n, len(o.args))
	case "clear":
		d.Clear()
	case "print":
		fmt.Fprintln(w, d.MakeSliceCopy())
	}
}

// report prints a failed operation without stopping the script.
func (o op) report(err error, w io.Writer, log *zap.Logger) {
	if err == nil {
		return
	}
	log.Warn("operation failed", zap.Int("line", o.line), zap.String("op", o.name), zap.Error(err))
	fmt.Fprintf(w, "line %d: %s: %v\n", o.line, o.name, err)
}

func (o op) show(w io.Writer) func(int, bool) {
	return func(v int, ok bool) {
		if !ok {
			fmt.Fprintf(w, "%s: none\n", o.name)
			return
		}
		fmt.Fprintf(w, "%s: %d\n", o.name, v)
	}
}
