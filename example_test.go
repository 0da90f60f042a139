package arraydeque_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lucasgdosr/arraydeque"
)

func Example() {
	var d arraydeque.Deque8[int]
	fmt.Println(d.Cap(), d.Len())

	_ = d.PushBack(1)
	_ = d.PushBack(2)
	fmt.Println(d.Len())

	fmt.Println(d.PopFront())
	fmt.Println(d.PopFront())
	fmt.Println(d.PopFront())
	// Output:
	// 7 0
	// 2
	// 1 true
	// 2 true
	// 0 false
}

func ExampleDeque_Insert() {
	var d arraydeque.Deque8[int]
	_ = d.PushBack(11)
	_ = d.PushBack(13)
	_ = d.Insert(1, 12)
	fmt.Println(d.MakeSliceCopy())

	d.Remove(0)
	fmt.Println(d.MakeSliceCopy())
	// Output:
	// [11 12 13]
	// [12 13]
}

func ExampleAppend() {
	var d1, d2 arraydeque.Deque8[int]
	d1.Extend(slices.Values([]int{0, 1, 2, 3, 4}))
	d2.Extend(slices.Values([]int{5, 6}))

	if err := arraydeque.Append(&d1, &d2); err != nil {
		fmt.Println(err)
	}
	fmt.Println(d1.MakeSliceCopy(), d2.MakeSliceCopy())
	// Output:
	// [0 1 2 3 4 5 6] []
}

func ExampleDeque_Extend() {
	var d arraydeque.Deque4[int]
	n := d.Extend(slices.Values([]int{1, 2, 3, 4, 5}))
	fmt.Println(n, d.MakeSliceCopy())
	// Output:
	// 3 [1 2 3]
}

func ExampleFromSlice() {
	d, err := arraydeque.FromSlice[string, arraydeque.Array4[string]]([]string{"a", "b", "c", "d"})

	var capErr *arraydeque.CapacityError[string]
	if errors.As(err, &capErr) {
		fmt.Println("rejected", capErr.Element)
	}
	fmt.Println(slices.Collect(d.Iter()))
	// Output:
	// rejected d
	// [a b c]
}
