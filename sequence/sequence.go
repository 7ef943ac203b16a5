// Package sequence implements an ordered, growable container of integers
// and a line-oriented printer for it.
package sequence

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Sequence is an ordered, resizable container of signed integers.
// Insertion order is preserved. The zero value is an empty sequence
// ready for use.
type Sequence struct {
	elems []int
}

// Append adds v after the last element.
func (s *Sequence) Append(v int) {
	s.elems = append(s.elems, v)
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	return len(s.elems)
}

// At returns the element at position i. Like slice indexing, it panics
// when i is out of range.
func (s *Sequence) At(i int) int {
	return s.elems[i]
}

// All returns an iterator over the elements, first to last.
func (s *Sequence) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// Ascending builds a sequence holding 0 through n-1 in increasing order.
// n <= 0 yields an empty sequence.
func Ascending(n int) *Sequence {
	var s Sequence
	for i := 0; i < n; i++ {
		s.Append(i)
	}
	return &s
}

// Fprint writes every element to w in insertion order, one decimal
// number per line. Writes are buffered and flushed before returning.
func (s *Sequence) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for v := range s.All() {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
