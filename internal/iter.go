package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqCount counts the elements of a sequence that satisfy keep.
func IterSeqCount[T any](seq iter.Seq[T], keep func(T) bool) (count int) {
	for val := range seq {
		if keep == nil || keep(val) {
			count++
		}
	}
	return
}
