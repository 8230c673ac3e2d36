// Package qsort provides quicksort and companion comparison sorts for
// slices of ordered elements.
//
// The package centers on three quicksort entry points with copy semantics:
// the input slice is never modified, and a freshly sorted copy is returned.
//
//   - Sorted: plain recursive quicksort (Lomuto partition, last-element pivot)
//   - SortedOptimized: quicksort with an insertion-sort cutoff for short
//     ranges, median-of-three pivot selection, and bounded recursion depth
//   - SortedWithStats: plain quicksort that also reports comparison, swap,
//     and recursion-depth counts
//
// # Algorithm
//
// All quicksort variants share the same Lomuto partition: the pivot value
// sits at the end of the range, a boundary index sweeps elements less than
// or equal to the pivot to the front, and the pivot is placed at its final
// position with one last swap. SortedOptimized additionally:
//
//   - Insertion sorts ranges shorter than 10 elements
//   - Swaps the median of the first, middle, and last elements into the
//     pivot position before partitioning
//   - Recurses only into the smaller partition and loops over the larger,
//     capping call-stack depth at O(log n) for any input order
//
// # Copy and In-Place APIs
//
// Sort is the in-place counterpart of SortedOptimized for callers that do
// not need the original ordering preserved. The companion algorithms
// (InsertionSort, HeapSort, MergeSort, RadixSort, NthElement) all operate
// in place, following the usual Go convention.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/qsort"
//
//	func Process(data []float64) []float64 {
//	    return qsort.Sorted(data) // data itself is untouched
//	}
//
//	func ProcessInPlace(data []int) {
//	    qsort.Sort(data)
//	}
//
// # Instrumentation
//
//	sorted, stats := qsort.SortedWithStats(data)
//	fmt.Println(stats.Comparisons, stats.Swaps, stats.RecursionDepth)
//
// Stats counts reflect work actually performed: a swap of an element with
// itself is never counted.
//
// # Element Ordering
//
// Elements must form a total order under <. Floating-point NaN violates
// that contract; slices containing NaN sort without panicking but the
// resulting element order is unspecified.
package qsort
