package approx

// SortByX sorts points in place by ascending x using a stable merge sort.
// y is not a tiebreaker: points sharing an x keep their relative order.
func SortByX(points []Point) {
	if len(points) < 2 {
		return
	}
	mergeSort(points, make([]Point, len(points)))
}

// SortedByX returns an x-sorted copy, leaving points untouched.
func SortedByX(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	SortByX(out)
	return out
}

func mergeSort(a, buf []Point) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf[:mid])
	mergeSort(a[mid:], buf[mid:])
	merge(a, buf, mid)
}

// merge combines the sorted halves a[:mid] and a[mid:]. Ties take the left
// element first, which is what keeps the sort stable.
func merge(a, buf []Point, mid int) {
	copy(buf, a)
	left, right := buf[:mid], buf[mid:len(a)]
	l, r, k := 0, 0, 0
	for l < len(left) && r < len(right) {
		if left[l].X <= right[r].X {
			a[k] = left[l]
			l++
		} else {
			a[k] = right[r]
			r++
		}
		k++
	}
	k += copy(a[k:], left[l:])
	copy(a[k:], right[r:])
}
