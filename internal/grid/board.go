package grid

import "math"

// BoardDimensions picks a rows x columns split for n cards: a square when n
// is a perfect square, otherwise the two middle divisors of n taken from
// 2..n/2 with the larger one as rows. Numbers without such divisors get a
// single column.
func BoardDimensions(n int) (rows, columns int) {
	if n <= 0 {
		return 0, 0
	}

	root := int(math.Round(math.Sqrt(float64(n))))
	if root*root == n {
		return root, root
	}

	var divisors []int
	for number := 2; number <= n/2; number++ {
		if n%number == 0 {
			divisors = append(divisors, number)
		}
	}

	if len(divisors) < 2 {
		return n, 1
	}

	middle := (len(divisors) - 1) / 2

	return divisors[middle+1], divisors[middle]
}

// BoardLayout is the Dimensions layout for a board of n cards. An empty
// board gets a layout without cells.
func BoardLayout(n int) Layout {
	if n <= 0 {
		return AspectRatio{Ratio: 1}
	}

	rows, columns := BoardDimensions(n)
	return Dimensions{Rows: rows, Columns: columns}
}
