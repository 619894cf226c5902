package life

import "golang.org/x/sync/errgroup"

// Grids at or above this cell count shard their step across workers.
const parallelMinCells = 1 << 16

// Step advances the grid by exactly one generation. The next generation is
// computed entirely from the current buffer and committed with a swap, so
// the update is synchronous: no cell observes another cell's new state.
//
// Neighbor counting is a separable 3×3 convolution with wrap padding:
// a horizontal pass builds per-row triple sums, then a vertical pass adds
// the three row sums above, at and below each cell and subtracts the cell
// itself. Both passes run row-at-a-time over contiguous slices.
func (l *Life) Step() {
	h := l.cur.H
	if l.workers > 1 && l.cur.W*h >= parallelMinCells {
		l.shard(l.horizontalSums)
		l.shard(l.applyRows)
	} else {
		l.horizontalSums(0, h)
		l.applyRows(0, h)
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// horizontalSums fills hsum for rows [y0, y1): hsum[x] is the wrapped sum
// of the cell and its left and right neighbors.
func (l *Life) horizontalSums(y0, y1 int) {
	w := l.cur.W
	for y := y0; y < y1; y++ {
		row := l.cur.Row(y)
		sum := l.hsum[y*w : y*w+w]
		if w == 1 {
			// Left and right both wrap onto the cell itself.
			sum[0] = 3 * row[0]
			continue
		}
		sum[0] = row[w-1] + row[0] + row[1]
		for x := 1; x < w-1; x++ {
			sum[x] = row[x-1] + row[x] + row[x+1]
		}
		sum[w-1] = row[w-2] + row[w-1] + row[0]
	}
}

// applyRows computes the next generation for rows [y0, y1) from the
// horizontal sums and writes it into the back buffer.
func (l *Life) applyRows(y0, y1 int) {
	w, h := l.cur.W, l.cur.H
	for y := y0; y < y1; y++ {
		up := l.hsum[((y+h-1)%h)*w:][:w]
		mid := l.hsum[y*w:][:w]
		down := l.hsum[((y+1)%h)*w:][:w]
		row := l.cur.Row(y)
		dst := l.nxt.Row(y)
		for x := 0; x < w; x++ {
			neighbors := up[x] + mid[x] + down[x] - row[x]
			dst[x] = l.rule.Next(row[x], neighbors)
		}
	}
}

// shard splits the grid's rows across the configured workers and runs fn
// on each range. Both step passes are independent per row, so the only
// synchronization needed is the barrier between them.
func (l *Life) shard(fn func(y0, y1 int)) {
	h := l.cur.H
	rowsPerWorker := (h + l.workers - 1) / l.workers
	var eg errgroup.Group
	for i := 0; i < l.workers; i++ {
		y0 := i * rowsPerWorker
		if y0 >= h {
			break
		}
		y1 := min(y0+rowsPerWorker, h)
		eg.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	// Workers never return errors; Wait is the barrier.
	_ = eg.Wait()
}
