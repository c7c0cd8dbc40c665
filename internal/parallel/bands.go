package parallel

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits the rows [y0, y1) into at most n bands of nearly equal
// height. Earlier bands take the remainder rows.
func Bands(y0, y1, n int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	n = min(max(n, 1), rows)

	out := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	y := y0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		out = append(out, Band{Y0: y, Y1: y + h})
		y += h
	}
	return out
}

// ForRows calls fn once per band of [y0, y1). A nil pool runs a single
// band on the calling goroutine. fn must only touch the rows it is given.
func ForRows(p *WorkerPool, y0, y1 int, fn func(y0, y1 int)) {
	if y1 <= y0 {
		return
	}
	if p == nil || !p.IsRunning() {
		fn(y0, y1)
		return
	}

	bands := Bands(y0, y1, p.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
