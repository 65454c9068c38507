package gridmodel

// QuadrantAt maps a lattice position, in node units, to one of the
// QuadrantCount density regions: four column bands by two row bands,
// numbered row-major.
func QuadrantAt(row, col float64) int {
	qc := int(col * QuadCols / (Cols - 1))
	qr := int(row * QuadRows / (Rows - 1))
	qc = min(max(qc, 0), QuadCols-1)
	qr = min(max(qr, 0), QuadRows-1)
	return qr*QuadCols + qc
}

// Quadrant returns the region holding n.
func (n Node) Quadrant() int { return QuadrantAt(float64(n.Row), float64(n.Col)) }

// Quadrant returns the region holding the midpoint of s.
func (s Slot) Quadrant() int {
	if s.Kind == Horizontal {
		return QuadrantAt(float64(s.Row), float64(s.Col)+0.5)
	}
	return QuadrantAt(float64(s.Row)+0.5, float64(s.Col))
}

// Quadrant returns the region holding the centre of d's cell.
func (d Diagonal) Quadrant() int {
	return QuadrantAt(float64(d.Cell.Row)+0.5, float64(d.Cell.Col)+0.5)
}

// Mean returns the average of q.
func Mean(q [QuadrantCount]int) float64 {
	sum := 0
	for _, v := range q {
		sum += v
	}
	return float64(sum) / QuadrantCount
}
