package t2048

// Slides work in three steps over a flat row-major grid of ranks:
// decompose the grid into compacted lines along the move axis, merge each
// line from the edge the move points to, and lay the lines back packed
// against that edge.

// lines splits the grid into size compacted lines along axis, dropping empty cells.
// Horizontal line i is row i read left to right; vertical line i is column i
// read top to bottom.
func lines(cells []uint8, size int, axis Axis) [][]uint8 {
	out := make([][]uint8, size)
	for i, rank := range cells {
		if rank == 0 {
			continue
		}
		line := i / size
		if axis == AxisVertical {
			line = i % size
		}
		out[line] = append(out[line], rank)
	}
	return out
}

// mergeLine merges adjacent equal ranks once per pair, scanning from the
// leading edge. Reverse lines are scanned from their tail.
// The result keeps the input's orientation.
func mergeLine(line []uint8, reverse bool) []uint8 {
	if reverse {
		line = reversed(line)
	}

	merged := make([]uint8, 0, len(line))
	for i := 0; i < len(line); i++ {
		if i+1 < len(line) && line[i] == line[i+1] {
			merged = append(merged, line[i]+1)
			i++ // merged tiles never merge again this move
			continue
		}
		merged = append(merged, line[i])
	}

	if reverse {
		return reversed(merged)
	}
	return merged
}

// reversed returns a reversed copy of line.
func reversed(line []uint8) []uint8 {
	out := make([]uint8, len(line))
	for i, v := range line {
		out[len(line)-1-i] = v
	}
	return out
}

// cellIndex maps position pos of line into a flat grid index for dir.
// pos counts from the edge dir packs toward.
func cellIndex(size int, dir Direction, line, pos int) int {
	if dir.Reverse() {
		pos = size - 1 - pos
	}
	lineStride, posStride := size, 1
	if dir.Axis() == AxisVertical {
		lineStride, posStride = 1, size
	}
	return line*lineStride + pos*posStride
}

// rebuild lays merged lines back into a fresh grid packed toward dir's edge.
func rebuild(merged [][]uint8, size int, dir Direction) []uint8 {
	next := make([]uint8, size*size)
	for i, line := range merged {
		for j := range line {
			rank := line[j]
			if dir.Reverse() {
				rank = line[len(line)-1-j]
			}
			next[cellIndex(size, dir, i, j)] = rank
		}
	}
	return next
}

// SlideCells returns the grid that results from moving cells in dir.
// The input is not modified.
func SlideCells(cells []uint8, size int, dir Direction) []uint8 {
	split := lines(cells, size, dir.Axis())
	for i, line := range split {
		split[i] = mergeLine(line, dir.Reverse())
	}
	return rebuild(split, size, dir)
}
