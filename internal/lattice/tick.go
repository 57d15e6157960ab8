package lattice

var neighborOffsets = buildNeighborOffsets()

func buildNeighborOffsets() []Coord {
	offsets := make([]Coord, 0, NeighborCount)
	for dw := -1; dw <= 1; dw++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 && dw == 0 {
						continue
					}
					offsets = append(offsets, Coord{X: dx, Y: dy, Z: dz, W: dw})
				}
			}
		}
	}
	return offsets
}

// NextState applies B3/S23: a live cell survives with 2 or 3 live
// neighbours, a dead cell is born with exactly 3.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// CountLiveNeighbors returns the number of live cells among the 80 neighbours
// of c. Neighbours outside the lattice count as dead.
func (l *Lattice) CountLiveNeighbors(c Coord) int {
	n := 0
	for _, off := range neighborOffsets {
		if alive, ok := l.Get(c.Add(off)); ok && alive {
			n++
		}
	}
	return n
}

// Tick advances every cell by one generation. Neighbour counts are taken from
// the current buffer only; results go to the second buffer, which then
// becomes current.
func (l *Lattice) Tick() {
	l.each(func(i int, c Coord) {
		l.nxt[i] = NextState(l.cur[i], l.CountLiveNeighbors(c))
	})
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
