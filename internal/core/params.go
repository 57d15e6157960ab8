package core

// Stats summarises the observable state of a 4D simulation for display.
type Stats struct {
	Generation int
	Alive      int
	Edge       int
	SliceZ     int
	SliceW     int
}

// StatsProvider is implemented by simulations that can report Stats.
type StatsProvider interface {
	Stats() Stats
}

// SliceNavigator is implemented by simulations whose displayed cross-section
// can be moved along the hidden axes.
type SliceNavigator interface {
	MoveSlice(dz, dw int)
}
