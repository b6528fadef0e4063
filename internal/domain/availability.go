package domain

// AvailabilityIndex answers seat occupancy questions for a single performance.
// It is built from the committed tickets read in the current transaction and is
// never reused across requests.
type AvailabilityIndex struct {
	hall  TheaterHall
	taken map[Coordinate]struct{}
}

func NewAvailabilityIndex(hall TheaterHall, taken []Coordinate) *AvailabilityIndex {
	idx := &AvailabilityIndex{
		hall:  hall,
		taken: make(map[Coordinate]struct{}, len(taken)),
	}

	for _, c := range taken {
		idx.taken[c] = struct{}{}
	}

	return idx
}

func (idx *AvailabilityIndex) IsTaken(c Coordinate) bool {
	_, ok := idx.taken[c]
	return ok
}

func (idx *AvailabilityIndex) SoldCount() int {
	return len(idx.taken)
}

func (idx *AvailabilityIndex) AvailableCount() int {
	return idx.hall.Capacity() - idx.SoldCount()
}

// Conflicts returns the requested coordinates that are already sold, in request order.
func (idx *AvailabilityIndex) Conflicts(requested []Coordinate) []Coordinate {
	var conflicts []Coordinate

	for _, c := range requested {
		if idx.IsTaken(c) {
			conflicts = append(conflicts, c)
		}
	}

	return conflicts
}

// Availability is the read-side view of a performance's occupancy.
type Availability struct {
	PerformanceID int
	Capacity      int
	Sold          int
	Available     int
}

func NewAvailability(performanceID, capacity, sold int) Availability {
	return Availability{
		PerformanceID: performanceID,
		Capacity:      capacity,
		Sold:          sold,
		Available:     capacity - sold,
	}
}
