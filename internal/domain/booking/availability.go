package booking

import "github.com/google/uuid"

// Occupancy is the slice of an existing booking the availability check needs.
type Occupancy struct {
	BookingID uuid.UUID
	Stay      Stay
	Status    Status
}

// Conflicts returns the occupancies that hold the room during requested.
func Conflicts(existing []Occupancy, requested Stay) []Occupancy {
	var out []Occupancy
	for _, o := range existing {
		if !o.Status.HoldsRoom() {
			continue
		}
		if o.Stay.Overlaps(requested) {
			out = append(out, o)
		}
	}
	return out
}

func IsAvailable(existing []Occupancy, requested Stay) bool {
	return len(Conflicts(existing, requested)) == 0
}
