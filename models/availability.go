package models

// AvailabilityView is the per-date projection of a treatment option: the
// option's slot catalog narrowed to slots not consumed by any booking on the
// requested date. It is derived, never persisted.
type AvailabilityView struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"`
}
