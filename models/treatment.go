package models

// TreatmentOption is a bookable service category. Slots is the full catalog
// of schedulable time labels for the treatment; it is date-independent and
// never mutated — per-date availability is derived at query time.
type TreatmentOption struct {
	ID    string   `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string   `bson:"name" json:"name"`
	Price float64  `bson:"price" json:"price"`
	Slots []string `bson:"slots" json:"slots"`
}

// SpecialtyName is the name-only projection of a treatment option.
type SpecialtyName struct {
	Name string `bson:"name" json:"name"`
}
