package models

// Doctor is a practitioner record managed by admins.
type Doctor struct {
	ID        string `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Specialty string `bson:"specialty" json:"specialty"`
	ImageURL  string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}
