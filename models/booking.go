package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of one treatment for one email on one date.
// At most one booking may exist per (email, appointment date, treatment).
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientName     string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Slot            string             `bson:"slot" json:"slot"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
}
