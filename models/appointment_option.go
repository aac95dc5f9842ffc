package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a treatment template: a fixed price and the full slot
// set offered every day, independent of date.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// Specialty is the projection of an option down to its name.
type Specialty struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
