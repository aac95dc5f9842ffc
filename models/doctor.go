package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	ImageURL  string             `bson:"image,omitempty" json:"image,omitempty"`
}
