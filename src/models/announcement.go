package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement ประกาศจากฝ่าย HR ให้พนักงานทุกคนเห็น
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required,max=1000"`
	CreatedBy string             `bson:"createdBy" json:"createdBy"` // HR email
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
