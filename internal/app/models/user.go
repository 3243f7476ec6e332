package models

import "time"

// User is keyed by phone number; the collection carries a unique index on
// phoneNumber and a TTL index on createdAt for retention.
type User struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	Username    string    `json:"username" bson:"username"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
