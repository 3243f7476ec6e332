package models

// ExpoToken maps a phone number to the device's Expo push token. One token
// per phone number; re-registration overwrites.
type ExpoToken struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	PhoneNumber   string `json:"phoneNumber" bson:"phoneNumber"`
	ExpoPushToken string `json:"expoPushToken" bson:"expoPushToken"`
	TimeModel     `bson:",inline"`
}
