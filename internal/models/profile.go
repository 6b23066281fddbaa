package models

import (
	"fmt"
	"strings"
	"time"
)

// Gender is the fixed two-value set offered by the profile form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the accepted values in form order.
var Genders = []Gender{GenderMale, GenderFemale}

// ParseGender accepts the exact form values, case-insensitively.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders {
		if strings.EqualFold(string(g), strings.TrimSpace(s)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Profile is one submitted row of the users table.
type Profile struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane"`
	Age       int       `json:"age" example:"30"`
	Gender    Gender    `json:"gender" example:"Female"`
	HeightCM  float64   `json:"height_cm" example:"175"`
	WeightKG  float64   `json:"weight_kg" example:"70"`
	CreatedAt time.Time `json:"created_at"`
}

// TimestampLayout is how created_at is written to and read from SQLite.
const TimestampLayout = "2006-01-02 15:04:05"

// StampNow returns the current time at the precision the store keeps.
func StampNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
