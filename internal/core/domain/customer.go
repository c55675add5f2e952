package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

var Genders = []Gender{GenderMale, GenderFemale}

// Customer is immutable once generated. FirstPurchase never follows
// LastPurchase and LifetimeValue is always positive.
type Customer struct {
	ID            string
	Age           int
	Gender        Gender
	Location      string
	FirstPurchase time.Time
	LastPurchase  time.Time
	LifetimeValue float64
}
