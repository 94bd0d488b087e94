// Package records defines the persisted appointment and report records and
// the storage boundary they live behind.
package records

import "time"

// Appointment status values. The only transition is Pending -> Completed.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Appointment is a consultation booking submitted by a visitor and managed
// by staff.
type Appointment struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Number   string   `json:"number"`
	Date     string   `json:"date"` // ISO date as entered
	Services []string `json:"services"`
	Status   string   `json:"status"`
}

// Report is the persisted outcome of a metrics calculation. Immutable after
// creation; staff may only delete it.
type Report struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Height       float64   `json:"height"`
	Weight       float64   `json:"weight"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	PhoneNumber  string    `json:"phoneNumber"`
	IdealWeight  *float64  `json:"idealWeight,omitempty"`
	BMI          *float64  `json:"bmi,omitempty"`
	BMR          *float64  `json:"bmr,omitempty"`
	BodyFat      *float64  `json:"bodyFat,omitempty"`
	WeightStatus string    `json:"weightStatus,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
