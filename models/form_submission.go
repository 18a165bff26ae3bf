package models

import (
	"gorm.io/gorm"
)

// FormSubmission is one completed quiz intake. Anonymous visitors can submit,
// so UserID is optional. Field domains are enforced at the HTTP layer; rows in
// this table are always in-domain.
type FormSubmission struct {
	gorm.Model
	UserID     *uint   `gorm:"index" json:"userId,omitempty"`
	Gender     string  `gorm:"not null" json:"gender"` // "male" or "female"
	FatScale   float64 `gorm:"not null" json:"fatScale"`
	BMI        float64 `gorm:"not null" json:"bmi"`
	Calorie    float64 `gorm:"not null" json:"calorie"`
	Water      float64 `gorm:"not null" json:"water"`
	WeightLoss float64 `gorm:"not null" json:"weightLoss"`
	Days       int     `gorm:"not null" json:"days"`
}
