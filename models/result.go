package models

import (
	"gorm.io/gorm"
)

// ResultStep is one week of a projected plan. Steps have no identity of their
// own; the whole slice is stored as a JSON column on Result.
//
// StepNumber and Week always hold the same value. The quiz frontend reads
// both names, so both are kept.
type ResultStep struct {
	StepNumber int     `json:"stepNumber"`
	Week       int     `json:"week"`
	Weight     float64 `json:"weight"`
	BMI        float64 `json:"bmi"`
	Calories   int     `json:"calories"`
	Water      float64 `json:"water"`
}

// Result is the computed multi-week plan for one form submission. The unique
// index on FormSubmissionID is what guarantees at most one result per
// submission, even when two generate requests race.
type Result struct {
	gorm.Model
	FormSubmissionID uint         `gorm:"uniqueIndex;not null" json:"formSubmissionId"`
	UserID           *uint        `gorm:"index" json:"userId,omitempty"`
	Steps            []ResultStep `gorm:"serializer:json" json:"steps"`
	TotalWeeks       int          `gorm:"not null" json:"totalWeeks"`
	StartWeight      float64      `gorm:"not null" json:"startWeight"`
	GoalWeight       float64      `gorm:"not null" json:"goalWeight"`
	TotalWeightLoss  float64      `gorm:"not null" json:"totalWeightLoss"`
}
