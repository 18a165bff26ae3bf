package services

import (
	"math"

	"github.com/BakhatBug/Keto-Slim/models"
)

// estimatedHeightM is the reference height used to convert between BMI and
// body weight. The quiz never asks for height, so every projection assumes
// this value. Swap in a real height field here if the form ever collects one.
const estimatedHeightM = 1.7

// waterIntakeLitersPerKg is the daily water recommendation per kilogram of
// body weight.
const waterIntakeLitersPerKg = 0.033

// weightLossPlan is the raw engine output before it is persisted as a Result.
type weightLossPlan struct {
	Steps           []models.ResultStep
	TotalWeeks      int
	StartWeight     float64
	GoalWeight      float64
	TotalWeightLoss float64
}

// calculateWeightLossPlan projects a week-by-week weight-loss schedule from a
// quiz submission. Pure and deterministic: same submission, same plan.
//
// Start weight is derived from BMI at the reference height, and the goal is
// spread linearly over ceil(days/7) weeks. Every week is computed from the
// unrounded start weight and rate, never from the previous week's rounded
// figures, so rounding can't drift across the plan. The caller guarantees the
// submission is in-domain (the HTTP layer validates); out-of-domain input is
// undefined.
func calculateWeightLossPlan(form *models.FormSubmission) weightLossPlan {
	startWeight := form.BMI * estimatedHeightM * estimatedHeightM
	goalWeight := startWeight - form.WeightLoss

	totalWeeks := int(math.Ceil(float64(form.Days) / 7.0))
	weeklyWeightLoss := form.WeightLoss / float64(totalWeeks)

	steps := make([]models.ResultStep, 0, totalWeeks)
	for week := 1; week <= totalWeeks; week++ {
		targetWeight := startWeight - weeklyWeightLoss*float64(week)
		currentBMI := targetWeight / (estimatedHeightM * estimatedHeightM)

		// Calorie needs scale proportionally with projected weight. This is
		// a deliberate simplification, not a BMR formula.
		calories := math.Round(form.Calorie * (targetWeight / startWeight))

		steps = append(steps, models.ResultStep{
			StepNumber: week,
			Week:       week,
			Weight:     round1(targetWeight),
			BMI:        round1(currentBMI),
			Calories:   int(calories),
			Water:      recommendedWaterIntake(targetWeight),
		})
	}

	return weightLossPlan{
		Steps:           steps,
		TotalWeeks:      totalWeeks,
		StartWeight:     round1(startWeight),
		GoalWeight:      round1(goalWeight),
		TotalWeightLoss: form.WeightLoss,
	}
}

// recommendedWaterIntake is the daily liters suggested at a given body
// weight. Note this is derived from projected weight only — the water goal
// the user states on the quiz is not consulted. That mirrors the product's
// "recommended vs. stated" choice; change it here if that ever flips.
func recommendedWaterIntake(weightKg float64) float64 {
	return round1(weightKg * waterIntakeLitersPerKg)
}

// round1 rounds to one decimal place, the display precision for weight, BMI
// and water figures.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
