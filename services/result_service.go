package services

import (
	"errors"

	"github.com/BakhatBug/Keto-Slim/models"

	"gorm.io/gorm"
)

// ResultService turns form submissions into persisted weight-loss plans.
// Generation is idempotent per submission: the unique index on
// form_submission_id means only one result can ever be stored, no matter how
// many generate requests arrive or race.
type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

// GenerateResult returns the plan for a form submission, computing and
// persisting it on first request. Repeat calls return the stored plan
// unchanged; the engine is never re-run for a submission that already has a
// result.
func (s *ResultService) GenerateResult(formSubmissionID uint) (*models.Result, error) {
	var form models.FormSubmission
	if err := s.db.First(&form, formSubmissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "form submission"}
		}
		return nil, err
	}

	var existing models.Result
	err := s.db.Where("form_submission_id = ?", formSubmissionID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan := calculateWeightLossPlan(&form)

	result := models.Result{
		FormSubmissionID: form.ID,
		UserID:           form.UserID,
		Steps:            plan.Steps,
		TotalWeeks:       plan.TotalWeeks,
		StartWeight:      plan.StartWeight,
		GoalWeight:       plan.GoalWeight,
		TotalWeightLoss:  plan.TotalWeightLoss,
	}

	if err := s.db.Create(&result).Error; err != nil {
		// A concurrent request can win the insert between our lookup and
		// create. The unique index turns that into a duplicate-key error;
		// return the winner's row instead of failing.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var winner models.Result
			if ferr := s.db.Where("form_submission_id = ?", formSubmissionID).First(&winner).Error; ferr == nil {
				return &winner, nil
			}
		}
		return nil, err
	}

	return &result, nil
}

func (s *ResultService) GetResultByID(resultID uint) (*models.Result, error) {
	var result models.Result
	if err := s.db.First(&result, resultID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "result"}
		}
		return nil, err
	}
	return &result, nil
}

// GetResultByFormID is a pure lookup: it returns nil (no error) when no
// result exists yet and never triggers computation.
func (s *ResultService) GetResultByFormID(formSubmissionID uint) (*models.Result, error) {
	var result models.Result
	err := s.db.Where("form_submission_id = ?", formSubmissionID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ResultService) GetUserResults(userID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&results).Error
	return results, err
}

func (s *ResultService) DeleteResult(resultID uint) error {
	res := s.db.Unscoped().Delete(&models.Result{}, resultID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "result"}
	}
	return nil
}
