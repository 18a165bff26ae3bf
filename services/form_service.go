package services

import (
	"errors"
	"math"

	"github.com/BakhatBug/Keto-Slim/models"

	"gorm.io/gorm"
)

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

// CreateFormSubmission stores a quiz intake. userID is nil for anonymous
// visitors.
func (s *FormService) CreateFormSubmission(form models.FormSubmission, userID *uint) (*models.FormSubmission, error) {
	form.UserID = userID
	if err := s.db.Create(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *FormService) GetFormSubmissionByID(formID uint) (*models.FormSubmission, error) {
	var form models.FormSubmission
	if err := s.db.First(&form, formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "form submission"}
		}
		return nil, err
	}
	return &form, nil
}

func (s *FormService) GetUserFormSubmissions(userID uint) ([]models.FormSubmission, error) {
	var forms []models.FormSubmission
	err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

// GetAllFormSubmissions is the paginated admin listing.
func (s *FormService) GetAllFormSubmissions(page, limit int) ([]models.FormSubmission, int64, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&models.FormSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var forms []models.FormSubmission
	err := s.db.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&forms).Error
	if err != nil {
		return nil, 0, 0, err
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))
	return forms, total, pages, nil
}

func (s *FormService) DeleteFormSubmission(formID uint) error {
	res := s.db.Unscoped().Delete(&models.FormSubmission{}, formID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "form submission"}
	}
	return nil
}
