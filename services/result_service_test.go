package services

import (
	"testing"

	"github.com/BakhatBug/Keto-Slim/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createForm(t *testing.T, db *gorm.DB, userID *uint) *models.FormSubmission {
	t.Helper()
	form := &models.FormSubmission{
		UserID:     userID,
		Gender:     "male",
		FatScale:   25,
		BMI:        32,
		Calorie:    1800,
		Water:      2,
		WeightLoss: 15,
		Days:       120,
	}
	require.NoError(t, db.Create(form).Error)
	return form
}

func TestGenerateResult_ComputesAndPersists(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	result, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	require.Equal(t, form.ID, result.FormSubmissionID)
	require.Nil(t, result.UserID)
	require.Equal(t, 18, result.TotalWeeks)
	require.Len(t, result.Steps, 18)
	require.Equal(t, 92.5, result.StartWeight)
	require.Equal(t, 77.5, result.GoalWeight)
	require.Equal(t, 15.0, result.TotalWeightLoss)

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGenerateResult_CopiesOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)

	user := models.User{Email: "owner@test.com", PasswordHash: "x", Name: "Owner", Roles: []string{models.RoleUser}}
	require.NoError(t, db.Create(&user).Error)
	form := createForm(t, db, &user.ID)

	result, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)
	require.NotNil(t, result.UserID)
	require.Equal(t, user.ID, *result.UserID)
}

// TestGenerateResult_Idempotent: repeated generation returns the stored
// result without re-computing or inserting a second row.
func TestGenerateResult_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	first, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	second, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.FormSubmissionID, second.FormSubmissionID)
	require.Equal(t, first.Steps, second.Steps)

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGenerateResult_FormNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)

	_, err := svc.GenerateResult(999999)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

// The unique index on form_submission_id is the storage-level guarantee the
// service relies on when two generate calls race.
func TestResultUniqueIndex_RejectsSecondInsert(t *testing.T) {
	db := newTestDB(t)
	form := createForm(t, db, nil)

	a := models.Result{FormSubmissionID: form.ID, Steps: []models.ResultStep{{StepNumber: 1, Week: 1}}, TotalWeeks: 1}
	require.NoError(t, db.Create(&a).Error)

	b := models.Result{FormSubmissionID: form.ID, Steps: []models.ResultStep{{StepNumber: 1, Week: 1}}, TotalWeeks: 1}
	err := db.Create(&b).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetResultByFormID_NeverComputes(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	result, err := svc.GetResultByFormID(form.ID)
	require.NoError(t, err)
	require.Nil(t, result)

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestGetResultByFormID_ReturnsExisting(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	created, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	found, err := svc.GetResultByFormID(form.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
}

func TestGetUserResults_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)

	user := models.User{Email: "list@test.com", PasswordHash: "x", Name: "Lister", Roles: []string{models.RoleUser}}
	require.NoError(t, db.Create(&user).Error)

	formA := createForm(t, db, &user.ID)
	formB := createForm(t, db, &user.ID)

	_, err := svc.GenerateResult(formA.ID)
	require.NoError(t, err)
	_, err = svc.GenerateResult(formB.ID)
	require.NoError(t, err)

	results, err := svc.GetUserResults(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestDeleteResult(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	result, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResult(result.ID))

	_, err = svc.GetResultByID(result.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = svc.DeleteResult(result.ID)
	require.ErrorAs(t, err, &notFound)
}

// Steps are stored as a JSON column; make sure they come back intact.
func TestGenerateResult_StoredStepsSurviveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewResultService(db)
	form := createForm(t, db, nil)

	created, err := svc.GenerateResult(form.ID)
	require.NoError(t, err)

	var reloaded models.Result
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	require.NotEmpty(t, reloaded.Steps)
	require.Equal(t, created.Steps, reloaded.Steps)
}
