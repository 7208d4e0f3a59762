package repository

import (
	"github.com/ostrx/formforge/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByFormID(formID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(submission).Error
	})
}

func (r *submissionRepository) FindByFormID(formID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("Answers").Where("form_id = ?", formID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}
