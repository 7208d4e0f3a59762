package repository

import (
	"github.com/ostrx/formforge/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateWithOptions(question *model.Question) error
	CreateBatch(questions []model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByFormID(formID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// CreateWithOptions inserts a question and its field options as one atomic
// unit, so a failure cannot leave an option-less choice question behind.
func (r *questionRepository) CreateWithOptions(question *model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

// CreateBatch inserts a set of questions (each possibly carrying options)
// atomically. Used by the incremental AI addition path.
func (r *questionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("FieldOptions").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("FieldOptions").Where("form_id = ?", formID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
