package repository

import (
	"github.com/ostrx/formforge/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByUID(uid string) (*model.Form, error)
	FindByUIDWithQuestions(uid string) (*model.Form, error)
	FindAllWithQuestionCount() ([]struct {
		model.Form
		QuestionCount int
	}, error)
	SetPublished(uid string, published bool) error
	DeleteByUID(uid string) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	// Create with associations persists the form, its questions and their
	// options in a single transaction.
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByUID(uid string) (*model.Form, error) {
	var form model.Form
	if err := r.db.Where("form_uid = ?", uid).First(&form).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindByUIDWithQuestions(uid string) (*model.Form, error) {
	var form model.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).Preload("Questions.FieldOptions", func(db *gorm.DB) *gorm.DB {
		return db.Order("field_options.id ASC")
	}).Where("form_uid = ?", uid).First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAllWithQuestionCount() ([]struct {
	model.Form
	QuestionCount int
}, error) {
	var results []struct {
		model.Form
		QuestionCount int
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count").
		Where("forms.deleted_at IS NULL").
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) SetPublished(uid string, published bool) error {
	res := r.db.Model(&model.Form{}).Where("form_uid = ?", uid).Update("published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByUID removes a form together with its questions, field options,
// submissions and answers in one transaction.
func (r *formRepository) DeleteByUID(uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var form model.Form
		if err := tx.Where("form_uid = ?", uid).First(&form).Error; err != nil {
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("form_id = ?", form.ID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.FieldOption{}).Error; err != nil {
				return err
			}
		}

		var submissionIDs []uint
		if err := tx.Model(&model.Submission{}).Where("form_id = ?", form.ID).Pluck("id", &submissionIDs).Error; err != nil {
			return err
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("form_id = ?", form.ID).Delete(&model.Submission{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("form_id = ?", form.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&form).Error
	})
}
