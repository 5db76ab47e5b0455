package history

import (
	"errors"

	"gorm.io/gorm"
)

type QuestionSetRepository interface {
	Create(set *QuestionSet) error
	GetByID(id string) (*QuestionSet, error)
	ListRecent(limit int) ([]*QuestionSet, error)
	ListBySubject(subject string, limit int) ([]*QuestionSet, error)
	Delete(id string) error
}

type questionSetRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionSetRepository {
	return &questionSetRepository{db: db}
}

func (r *questionSetRepository) Create(set *QuestionSet) error {
	return r.db.Create(set).Error
}

func (r *questionSetRepository) GetByID(id string) (*QuestionSet, error) {
	var set QuestionSet
	if err := r.db.Preload("Questions").First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *questionSetRepository) ListRecent(limit int) ([]*QuestionSet, error) {
	var sets []*QuestionSet
	if err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepository) ListBySubject(subject string, limit int) ([]*QuestionSet, error) {
	var sets []*QuestionSet
	if err := r.db.
		Where("subject = ?", subject).
		Order("created_at DESC").
		Limit(limit).
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *questionSetRepository) Delete(id string) error {
	return r.db.Delete(&QuestionSet{}, "id = ?", id).Error
}
