package repository

import (
	"errors"

	"gorm.io/gorm"

	"notekeep/internal/domain/entity"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// FindAllByOwner returns the user's notes in insertion order. Snowflake
// IDs are monotonic, so ascending ID is creation order.
func (d *DefaultNoteRepository) FindAllByOwner(username string) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("username = ?", username).Order("id asc").Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(username string, id int64) (*entity.Note, error) {
	var note entity.Note
	err := d.db.First(&note, "username = ? AND id = ?", username, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
