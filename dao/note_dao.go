package dao

import (
	"strings"

	"github.com/aumvipul/notes-sharing-website/model"

	"gorm.io/gorm"
)

type NoteDAO struct {
	db *gorm.DB
}

// NewNoteDAO 创建一个新的 NoteDAO 实例
func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{db: db}
}

// WithTx returns a DAO bound to the given transaction.
func (dao *NoteDAO) WithTx(tx *gorm.DB) *NoteDAO {
	return &NoteDAO{db: tx}
}

// CreateNote 创建新笔记
func (dao *NoteDAO) CreateNote(note *model.Note) error {
	return dao.db.Create(note).Error
}

// FindByID 根据 ID 获取笔记
func (dao *NoteDAO) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	err := dao.db.First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Search returns notes newest-first, optionally filtered by case-insensitive
// substring matches on title and subject. Both filters are ANDed when present.
func (dao *NoteDAO) Search(titleQuery, subjectQuery string) ([]model.Note, error) {
	q := dao.db.Model(&model.Note{})
	if titleQuery != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(titleQuery)+"%")
	}
	if subjectQuery != "" {
		q = q.Where("LOWER(subject) LIKE ?", "%"+strings.ToLower(subjectQuery)+"%")
	}
	var notes []model.Note
	err := q.Order("id desc").Find(&notes).Error
	return notes, err
}

// ListByUser returns the user's notes newest-first.
func (dao *NoteDAO) ListByUser(userID uint) ([]model.Note, error) {
	var notes []model.Note
	err := dao.db.Where("user_id = ?", userID).Order("id desc").Find(&notes).Error
	return notes, err
}

// ListRecent returns the newest notes up to limit, for the public landing page.
func (dao *NoteDAO) ListRecent(limit int) ([]model.Note, error) {
	var notes []model.Note
	err := dao.db.Order("id desc").Limit(limit).Find(&notes).Error
	return notes, err
}

// ListAll returns every note, newest-first.
func (dao *NoteDAO) ListAll() ([]model.Note, error) {
	return dao.Search("", "")
}

// DistinctSubjects returns the distinct subject values across all notes,
// used to build the subject filter selector.
func (dao *NoteDAO) DistinctSubjects() ([]string, error) {
	var subjects []string
	err := dao.db.Model(&model.Note{}).Distinct("subject").Order("subject asc").Pluck("subject", &subjects).Error
	return subjects, err
}

// Count returns the total number of notes.
func (dao *NoteDAO) Count() (int64, error) {
	var n int64
	err := dao.db.Model(&model.Note{}).Count(&n).Error
	return n, err
}

// Delete removes the note row only.
func (dao *NoteDAO) Delete(id uint) error {
	return dao.db.Delete(&model.Note{}, id).Error
}

// DeleteByUser removes every note row owned by the user.
func (dao *NoteDAO) DeleteByUser(userID uint) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.Note{}).Error
}
