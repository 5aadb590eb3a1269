package dao

import (
	"github.com/aumvipul/notes-sharing-website/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeDAO struct {
	db *gorm.DB
}

// NewLikeDAO 创建一个新的 LikeDAO 实例
func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{db: db}
}

// WithTx returns a DAO bound to the given transaction.
func (dao *LikeDAO) WithTx(tx *gorm.DB) *LikeDAO {
	return &LikeDAO{db: tx}
}

// CreateLike inserts the (user, note) pair, relying on the uk_user_note index
// instead of a check-then-insert. A duplicate is a silent no-op.
func (dao *LikeDAO) CreateLike(like *model.Like) error {
	return dao.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CountByNote returns the like count of a single note.
func (dao *LikeDAO) CountByNote(noteID uint) (int64, error) {
	var n int64
	err := dao.db.Model(&model.Like{}).Where("note_id = ?", noteID).Count(&n).Error
	return n, err
}

// CountByNotes returns like counts for the given notes in one grouped query.
// Notes with no likes are absent from the map.
func (dao *LikeDAO) CountByNotes(noteIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(noteIDs))
	if len(noteIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		NoteID uint
		Total  int64
	}
	err := dao.db.Model(&model.Like{}).
		Select("note_id, COUNT(*) AS total").
		Where("note_id IN ?", noteIDs).
		Group("note_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.NoteID] = r.Total
	}
	return counts, nil
}

// DeleteByNote removes every like on a note.
func (dao *LikeDAO) DeleteByNote(noteID uint) error {
	return dao.db.Where("note_id = ?", noteID).Delete(&model.Like{}).Error
}

// DeleteByNotes removes every like on the given notes.
func (dao *LikeDAO) DeleteByNotes(noteIDs []uint) error {
	if len(noteIDs) == 0 {
		return nil
	}
	return dao.db.Where("note_id IN ?", noteIDs).Delete(&model.Like{}).Error
}

// DeleteByUser removes every like issued by a user.
func (dao *LikeDAO) DeleteByUser(userID uint) error {
	return dao.db.Where("user_id = ?", userID).Delete(&model.Like{}).Error
}
