package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	"github.com/aumvipul/notes-sharing-website/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfDelete   = errors.New("admins cannot delete their own account")
)

// Stats carries the aggregate counts for the admin dashboard.
type Stats struct {
	TotalUsers int64 `json:"total_users"`
	TotalNotes int64 `json:"total_notes"`
}

// AdminService provides the aggregate views and the cascading deletes. It
// holds the raw DB handle so cascades can run in one transaction across DAOs.
type AdminService struct {
	db    *gorm.DB
	users *dao.UserDAO
	notes *dao.NoteDAO
	likes *dao.LikeDAO
	files *storage.Store
}

// NewAdminService 创建一个新的 AdminService 实例
func NewAdminService(db *gorm.DB, users *dao.UserDAO, notes *dao.NoteDAO, likes *dao.LikeDAO, files *storage.Store) *AdminService {
	return &AdminService{db: db, users: users, notes: notes, likes: likes, files: files}
}

// Stats returns the dashboard counts.
func (s *AdminService) Stats() (*Stats, error) {
	users, err := s.users.Count()
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.Count()
	if err != nil {
		return nil, err
	}
	return &Stats{TotalUsers: users, TotalNotes: notes}, nil
}

// ListUsers returns every user.
func (s *AdminService) ListUsers() ([]model.User, error) {
	return s.users.ListAll()
}

// ListNotes returns every note.
func (s *AdminService) ListNotes() ([]model.Note, error) {
	return s.notes.ListAll()
}

// DeleteUser removes the user together with their notes, likes they issued and
// likes on their notes. The rows go in one transaction; the backing files are
// removed after commit, so a failure there leaves orphaned files but never
// dangling rows.
func (s *AdminService) DeleteUser(userID, callerID uint) error {
	if userID == callerID {
		return ErrSelfDelete
	}
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var orphanedFiles []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		notes, err := s.notes.WithTx(tx).ListByUser(userID)
		if err != nil {
			return err
		}
		noteIDs := make([]uint, len(notes))
		for i, n := range notes {
			noteIDs[i] = n.ID
			orphanedFiles = append(orphanedFiles, n.Filename)
		}
		likes := s.likes.WithTx(tx)
		if err := likes.DeleteByNotes(noteIDs); err != nil {
			return err
		}
		if err := likes.DeleteByUser(userID); err != nil {
			return err
		}
		if err := s.notes.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(userID)
	})
	if err != nil {
		return err
	}

	for _, f := range orphanedFiles {
		_ = s.files.Remove(f)
	}
	return nil
}

// DeleteNote removes the note row and its likes, then the backing file.
func (s *AdminService) DeleteNote(noteID uint) error {
	note, err := s.notes.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.likes.WithTx(tx).DeleteByNote(noteID); err != nil {
			return err
		}
		return s.notes.WithTx(tx).Delete(noteID)
	})
	if err != nil {
		return err
	}
	return s.files.Remove(note.Filename)
}
