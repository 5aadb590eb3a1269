package service

import (
	"errors"
	"io"

	"gorm.io/gorm"

	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	"github.com/aumvipul/notes-sharing-website/model"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteListing is the view model for the browse page: the filtered notes, the
// distinct subjects for the filter selector, and per-note like counts.
type NoteListing struct {
	Notes      []model.Note   `json:"notes"`
	Subjects   []string       `json:"subjects"`
	LikeCounts map[uint]int64 `json:"like_counts"`
}

// NoteService handles uploads, listing/search, likes and downloads.
type NoteService struct {
	notes *dao.NoteDAO
	likes *dao.LikeDAO
	files *storage.Store
}

// NewNoteService 创建一个新的 NoteService 实例
func NewNoteService(notes *dao.NoteDAO, likes *dao.LikeDAO, files *storage.Store) *NoteService {
	return &NoteService{notes: notes, likes: likes, files: files}
}

// Upload writes the file under a collision-resolved name and inserts the note
// row. If the insert fails the file is removed again; the two steps are not
// atomic together and a crash in between can leave an orphaned file.
func (s *NoteService) Upload(title, subject, originalName string, src io.Reader, ownerID uint) (*model.Note, error) {
	stored, err := s.files.Save(originalName, src)
	if err != nil {
		return nil, err
	}
	note := &model.Note{
		Title:    title,
		Subject:  subject,
		Filename: stored,
		UserID:   ownerID,
	}
	if err := s.notes.CreateNote(note); err != nil {
		_ = s.files.Remove(stored)
		return nil, err
	}
	return note, nil
}

// Browse returns the filtered listing plus the data the filter UI needs.
func (s *NoteService) Browse(titleQuery, subjectQuery string) (*NoteListing, error) {
	notes, err := s.notes.Search(titleQuery, subjectQuery)
	if err != nil {
		return nil, err
	}
	subjects, err := s.notes.DistinctSubjects()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	counts, err := s.likes.CountByNotes(ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := counts[id]; !ok {
			counts[id] = 0
		}
	}
	return &NoteListing{Notes: notes, Subjects: subjects, LikeCounts: counts}, nil
}

// MyNotes returns the caller's notes, newest first.
func (s *NoteService) MyNotes(ownerID uint) ([]model.Note, error) {
	return s.notes.ListByUser(ownerID)
}

// Recent returns the newest notes for the public landing page.
func (s *NoteService) Recent(limit int) ([]model.Note, error) {
	return s.notes.ListRecent(limit)
}

// Like records that the user liked the note. Liking twice is a no-op, enforced
// by the unique index underneath CreateLike.
func (s *NoteService) Like(userID, noteID uint) error {
	if _, err := s.notes.FindByID(noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return s.likes.CreateLike(&model.Like{UserID: userID, NoteID: noteID})
}

// DownloadPath resolves a stored filename to its on-disk path.
func (s *NoteService) DownloadPath(filename string) (string, error) {
	return s.files.Path(filename)
}
