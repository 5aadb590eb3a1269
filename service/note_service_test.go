package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	"github.com/aumvipul/notes-sharing-website/model"
)

func newNoteService(t *testing.T) (*NoteService, *gorm.DB) {
	t.Helper()
	setTestConfig(t)
	db := newTestDB(t)
	s := NewNoteService(dao.NewNoteDAO(db), dao.NewLikeDAO(db), newTestStore(t))
	return s, db
}

func TestUploadCreatesNote(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	note, err := s.Upload("Calc Notes", "Math", "calc.pdf", strings.NewReader("content"), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "calc.pdf", note.Filename)
	assert.Equal(t, owner.ID, note.UserID)

	path, err := s.DownloadPath(note.Filename)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	_, err := s.Upload("Bad", "Misc", "malware.exe", strings.NewReader("x"), owner.ID)
	assert.ErrorIs(t, err, storage.ErrUnsupportedFileType)

	notes, err := s.MyNotes(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, notes, "no note row for a rejected upload")
}

func TestUploadSameNameTwice(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	first, err := s.Upload("One", "Math", "notes.pdf", strings.NewReader("1"), owner.ID)
	require.NoError(t, err)
	second, err := s.Upload("Two", "Math", "notes.pdf", strings.NewReader("2"), owner.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)

	// Both stored files resolve.
	_, err = s.DownloadPath(first.Filename)
	assert.NoError(t, err)
	_, err = s.DownloadPath(second.Filename)
	assert.NoError(t, err)
}

func TestBrowseFilters(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	mustUpload := func(title, subject, filename string) *model.Note {
		n, err := s.Upload(title, subject, filename, strings.NewReader(title), owner.ID)
		require.NoError(t, err)
		return n
	}
	mustUpload("Calc Notes", "Math", "calc.pdf")
	mustUpload("Advanced Calculus", "Math", "adv.pdf")
	mustUpload("Organic Chemistry", "Chemistry", "chem.pdf")

	// Title filter, case-insensitive.
	listing, err := s.Browse("calc", "")
	require.NoError(t, err)
	require.Len(t, listing.Notes, 2)
	for _, n := range listing.Notes {
		assert.Contains(t, strings.ToLower(n.Title), "calc")
	}

	// Both filters ANDed.
	listing, err = s.Browse("calc", "math")
	require.NoError(t, err)
	assert.Len(t, listing.Notes, 2)

	listing, err = s.Browse("calc", "chem")
	require.NoError(t, err)
	assert.Empty(t, listing.Notes)

	// Unfiltered: newest first, all subjects offered.
	listing, err = s.Browse("", "")
	require.NoError(t, err)
	require.Len(t, listing.Notes, 3)
	assert.Equal(t, "Organic Chemistry", listing.Notes[0].Title)
	assert.ElementsMatch(t, []string{"Math", "Chemistry"}, listing.Subjects)
}

func TestLikeIsIdempotent(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)
	fan := seedUser(t, db, "bob", "b@x.com", false)

	note, err := s.Upload("Calc Notes", "Math", "calc.pdf", strings.NewReader("x"), owner.ID)
	require.NoError(t, err)

	require.NoError(t, s.Like(fan.ID, note.ID))
	require.NoError(t, s.Like(fan.ID, note.ID))

	var count int64
	require.NoError(t, db.Model(&model.Like{}).Where("note_id = ?", note.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	listing, err := s.Browse("", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, listing.LikeCounts[note.ID])
}

func TestLikeMissingNote(t *testing.T) {
	s, db := newNoteService(t)
	fan := seedUser(t, db, "bob", "b@x.com", false)

	err := s.Like(fan.ID, 9999)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestBrowseZeroLikeCounts(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	note, err := s.Upload("Calc Notes", "Math", "calc.pdf", strings.NewReader("x"), owner.ID)
	require.NoError(t, err)

	listing, err := s.Browse("", "")
	require.NoError(t, err)
	count, ok := listing.LikeCounts[note.ID]
	assert.True(t, ok, "unliked notes still appear in the count map")
	assert.EqualValues(t, 0, count)
}

func TestRecentIsCapped(t *testing.T) {
	s, db := newNoteService(t)
	owner := seedUser(t, db, "alice", "a@x.com", false)

	for i := 0; i < 8; i++ {
		_, err := s.Upload("T", "S", "n.pdf", strings.NewReader("x"), owner.ID)
		require.NoError(t, err)
	}
	notes, err := s.Recent(6)
	require.NoError(t, err)
	assert.Len(t, notes, 6)
	assert.Greater(t, notes[0].ID, notes[5].ID, "newest first")
}
