package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aumvipul/notes-sharing-website/api/v1/request"
	"github.com/aumvipul/notes-sharing-website/internal/metrics"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	"github.com/aumvipul/notes-sharing-website/internal/web"
	"github.com/aumvipul/notes-sharing-website/middleware"
	"github.com/aumvipul/notes-sharing-website/service"
)

// recentNotesLimit caps the public landing page listing.
const recentNotesLimit = 6

// NoteAPI exposes the upload, browse, like and download handlers.
type NoteAPI struct {
	service *service.NoteService
}

// NewNoteAPI wires the note service into the HTTP handlers.
func NewNoteAPI(s *service.NoteService) *NoteAPI {
	return &NoteAPI{service: s}
}

// Home serves the public landing page: the newest notes, capped.
func (n *NoteAPI) Home(c *gin.Context) {
	notes, err := n.service.Recent(recentNotesLimit)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/")
		return
	}
	m := pageModel(c, "home")
	m["notes"] = notes
	c.JSON(http.StatusOK, m)
}

// UploadForm serves the upload page view model.
func (n *NoteAPI) UploadForm(c *gin.Context) {
	c.JSON(http.StatusOK, pageModel(c, "upload"))
}

// Upload stores the file and creates the note owned by the session user.
func (n *NoteAPI) Upload(c *gin.Context) {
	var req request.UploadRequest
	if err := c.ShouldBind(&req); err != nil {
		metrics.IncUpload("bad_request")
		fail(c, http.StatusBadRequest, err.Error(), "/upload")
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.IncUpload("bad_request")
		fail(c, http.StatusBadRequest, "Invalid file type!", "/upload")
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		metrics.IncUpload("internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/upload")
		return
	}
	defer src.Close()

	note, err := n.service.Upload(req.Title, req.Subject, fileHeader.Filename, src, middleware.SessionUserID(c))
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFileType) {
			metrics.IncUpload("unsupported_type")
			fail(c, http.StatusBadRequest, "Invalid file type!", "/upload")
			return
		}
		metrics.IncUpload("internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/upload")
		return
	}
	metrics.IncUpload("success")
	if web.WantsJSON(c) {
		c.JSON(http.StatusCreated, note)
		return
	}
	web.Redirect(c, "/notes", "success", "Note uploaded successfully!")
}

// List serves the browse page: filtered notes, subjects and like counts.
func (n *NoteAPI) List(c *gin.Context) {
	var q request.NoteListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, http.StatusBadRequest, err.Error(), "/notes")
		return
	}
	listing, err := n.service.Browse(q.Search, q.Subject)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/dashboard")
		return
	}
	m := pageModel(c, "notes")
	m["notes"] = listing.Notes
	m["subjects"] = listing.Subjects
	m["like_counts"] = listing.LikeCounts
	m["search"] = q.Search
	m["subject"] = q.Subject
	c.JSON(http.StatusOK, m)
}

// MyNotes serves the session user's own notes.
func (n *NoteAPI) MyNotes(c *gin.Context) {
	notes, err := n.service.MyNotes(middleware.SessionUserID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/dashboard")
		return
	}
	m := pageModel(c, "my_notes")
	m["notes"] = notes
	c.JSON(http.StatusOK, m)
}

// Download serves a stored file as an attachment.
func (n *NoteAPI) Download(c *gin.Context) {
	filename := c.Param("filename")
	path, err := n.service.DownloadPath(filename)
	if err != nil {
		metrics.IncDownload("not_found")
		if web.WantsJSON(c) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.String(http.StatusNotFound, "file not found")
		return
	}
	metrics.IncDownload("success")
	c.FileAttachment(path, filename)
}

// Like registers a like for the session user. Liking a note twice changes
// nothing; either way the browser lands back on the listing.
func (n *NoteAPI) Like(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		metrics.IncLike("bad_request")
		fail(c, http.StatusBadRequest, "invalid note id", "/notes")
		return
	}
	if err := n.service.Like(middleware.SessionUserID(c), uint(noteID)); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			metrics.IncLike("not_found")
			fail(c, http.StatusNotFound, "note not found", "/notes")
			return
		}
		metrics.IncLike("internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/notes")
		return
	}
	metrics.IncLike("success")
	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "liked"})
		return
	}
	c.Redirect(http.StatusFound, "/notes")
}
