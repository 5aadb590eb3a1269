package request

type UploadRequest struct {
	Title   string `form:"title" json:"title" binding:"required,notblank"`
	Subject string `form:"subject" json:"subject" binding:"required,notblank"`
}

// NoteListQuery carries the optional browse filters; both are ANDed.
type NoteListQuery struct {
	Search  string `form:"search" json:"search"`
	Subject string `form:"subject" json:"subject"`
}
