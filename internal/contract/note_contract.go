package contract

const MaxNoteContentChars = 5000

type NoteContentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type NoteResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type NotesListResponse struct {
	Success  bool            `json:"success"`
	Username string          `json:"username"`
	Notes    []*NoteResponse `json:"notes"`
}

type NoteCreatedResponse struct {
	Success bool          `json:"success"`
	Note    *NoteResponse `json:"note"`
}

type NoteDeletedResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	DeletedNote *NoteResponse `json:"deletedNote"`
}
