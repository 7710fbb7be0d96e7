package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notekeep/internal/contract"
	"notekeep/internal/domain/entity"
	"notekeep/internal/utils"
	"notekeep/internal/utils/apierror"
	"notekeep/internal/utils/uid"
)

type NoteRepository interface {
	FindAllByOwner(username string) ([]*entity.Note, error)
	FindByID(username string, id int64) (*entity.Note, error)
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, userRepo UserRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		UserRepo: userRepo,
		Validate: validate,
	}
}

func (n *DefaultNoteService) GetNotes(username string) (*contract.NotesListResponse, apierror.ErrorResponse) {
	username, apierr := n.checkOwner(username)
	if apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.FindAllByOwner(username)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}

	return &contract.NotesListResponse{
		Success:  true,
		Username: username,
		Notes:    resp,
	}, nil
}

func (n *DefaultNoteService) CreateNote(username string, req *contract.NoteContentRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	username, apierr := n.checkOwner(username)
	if apierr != nil {
		return nil, apierr
	}

	note := &entity.Note{
		ID:        uid.Generate(),
		Username:  username,
		Content:   req.Content,
		CreatedAt: utils.NowUTC(),
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(username string, noteId int64, req *contract.NoteContentRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	username, apierr := n.checkOwner(username)
	if apierr != nil {
		return nil, apierr
	}

	note, apierr := n.findNote(username, noteId)
	if apierr != nil {
		return nil, apierr
	}

	// ID and CreatedAt stay untouched, only the content moves.
	note.Content = req.Content
	now := utils.NowUTC()
	note.UpdatedAt = &now

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) DeleteNote(username string, noteId int64) (*contract.NoteResponse, apierror.ErrorResponse) {
	username, apierr := n.checkOwner(username)
	if apierr != nil {
		return nil, apierr
	}

	note, apierr := n.findNote(username, noteId)
	if apierr != nil {
		return nil, apierr
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// checkOwner validates the username shape, then resolves it to a known
// user. Shape failures outrank the not-found case.
func (n *DefaultNoteService) checkOwner(username string) (string, apierror.ErrorResponse) {
	username, apierr := CheckUsername(n.Validate, username)
	if apierr != nil {
		return "", apierr
	}

	user, err := n.UserRepo.FindByUsername(username)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return "", apierror.InternalServerError
	}

	if user == nil {
		return "", apierror.UserNotFoundError
	}
	return username, nil
}

func (n *DefaultNoteService) findNote(username string, noteId int64) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(username, noteId)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NoteNotFoundError
	}
	return note, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	resp := &contract.NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
	}
	if note.UpdatedAt != nil {
		resp.UpdatedAt = utils.FormatEpoch(*note.UpdatedAt)
	}
	return resp
}
