package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"notekeep/internal/contract"
	"notekeep/internal/utils/apierror"
)

type NoteService interface {
	GetNotes(username string) (*contract.NotesListResponse, apierror.ErrorResponse)
	CreateNote(username string, req *contract.NoteContentRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(username string, noteId int64, req *contract.NoteContentRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(username string, noteId int64) (*contract.NoteResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	resp, apierr := n.NoteService.GetNotes(c.Param("username"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.NoteContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(c.Param("username"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.NoteCreatedResponse{Success: true, Note: note}
	return c.JSON(http.StatusCreated, &resp)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("noteId", "int"))
	}

	var req contract.NoteContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(c.Param("username"), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.NoteCreatedResponse{Success: true, Note: note}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("noteId", "int"))
	}

	// Deletion demands the explicit confirm=true double-check; absence
	// rejects before any store access.
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusBadRequest, apierror.ConfirmRequiredError)
	}

	note, apierr := n.NoteService.DeleteNote(c.Param("username"), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.NoteDeletedResponse{
		Success:     true,
		Message:     "Note deleted",
		DeletedNote: note,
	}
	return c.JSON(http.StatusOK, &resp)
}
