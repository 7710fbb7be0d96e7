package service

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"notekeep/internal/contract"
	"notekeep/internal/domain/memdb"
	"notekeep/internal/domain/memdb/repository"
	"notekeep/internal/utils/uid"
	"notekeep/internal/utils/validators"
)

type testEnv struct {
	users *DefaultUserService
	notes *DefaultNoteService
}

// newTestEnv builds a fully wired service stack on a fresh in-memory
// store, isolated per test.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uid.Init(1)

	db, err := memdb.Init()
	require.NoError(t, err)

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("usernamechars", validators.UsernameChars))

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	return &testEnv{
		users: NewUserService(userRepo, validate),
		notes: NewNoteService(noteRepo, userRepo, validate),
	}
}

func (e *testEnv) login(t *testing.T, username string) *contract.LoginResponse {
	t.Helper()
	resp, apierr := e.users.Login(&contract.LoginRequest{Username: username})
	require.Nil(t, apierr)
	return resp
}

func (e *testEnv) create(t *testing.T, username, content string) *contract.NoteResponse {
	t.Helper()
	note, apierr := e.notes.CreateNote(username, &contract.NoteContentRequest{Content: content})
	require.Nil(t, apierr)
	return note
}
