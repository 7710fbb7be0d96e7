package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/contract"
)

func TestLogin_RejectsInvalidUsernames(t *testing.T) {
	env := newTestEnv(t)

	bad := []string{
		"",
		"ab",
		strings.Repeat("a", 21),
		"has space",
		"dash-ed",
		"émile",
		"semi;colon",
	}

	for _, username := range bad {
		resp, apierr := env.users.Login(&contract.LoginRequest{Username: username})
		require.NotNil(t, apierr, "expected rejection for %q", username)
		assert.Nil(t, resp)
		assert.Equal(t, apierr.Code(), http.StatusBadRequest)
	}
}

func TestLogin_AcceptsBoundaryUsernames(t *testing.T) {
	env := newTestEnv(t)

	for _, username := range []string{"abc", strings.Repeat("z", 20), "With_Under_9"} {
		resp, apierr := env.users.Login(&contract.LoginRequest{Username: username})
		require.Nil(t, apierr, "expected %q to pass", username)
		assert.True(t, resp.Success)
		assert.Equal(t, resp.Username, username)
	}
}

func TestLogin_TrimsUsername(t *testing.T) {
	env := newTestEnv(t)

	resp := env.login(t, "  alice  ")
	assert.Equal(t, resp.Username, "alice")
}

func TestLogin_NewUserThenWelcomeBack(t *testing.T) {
	env := newTestEnv(t)

	first := env.login(t, "alice")
	assert.Equal(t, first.Message, contract.MessageNewUser)

	again := env.login(t, "alice")
	assert.Equal(t, again.Message, contract.MessageWelcomeBack)
}

func TestLogin_IsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, env.login(t, "alice").Message, contract.MessageNewUser)
	assert.Equal(t, env.login(t, "Alice").Message, contract.MessageNewUser)
}

func TestLogin_NotesSurviveRepeatedLogins(t *testing.T) {
	env := newTestEnv(t)

	env.login(t, "alice")
	env.create(t, "alice", "sticky note")

	env.login(t, "alice")
	list, apierr := env.notes.GetNotes("alice")
	require.Nil(t, apierr)
	require.Len(t, list.Notes, 1)
	assert.Equal(t, list.Notes[0].Content, "sticky note")
}
