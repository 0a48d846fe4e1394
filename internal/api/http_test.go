package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackorsnooze/snooze/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nil)
}

func TestListStories_DecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("token"))
		w.Write([]byte(`{"stories":[{"storyId":"s1","author":"A","title":"T","url":"u","username":"alice","createdAt":"2020-01-01T00:00:00.000Z","updatedAt":"2020-01-01T00:00:00.000Z"}]}`))
	})

	ss, err := c.ListStories(context.Background())
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "s1", ss[0].StoryID)
	assert.Equal(t, "alice", ss[0].Username)
}

func TestCreateStory_TokenInBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/stories", r.URL.Path)

		var body struct {
			Token string            `json:"token"`
			Story models.StoryDraft `json:"story"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok1", body.Token)
		assert.Equal(t, "Test Title", body.Story.Title)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"story":{"storyId":"s9","author":"A","title":"Test Title","url":"http://x","username":"alice","createdAt":"2020-01-01T00:00:00.000Z","updatedAt":"2020-01-01T00:00:00.000Z"}}`))
	})

	created, err := c.CreateStory(context.Background(), "tok1", models.StoryDraft{Author: "A", Title: "Test Title", URL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, "s9", created.StoryID)
	assert.Equal(t, "alice", created.Username)
}

func TestCreateStory_MissingID_IsServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"story":{}}`))
	})

	_, err := c.CreateStory(context.Background(), "tok1", models.StoryDraft{Title: "T"})
	require.ErrorIs(t, err, ErrService)
}

func TestGetUser_TokenInQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/alice", r.URL.Path)
		assert.Equal(t, "tok1", r.URL.Query().Get("token"))

		w.Write([]byte(`{"user":{"username":"alice","name":"Alice A","createdAt":"2020-01-01T00:00:00.000Z","updatedAt":"2020-01-01T00:00:00.000Z","favorites":[],"stories":[{"storyId":"s1","author":"A","title":"T","url":"u","username":"alice","createdAt":"2020-01-01T00:00:00.000Z","updatedAt":"2020-01-01T00:00:00.000Z"}]}}`))
	})

	user, err := c.GetUser(context.Background(), "tok1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice A", user.Name)
	// The server calls them "stories"; locally they are own stories.
	require.Len(t, user.OwnStories, 1)
	assert.Equal(t, "s1", user.OwnStories[0].StoryID)
}

func TestSignUp_ReturnsUserAndToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/signup", r.URL.Path)

		var body struct {
			User struct {
				Username string `json:"username"`
				Password string `json:"password"`
				Name     string `json:"name"`
			} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "Alice A", body.User.Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"tok1","user":{"username":"alice","name":"Alice A","createdAt":"2020-01-01T00:00:00.000Z","updatedAt":"2020-01-01T00:00:00.000Z"}}`))
	})

	user, token, err := c.SignUp(context.Background(), "alice", "pw123", "Alice A")
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
	assert.Equal(t, "alice", user.Username)
}

func TestSignUp_MissingToken_IsServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"username":"alice"}}`))
	})

	_, _, err := c.SignUp(context.Background(), "alice", "pw123", "Alice A")
	require.ErrorIs(t, err, ErrService)
}

func TestDeleteStory_MethodAndPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/stories/s1", r.URL.Path)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok1", body.Token)

		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.DeleteStory(context.Background(), "tok1", "s1"))
}

func TestFavoriteEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.AddFavorite(context.Background(), "tok1", "alice", "s1"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users/alice/favorites/s1", gotPath)

	require.NoError(t, c.RemoveFavorite(context.Background(), "tok1", "alice", "s1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/users/alice/favorites/s1", gotPath)
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrAuth},
		{http.StatusForbidden, ErrAuth},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusConflict, ErrValidation},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrService},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"error":{"message":"nope"}}`))
		})

		_, err := c.ListStories(context.Background())
		require.ErrorIs(t, err, tt.want, "status %d", tt.status)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tt.status, apiErr.Status)
		assert.Equal(t, "nope", apiErr.Message)
	}
}

func TestTransportFailure_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
}

func TestMalformedBody_IsServiceError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stories": "not a list"`))
	})

	_, err := c.ListStories(context.Background())
	require.ErrorIs(t, err, ErrService)
}
