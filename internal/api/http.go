package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hackorsnooze/snooze/internal/logging"
	"github.com/hackorsnooze/snooze/internal/models"
)

// Client is the concrete API implementation over net/http. The base URL is
// injected at construction; there is no package-level endpoint state.
type Client struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewClient builds a Client for the given service endpoint. timeout bounds
// each individual request; zero means no client-side timeout. A nil logger
// is replaced with a discarding one.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	if log == nil {
		log = logging.Discard()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Response envelopes. Story-bearing responses wrap a single story or a
// list; user-bearing responses embed the profile and, for signup/login,
// the issued token.
type storyEnvelope struct {
	Story models.Story `json:"story"`
}

type storiesEnvelope struct {
	Stories []models.Story `json:"stories"`
}

type userEnvelope struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Request bodies. The token rides in the body for POST/DELETE.
type tokenBody struct {
	Token string `json:"token"`
}

type createStoryBody struct {
	Token string            `json:"token"`
	Story models.StoryDraft `json:"story"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type userBody struct {
	User credentials `json:"user"`
}

func (c *Client) ListStories(ctx context.Context) ([]models.Story, error) {
	var env storiesEnvelope
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Stories, nil
}

func (c *Client) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	var env storyEnvelope
	body := createStoryBody{Token: token, Story: draft}
	if err := c.do(ctx, http.MethodPost, "/stories", nil, body, &env); err != nil {
		return models.Story{}, err
	}
	if env.Story.StoryID == "" {
		return models.Story{}, serviceErr(http.StatusOK, "create response carried no story id")
	}
	return env.Story, nil
}

func (c *Client) DeleteStory(ctx context.Context, token, storyID string) error {
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), nil, tokenBody{Token: token}, nil)
}

func (c *Client) SignUp(ctx context.Context, username, password, name string) (models.User, string, error) {
	var env userEnvelope
	body := userBody{User: credentials{Username: username, Password: password, Name: name}}
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &env); err != nil {
		return models.User{}, "", err
	}
	if env.Token == "" {
		return models.User{}, "", serviceErr(http.StatusOK, "signup response carried no token")
	}
	return env.User, env.Token, nil
}

func (c *Client) LogIn(ctx context.Context, username, password string) (models.User, string, error) {
	var env userEnvelope
	body := userBody{User: credentials{Username: username, Password: password}}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &env); err != nil {
		return models.User{}, "", err
	}
	if env.Token == "" {
		return models.User{}, "", serviceErr(http.StatusOK, "login response carried no token")
	}
	return env.User, env.Token, nil
}

func (c *Client) GetUser(ctx context.Context, token, username string) (models.User, error) {
	var env userEnvelope
	query := url.Values{"token": {token}}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), query, nil, &env); err != nil {
		return models.User{}, err
	}
	if env.User.Username == "" {
		return models.User{}, serviceErr(http.StatusOK, "profile response carried no user")
	}
	return env.User, nil
}

func (c *Client) AddFavorite(ctx context.Context, token, username, storyID string) error {
	path := favoritePath(username, storyID)
	return c.do(ctx, http.MethodPost, path, nil, tokenBody{Token: token}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	path := favoritePath(username, storyID)
	return c.do(ctx, http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

// do performs one request/response round trip: marshal the body, send,
// classify any failure, and decode the 2xx payload into out (when out is
// non-nil). The token never reaches the log; the generated request id ties
// log lines to a call.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return serviceErr(0, "encode request: "+err.Error())
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return networkErr(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	log := c.log.With("requestId", reqID, "method", method, "path", path)
	log.Debug(ctx, "api request")

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "transport failure", "err", err)
		return networkErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "reading response body", "err", err)
		return networkErr(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(raw)
		log.Debug(ctx, "api error response", "status", resp.StatusCode, "message", msg)
		return &Error{Kind: classify(resp.StatusCode), Message: msg, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return serviceErr(resp.StatusCode, "unexpected response shape: "+err.Error())
		}
	}
	return nil
}

// errorMessage digs the human-readable message out of an error response,
// which the service formats as {"error": {"message": "..."}}. Falls back
// to the raw body.
func errorMessage(raw []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
			Title   string `json:"title"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Error.Message != "":
			return payload.Error.Message
		case payload.Error.Title != "":
			return payload.Error.Title
		case payload.Message != "":
			return payload.Message
		}
	}
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = "no error detail in response"
	}
	return msg
}
