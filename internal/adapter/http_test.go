// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points both services at the same test server.
func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()
	c, err := NewHTTPClient(config.ClientConfig{
		UserServiceAddress: serverURL,
		GoalServiceAddress: serverURL,
		RequestTimeout:     5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "a@x.io", body["email"])

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User registered successfully"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Email or username already taken"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email or username already taken")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Success: true, Token: "tok", ID: 7, Username: "alice"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginResponse{Success: true, Token: "tok", ID: 7, Username: "alice"}, got)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid email or password"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "bad"})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCreateGoal_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/goals", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "Run", body["title"])
		assert.EqualValues(t, 7, body["userId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":1,"title":"Run","description":null,"startDate":"2024-01-01",`+
			`"deadline":"2024-02-01","progress":0,"completed":false,"userId":7}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.CreateGoal(context.Background(), models.CreateGoalRequest{
		Title: "Run", StartDate: "2024-01-01", Deadline: "2024-02-01", UserID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "2024-02-01", got.Deadline.String())
	assert.Equal(t, int64(7), got.UserID)
}

func TestSetCompletion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/goals/3/completed", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, true, body["completed"])
		assert.EqualValues(t, 100, body["progress"])

		writeJSON(t, w, http.StatusOK, models.Goal{ID: 3, Completed: true, Progress: 100})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.SetCompletion(context.Background(), 3, models.SetCompletionRequest{Completed: true, Progress: 100})

	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestSetProgress_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals/99/progress", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Goal not found."})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.SetProgress(context.Background(), 99, 40)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Goal not found.")
}

func TestListPaged_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pagedgoals", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("userId"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		writeJSON(t, w, http.StatusOK, models.GoalPage{
			Goals:       []models.GoalSummary{{ID: 6, Title: "six"}},
			TotalPages:  2,
			CurrentPage: 2,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListPaged(context.Background(), 7, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPages)
	assert.Equal(t, 2, got.CurrentPage)
	require.Len(t, got.Goals, 1)
	assert.Equal(t, int64(6), got.Goals[0].ID)
}

func TestListAll_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListAll(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetGoal_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch goal."})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetGoal(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestReplaceGoal_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/goals/4", r.URL.Path)
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "You do not have permission to update this goal."})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ReplaceGoal(context.Background(), 4, models.ReplaceGoalRequest{Title: "x", UserID: 8})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteGoal_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/goals/5", r.URL.Path)

		body := decodeBody(t, r)
		assert.EqualValues(t, 7, body["userId"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.DeleteGoal(context.Background(), 5, 7))
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "v1.2.3\n")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	got, err := c.Version(context.Background(), GoalService)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)

	_, err = c.Version(context.Background(), Service("billing"))
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestUnexpectedStatus_FallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.GetGoal(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, "http 405: Method Not Allowed", err.Error())
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "json error field", body: `{"error":"Goal not found."}`, want: "Goal not found."},
		{name: "plain text", body: "boom\n", want: "boom"},
		{name: "json without error", body: `{"message":"hi"}`, want: `{"message":"hi"}`},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:3009", want: "http://localhost:3009"},
		{name: "full url with slash", raw: "https://goals.example.com/", want: "https://goals.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:3008 ", want: "http://127.0.0.1:3008"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
