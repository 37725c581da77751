package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/adapter"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/mock"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, token string) (*App, *mock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	c := mock.NewMockClient(ctrl)
	return NewApp(c, models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"), token, logger.Nop()), c
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := app.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func signedToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(userID, time.Hour, "secret", time.Now())
	require.NoError(t, err)
	return token.String()
}

func TestRegister(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"}).
		Return(nil)

	out, err := run(t, app, "register", "--username", "alice", "--email", "a@x.io", "--password", "pw")

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully\n", out)
}

func TestLogin_PrintsSession(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "a@x.io", Password: "pw"}).
		Return(models.LoginResponse{Success: true, Token: "tok", ID: 7, Username: "alice"}, nil)

	out, err := run(t, app, "login", "--email", "a@x.io", "--password", "pw")
	require.NoError(t, err)

	var got models.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, int64(7), got.ID)
}

func TestLogin_ErrorIsReturned(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, adapter.ErrBadRequest)

	_, err := run(t, app, "login", "--email", "a@x.io", "--password", "bad")

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}

func TestCreate_OptionalFieldsOnlyWhenGiven(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateGoalRequest) (models.Goal, error) {
			assert.Equal(t, "Run", req.Title)
			assert.Equal(t, "2024-01-01", req.StartDate)
			assert.Equal(t, "2024-02-01", req.Deadline)
			assert.Equal(t, models.NumericID(7), req.UserID)
			assert.Nil(t, req.Description)
			require.NotNil(t, req.Progress)
			assert.Equal(t, 0, *req.Progress)
			return models.Goal{ID: 1, Title: "Run", UserID: 7}, nil
		})

	out, err := run(t, app, "create", "--user-id", "7",
		"--title", "Run", "--start", "2024-01-01", "--deadline", "2024-02-01", "--progress", "0")

	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Run"`)
}

func TestList_UserIDFromToken(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().ListAll(gomock.Any(), int64(42)).Return([]models.Goal{}, nil)

	out, err := run(t, app, "list", "--token", signedToken(t, 42))

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestList_DefaultToken(t *testing.T) {
	app, c := newTestApp(t, signedToken(t, 9))
	c.EXPECT().ListAll(gomock.Any(), int64(9)).Return(nil, nil)

	_, err := run(t, app, "list")

	require.NoError(t, err)
}

func TestList_UserIDWinsOverToken(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().ListAll(gomock.Any(), int64(3)).Return(nil, nil)

	_, err := run(t, app, "list", "--user-id", "3", "--token", signedToken(t, 42))

	require.NoError(t, err)
}

func TestGoalCommands_IdentityErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no identity", args: []string{"list"}, want: ErrNoIdentity},
		{name: "garbage token", args: []string{"page", "--token", "not-a-jwt"}, want: ErrInvalidToken},
		{name: "delete without identity", args: []string{"delete", "3"}, want: ErrNoIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, "")
			_, err := run(t, app, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPage(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		ListPaged(gomock.Any(), int64(7), 2).
		Return(models.GoalPage{Goals: []models.GoalSummary{}, TotalPages: 2, CurrentPage: 2}, nil)

	out, err := run(t, app, "page", "--user-id", "7", "--page", "2")

	require.NoError(t, err)
	assert.Contains(t, out, `"currentPage": 2`)
}

func TestGet_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-4"} {
		t.Run(arg, func(t *testing.T) {
			app, _ := newTestApp(t, "")
			_, err := run(t, app, "get", "--", arg)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().GetGoal(gomock.Any(), int64(5)).Return(models.Goal{}, adapter.ErrNotFound)

	_, err := run(t, app, "get", "5")

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestProgress(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().SetProgress(gomock.Any(), int64(5), 60).Return(models.Goal{ID: 5, Progress: 60}, nil)

	out, err := run(t, app, "progress", "5", "--value", "60")

	require.NoError(t, err)
	assert.Contains(t, out, `"progress": 60`)
}

func TestProgress_ValueRequired(t *testing.T) {
	app, _ := newTestApp(t, "")

	_, err := run(t, app, "progress", "5")

	assert.Error(t, err)
}

func TestComplete_Defaults(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		SetCompletion(gomock.Any(), int64(5), models.SetCompletionRequest{Completed: true, Progress: 100}).
		Return(models.Goal{ID: 5, Completed: true, Progress: 100}, nil)

	_, err := run(t, app, "complete", "5")

	require.NoError(t, err)
}

func TestComplete_Reopen(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		SetCompletion(gomock.Any(), int64(5), models.SetCompletionRequest{Completed: false, Progress: 30}).
		Return(models.Goal{ID: 5, Progress: 30}, nil)

	_, err := run(t, app, "complete", "5", "--completed=false", "--progress", "30")

	require.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().
		ReplaceGoal(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req models.ReplaceGoalRequest) (models.Goal, error) {
			assert.Equal(t, models.NumericID(7), req.UserID)
			require.NotNil(t, req.Description)
			assert.Equal(t, "", *req.Description)
			assert.Nil(t, req.Progress)
			return models.Goal{ID: 5}, nil
		})

	_, err := run(t, app, "update", "5", "--user-id", "7",
		"--title", "Swim", "--start", "2024-01-01", "--deadline", "2024-03-01", "--description", "")

	require.NoError(t, err)
}

func TestDelete(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().DeleteGoal(gomock.Any(), int64(5), int64(7)).Return(nil)

	out, err := run(t, app, "delete", "5", "--user-id", "7")

	require.NoError(t, err)
	assert.Equal(t, "Goal 5 deleted\n", out)
}

func TestDelete_Forbidden(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().DeleteGoal(gomock.Any(), int64(5), int64(8)).Return(adapter.ErrForbidden)

	_, err := run(t, app, "delete", "5", "--user-id", "8")

	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestVersion(t *testing.T) {
	app, _ := newTestApp(t, "")

	out, err := run(t, app, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build version: v1.0.0\n")
	assert.Contains(t, out, "Build commit: abc123\n")
	assert.NotContains(t, out, "service version")
}

func TestVersion_Service(t *testing.T) {
	app, c := newTestApp(t, "")
	c.EXPECT().Version(gomock.Any(), adapter.GoalService).Return("v2.0.0", nil)

	out, err := run(t, app, "version", "--service", "goal")

	require.NoError(t, err)
	assert.Contains(t, out, "goal service version: v2.0.0\n")
}

func TestVersion_MissingBuildInfo(t *testing.T) {
	app := NewApp(nil, models.AppBuildInfo{}, "", logger.Nop())

	out, err := run(t, app, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build date: N/A\n")
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, "")

	_, err := run(t, app, "teleport")

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoIdentity))
}
