package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ZaidAmirMahdi10/goal-tracker/internal/config"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/logger"
	"github.com/ZaidAmirMahdi10/goal-tracker/internal/utils"
	"github.com/ZaidAmirMahdi10/goal-tracker/models"
)

type httpClient struct {
	users *utils.HTTPClient
	goals *utils.HTTPClient
}

// NewHTTPClient constructs the HTTP implementation of [Client]. Both base
// URLs are normalised; a bare "host:port" gets the http scheme.
func NewHTTPClient(cfg config.ClientConfig, logger *logger.Logger) (Client, error) {
	usersURL, err := normalizeBaseURL(cfg.UserServiceAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid user service address: %w", err)
	}

	goalsURL, err := normalizeBaseURL(cfg.GoalServiceAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid goal service address: %w", err)
	}

	logger.Debug().
		Str("func", "NewHTTPClient").
		Str("user_service", usersURL).
		Str("goal_service", goalsURL).
		Msg("service client created")

	return &httpClient{
		users: utils.NewHTTPClient(usersURL, cfg.RequestTimeout),
		goals: utils.NewHTTPClient(goalsURL, cfg.RequestTimeout),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [Client]. It POSTs the credentials to /register.
func (h *httpClient) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.users.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [Client]. It POSTs the credentials to /login.
func (h *httpClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var session models.LoginResponse

	resp, err := h.users.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return session, nil
}

func (h *httpClient) CreateGoal(ctx context.Context, req models.CreateGoalRequest) (models.Goal, error) {
	var goal models.Goal

	resp, err := h.goals.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&goal).
		Post("/goals")
	if err != nil {
		return models.Goal{}, fmt.Errorf("create goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (h *httpClient) SetCompletion(ctx context.Context, id int64, req models.SetCompletionRequest) (models.Goal, error) {
	return h.patchGoal(ctx, "/goals/{id}/completed", id, req)
}

func (h *httpClient) SetProgress(ctx context.Context, id int64, progress int) (models.Goal, error) {
	return h.patchGoal(ctx, "/goals/{id}/progress", id, models.SetProgressRequest{Progress: progress})
}

func (h *httpClient) patchGoal(ctx context.Context, path string, id int64, body any) (models.Goal, error) {
	var goal models.Goal

	resp, err := h.goals.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(body).
		SetResult(&goal).
		Patch(path)
	if err != nil {
		return models.Goal{}, fmt.Errorf("patch goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (h *httpClient) ListPaged(ctx context.Context, userID int64, page int) (models.GoalPage, error) {
	var goalPage models.GoalPage

	resp, err := h.goals.R().
		SetContext(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&goalPage).
		Get("/pagedgoals")
	if err != nil {
		return models.GoalPage{}, fmt.Errorf("list paged goals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GoalPage{}, err
	}

	return goalPage, nil
}

func (h *httpClient) ListAll(ctx context.Context, userID int64) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)

	resp, err := h.goals.R().
		SetContext(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&goals).
		Get("/goals")
	if err != nil {
		return nil, fmt.Errorf("list goals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return goals, nil
}

func (h *httpClient) GetGoal(ctx context.Context, id int64) (models.Goal, error) {
	var goal models.Goal

	resp, err := h.goals.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&goal).
		Get("/goals/{id}")
	if err != nil {
		return models.Goal{}, fmt.Errorf("get goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (h *httpClient) ReplaceGoal(ctx context.Context, id int64, req models.ReplaceGoalRequest) (models.Goal, error) {
	var goal models.Goal

	resp, err := h.goals.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		SetResult(&goal).
		Put("/goals/{id}")
	if err != nil {
		return models.Goal{}, fmt.Errorf("replace goal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func (h *httpClient) DeleteGoal(ctx context.Context, id, userID int64) error {
	resp, err := h.goals.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(models.DeleteGoalRequest{UserID: models.NumericID(userID)}).
		Delete("/goals/{id}")
	if err != nil {
		return fmt.Errorf("delete goal request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [Client]. It GETs the plain-text /version endpoint.
func (h *httpClient) Version(ctx context.Context, service Service) (string, error) {
	var client *utils.HTTPClient
	switch service {
	case UserService:
		client = h.users
	case GoalService:
		client = h.goals
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownService, service)
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
