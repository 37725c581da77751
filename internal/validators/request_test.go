package validators

import (
	"context"
	"testing"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGoalInput() models.GoalInput {
	return models.GoalInput{
		Title:     "Run a marathon",
		StartDate: "2024-01-01",
		Deadline:  "2024-10-01",
		UserID:    1,
	}
}

func TestRequestValidator_GoalInput(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(in *models.GoalInput)
		wantErr error
	}{
		{name: "valid", mutate: func(in *models.GoalInput) {}},
		{name: "rfc3339 start date", mutate: func(in *models.GoalInput) { in.StartDate = "2024-01-01T10:00:00Z" }},
		{name: "missing title", mutate: func(in *models.GoalInput) { in.Title = "" }, wantErr: ErrValidation},
		{name: "missing user", mutate: func(in *models.GoalInput) { in.UserID = 0 }, wantErr: ErrValidation},
		{name: "empty start date", mutate: func(in *models.GoalInput) { in.StartDate = "" }, wantErr: ErrInvalidDate},
		{name: "garbage deadline", mutate: func(in *models.GoalInput) { in.Deadline = "next friday" }, wantErr: ErrInvalidDate},
		{name: "impossible date", mutate: func(in *models.GoalInput) { in.Deadline = "2024-02-30" }, wantErr: ErrInvalidDate},
		{
			name: "date error wins over missing title",
			mutate: func(in *models.GoalInput) {
				in.Title = ""
				in.StartDate = "01/02/2024"
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validGoalInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_PointerInput(t *testing.T) {
	v := NewRequestValidator()

	in := validGoalInput()
	assert.NoError(t, v.Validate(context.Background(), &in))

	in.Title = ""
	err := v.Validate(context.Background(), &in)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestRequestValidator_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	in := models.GoalInput{StartDate: "2024-01-01", Deadline: "2024-01-02"}
	assert.NoError(t, v.Validate(context.Background(), in, "startDate", "deadline"))

	in.Deadline = "bad"
	assert.ErrorIs(t, v.Validate(context.Background(), in, "deadline"), ErrInvalidDate)
	assert.NoError(t, v.Validate(context.Background(), in, "startDate"))
}

func TestRequestValidator_Register(t *testing.T) {
	v := NewRequestValidator()

	ok := models.RegisterRequest{Username: "ann", Email: "ann@example.com", Password: "pw"}
	assert.NoError(t, v.Validate(context.Background(), ok))

	err := v.Validate(context.Background(), models.RegisterRequest{Username: "ann"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestRequestValidator_Login(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), &models.LoginRequest{Email: "a@b.c", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.c"}), ErrValidation)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Goal{}), ErrUnsupportedType)
}
