// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The goal-tracker Authors

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NumericID is an int64 identifier that decodes from either a JSON number
// or a numeric JSON string. Browser frontends often keep ids in local
// storage and send them back as strings.
type NumericID int64

// UnmarshalJSON implements [json.Unmarshaler].
func (n *NumericID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	id, err := ParseNumericID(raw)
	if err != nil {
		return err
	}

	*n = id
	return nil
}

// ParseNumericID parses an integer id. Whole-valued decimals such as "7.0"
// are accepted; anything with a fractional part is rejected.
func ParseNumericID(s string) (NumericID, error) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumericID(id), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric id %q: %w", s, err)
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("invalid numeric id %q: not an integer", s)
	}

	return NumericID(int64(f)), nil
}

// Int64 returns n as a plain int64.
func (n NumericID) Int64() int64 {
	return int64(n)
}

// CreateGoalRequest is the body of POST /goals.
type CreateGoalRequest struct {
	Title       string    `json:"title"`
	StartDate   string    `json:"startDate"`
	Deadline    string    `json:"deadline"`
	Description *string   `json:"description,omitempty"`
	Progress    *int      `json:"progress,omitempty"`
	UserID      NumericID `json:"userId"`
}

// Input converts the wire request into the service input.
func (r CreateGoalRequest) Input() GoalInput {
	return GoalInput{
		Title:       r.Title,
		StartDate:   r.StartDate,
		Deadline:    r.Deadline,
		Description: r.Description,
		Progress:    r.Progress,
		UserID:      r.UserID.Int64(),
	}
}

// ReplaceGoalRequest is the body of PUT /goals/{id}.
type ReplaceGoalRequest = CreateGoalRequest

// SetCompletionRequest is the body of PATCH /goals/{id}/completed.
type SetCompletionRequest struct {
	Completed bool `json:"completed"`
	Progress  int  `json:"progress"`
}

// SetProgressRequest is the body of PATCH /goals/{id}/progress.
type SetProgressRequest struct {
	Progress int `json:"progress"`
}

// DeleteGoalRequest is the body of DELETE /goals/{id}.
type DeleteGoalRequest struct {
	UserID NumericID `json:"userId"`
}
