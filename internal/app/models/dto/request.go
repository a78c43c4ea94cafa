package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateUserRequest is the body of POST /api/admin/create-user. ClassID is a
// FlexInt because clients send it both as a JSON number and as a string.
type CreateUserRequest struct {
	Role     string   `json:"role" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Password string   `json:"password" binding:"required"`
	ClassID  *FlexInt `json:"class_id"`
	Dept     string   `json:"dept"`
	ClubName string   `json:"club_name"`
}

// CreateEventRequest is the body of POST /api/events. The payload is stored
// as supplied; no field is required.
type CreateEventRequest struct {
	OrganizerID *FlexInt               `json:"organizer_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// FlexInt is an int64 that unmarshals from either a JSON number or a numeric
// JSON string.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("value must be numeric")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", s)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns the underlying value.
func (f FlexInt) Int64() int64 {
	return int64(f)
}

var _ json.Unmarshaler = (*FlexInt)(nil)
