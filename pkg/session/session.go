package session

import (
	"encoding/json"
	"maps"
	"math"
	"strconv"

	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

// Keys written by Rails into every session.
const (
	KeySessionID = "session_id"
	KeyCSRFToken = "_csrf_token"
	KeyUserID    = "user_id"
)

// Session is a read-only view over a verified session mapping.
type Session struct {
	values railscookie.Session
}

// New wraps values. The map is not copied.
func New(values railscookie.Session) *Session {
	if values == nil {
		values = railscookie.Session{}
	}
	return &Session{values: values}
}

// ID returns the Rails session id, if any.
func (s *Session) ID() string {
	v, _ := s.GetString(KeySessionID)
	return v
}

// CSRFToken returns the masked-token seed stored by Rails.
func (s *Session) CSRFToken() string {
	v, _ := s.GetString(KeyCSRFToken)
	return v
}

// UserID returns the signed-in user's id. Rails serialises integers as JSON
// numbers; numeric strings are accepted as well.
func (s *Session) UserID() (int64, bool) {
	v, ok := s.Get(KeyUserID)
	if !ok {
		return 0, false
	}

	switch id := v.(type) {
	case json.Number:
		n, err := id.Int64()
		return n, err == nil
	case float64:
		if id != math.Trunc(id) || id < math.MinInt64 || id >= 1<<63 {
			return 0, false
		}
		return int64(id), true
	case int:
		return int64(id), true
	case int64:
		return id, true
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// IsAuthenticated reports whether the session carries a usable user id.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.UserID()
	return ok
}

// Get returns the raw value stored under key.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.values == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the value under key if it is a string.
func (s *Session) GetString(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Values returns a shallow copy of the whole mapping.
func (s *Session) Values() railscookie.Session {
	if s == nil || s.values == nil {
		return railscookie.Session{}
	}
	return maps.Clone(s.values)
}
