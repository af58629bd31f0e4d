// Package model holds the directory entities exchanged with the external
// API. The API owns and mutates all of them; the console only keeps
// transient in-memory copies.
package model

// Envelope is the uniform response wrapper used by every directory API
// call: {success, data, message, error}. Data is only meaningful when
// Success is true; Error carries the API's rejection message otherwise.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Empty is the data type for envelopes that carry no payload (logout,
// delete).
type Empty struct{}

// Ok reports whether the call succeeded and returned a payload.
func (e Envelope[T]) Ok() bool {
	return e.Success && e.Data != nil
}

// ErrorMessage returns the most specific failure text available.
func (e Envelope[T]) ErrorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// Fail builds a failure envelope with the given error message. The client
// adapter uses it to fold transport and decode failures into the same
// shape the API itself produces, so callers only ever branch on Success.
func Fail[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Error: msg}
}
