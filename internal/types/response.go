package types

import (
	"encoding/json"
)

// Response is the envelope every service verb returns. Callers branch on
// Success only. Error is set iff Success is false. Count is the
// filtered-but-unpaginated total and is set whenever a page was requested.
type Response[T any] struct {
	Data    T
	Error   string
	Success bool
	Count   *int

	cause error
}

// responseJSON is the wire form. Data is a pointer so that it is present on
// success even when empty and absent on failure.
type responseJSON[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
}

// OK wraps a successful payload
func OK[T any](data T) Response[T] {
	return Response[T]{Data: data, Success: true}
}

// OKWithCount wraps a successful page together with the total row count
func OKWithCount[T any](data T, count int) Response[T] {
	return Response[T]{Data: data, Success: true, Count: &count}
}

// Fail builds a failed envelope. message is what the caller sees; cause is
// kept for status mapping and logging and never serialised.
func Fail[T any](cause error, message string) Response[T] {
	return Response[T]{Error: message, Success: false, cause: cause}
}

// Cause returns the error that produced a failed envelope
func (r Response[T]) Cause() error {
	return r.cause
}

// GetCount returns the total row count, or -1 when none was computed
func (r Response[T]) GetCount() int {
	if r.Count == nil {
		return -1
	}
	return *r.Count
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	out := responseJSON[T]{
		Success: r.Success,
		Count:   r.Count,
	}
	if r.Success {
		out.Data = &r.Data
	} else {
		out.Error = r.Error
	}
	return json.Marshal(out)
}

func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var in responseJSON[T]
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	var zero T
	r.Data = zero
	if in.Data != nil {
		r.Data = *in.Data
	}
	r.Error = in.Error
	r.Success = in.Success
	r.Count = in.Count
	r.cause = nil
	return nil
}
