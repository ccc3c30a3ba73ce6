// Package geo resolves the device position used for coordinate weather
// lookups.
package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/constants"
)

// Code classifies a geolocation failure. The first three values follow the
// numbering browsers use for position errors.
type Code int

const (
	CodeUnknown Code = iota
	CodePermissionDenied
	CodePositionUnavailable
	CodeTimeout
	CodeUnsupported
)

func (c Code) String() string {
	switch c {
	case CodePermissionDenied:
		return "permission_denied"
	case CodePositionUnavailable:
		return "position_unavailable"
	case CodeTimeout:
		return "timeout"
	case CodeUnsupported:
		return "unsupported"
	}
	return "unknown"
}

// Error is returned by every Locator failure.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation %s: %v", e.Code, e.Err)
	}
	return "geolocation " + e.Code.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Reason is the user-facing explanation shown next to the fallback weather.
func (e *Error) Reason() string {
	switch e.Code {
	case CodePermissionDenied:
		return "用户拒绝定位"
	case CodePositionUnavailable:
		return "位置获取失败"
	case CodeTimeout:
		return "定位超时"
	case CodeUnsupported:
		return "不支持定位"
	}
	return "定位异常"
}

// CodeOf extracts the failure code from err, or CodeUnknown.
func CodeOf(err error) Code {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return CodeUnknown
}

// Position is a resolved device location.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Label     string    `json:"label,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Options mirrors the knobs of a browser position request.
type Options struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultOptions returns the low-accuracy, 7 second, 60 second cache options.
func DefaultOptions() Options {
	return Options{
		EnableHighAccuracy: constants.GeoHighAccuracy,
		Timeout:            constants.GeoTimeout,
		MaximumAge:         constants.GeoMaxAge,
	}
}

// Locator resolves the current position.
type Locator interface {
	Locate(ctx context.Context, opts Options) (Position, error)
}

type locateResult struct {
	pos Position
	err error
}

// Locate asks l for a position and never waits longer than opts.Timeout.
// Every failure is returned as *Error: a nil locator is CodeUnsupported and an
// expired wait is CodeTimeout.
func Locate(ctx context.Context, l Locator, opts Options) (Position, error) {
	if l == nil {
		return Position{}, &Error{Code: CodeUnsupported}
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	done := make(chan locateResult, 1)
	go func() {
		pos, err := l.Locate(ctx, opts)
		done <- locateResult{pos: pos, err: err}
	}()

	select {
	case res := <-done:
		if res.err == nil {
			return res.pos, nil
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Position{}, &Error{Code: CodeTimeout, Err: res.err}
		}
		var gerr *Error
		if errors.As(res.err, &gerr) {
			return Position{}, gerr
		}
		return Position{}, &Error{Code: CodeUnknown, Err: res.err}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Position{}, &Error{Code: CodeTimeout, Err: ctx.Err()}
		}
		return Position{}, &Error{Code: CodeUnknown, Err: ctx.Err()}
	}
}

// Static always reports the configured coordinates.
type Static struct {
	Latitude  float64
	Longitude float64
	Label     string
	Now       func() time.Time
}

// Locate implements Locator.
func (s Static) Locate(ctx context.Context, opts Options) (Position, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Position{Latitude: s.Latitude, Longitude: s.Longitude, Label: s.Label, Timestamp: now()}, nil
}

// Unsupported is used when the host has no way to locate itself.
type Unsupported struct{}

// Locate implements Locator.
func (Unsupported) Locate(ctx context.Context, opts Options) (Position, error) {
	return Position{}, &Error{Code: CodeUnsupported}
}

// Denied is used when the user switched geolocation off.
type Denied struct{}

// Locate implements Locator.
func (Denied) Locate(ctx context.Context, opts Options) (Position, error) {
	return Position{}, &Error{Code: CodePermissionDenied}
}

// Func adapts a plain function to the Locator interface.
type Func func(ctx context.Context, opts Options) (Position, error)

// Locate calls f.
func (f Func) Locate(ctx context.Context, opts Options) (Position, error) {
	return f(ctx, opts)
}
