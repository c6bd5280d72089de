package opengate

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the opengate package.
var (
	// ErrUnknownProgram indicates a handler program token did not match any
	// recognized program.
	ErrUnknownProgram = errors.New("opengate: unknown program name")

	// ErrForbiddenURL indicates the requested URL was denied by the scope.
	ErrForbiddenURL = errors.New("opengate: url not allowed by scope")

	// ErrForbiddenPath indicates the requested path was denied by the scope.
	ErrForbiddenPath = errors.New("opengate: path not allowed by scope")

	// ErrPathResolution indicates a path could not be normalized, so the
	// scope could not be evaluated. Distinct from a denial.
	ErrPathResolution = errors.New("opengate: cannot resolve path")

	// ErrOpenFailed indicates the platform opener failed to launch the
	// handler for a permitted resource.
	ErrOpenFailed = errors.New("opengate: failed to launch handler")

	// ErrConfigInvalid indicates the provided configuration failed validation.
	ErrConfigInvalid = errors.New("opengate: invalid configuration")
)

// UnknownProgramError is returned when a program token cannot be parsed.
// It wraps ErrUnknownProgram so that errors.Is(err, ErrUnknownProgram) works.
type UnknownProgramError struct {
	// Name is the token that did not match any recognized program.
	Name string
}

func (e *UnknownProgramError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownProgram.Error(), e.Name)
}

func (e *UnknownProgramError) Unwrap() error {
	return ErrUnknownProgram
}

// ForbiddenURLError is returned when a URL is denied by the effective scope.
// It wraps ErrForbiddenURL so that errors.Is(err, ErrForbiddenURL) works.
type ForbiddenURLError struct {
	// URL is the original requested URL, exactly as the caller supplied it.
	URL string
}

func (e *ForbiddenURLError) Error() string {
	return fmt.Sprintf("%s: %q", ErrForbiddenURL.Error(), e.URL)
}

func (e *ForbiddenURLError) Unwrap() error {
	return ErrForbiddenURL
}

// ForbiddenPathError is returned when a path is denied by the effective scope.
// It wraps ErrForbiddenPath so that errors.Is(err, ErrForbiddenPath) works.
type ForbiddenPathError struct {
	// Path is the original requested path, exactly as the caller supplied it.
	Path string
}

func (e *ForbiddenPathError) Error() string {
	return fmt.Sprintf("%s: %q", ErrForbiddenPath.Error(), e.Path)
}

func (e *ForbiddenPathError) Unwrap() error {
	return ErrForbiddenPath
}

// PathResolutionError is returned when a path cannot be normalized for
// matching. Callers should treat it as "cannot evaluate", not as a denial.
// It unwraps to both ErrPathResolution and the underlying cause.
type PathResolutionError struct {
	// Path is the original requested path.
	Path string
	// Err is the underlying normalization failure.
	Err error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrPathResolution.Error(), e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() []error {
	return []error{ErrPathResolution, e.Err}
}

// OpenError is returned when the platform opener fails to launch the handler.
// It unwraps to both ErrOpenFailed and the underlying cause.
type OpenError struct {
	// Resource is the URL or path that was being opened.
	Resource string
	// Err is the launch failure reported by the platform.
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrOpenFailed.Error(), e.Resource, e.Err)
}

func (e *OpenError) Unwrap() []error {
	return []error{ErrOpenFailed, e.Err}
}
