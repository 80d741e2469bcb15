// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "key not found",
			wantStr: "[NOT_FOUND] key not found",
		},
		{
			name:    "source_unavailable_error",
			code:    errors.ErrSourceUnavailable,
			message: "config file does not exist",
			wantStr: "[SOURCE_UNAVAILABLE] config file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigInvalid, "Failed to deserialize color: %s", "not-a-color")
	assert.Equal(t, "Failed to deserialize color: not-a-color", err.Message)
	assert.Equal(t, "[CONFIG_INVALID] Failed to deserialize color: not-a-color", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigParse, "invalid yaml")

		assert.Equal(t, errors.ErrConfigParse, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_PARSE] invalid yaml: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileAccess, "cannot open %s", "/tmp/config.yaml")
		assert.Equal(t, "[FILE_ACCESS] cannot open /tmp/config.yaml: base error", err.Error())
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSourceUnavailable, "missing").
		WithDetail("path", "/test/config.yaml").
		WithDetail("source", "explicit")

	assert.Equal(t, "/test/config.yaml", err.Details["path"])
	assert.Equal(t, "explicit", err.Details["source"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with CheatnavError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrConfigInvalid, "bad color"),
			code:     errors.ErrConfigInvalid,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrConfigInvalid, "bad color"),
			code:     errors.ErrConfigParse,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDefaultPathUnavailable,
		errors.GetErrorCode(errors.New(errors.ErrDefaultPathUnavailable, "no home")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	sourceErr := errors.Wrap(fileErr, errors.ErrSourceUnavailable, "failed to open config")

	assert.True(t, errors.IsErrorCode(sourceErr, errors.ErrSourceUnavailable))

	var cnErr *errors.CheatnavError
	require.True(t, stderrors.As(sourceErr.Unwrap(), &cnErr))
	assert.Equal(t, errors.ErrFileAccess, cnErr.Code)

	assert.True(t, stderrors.Is(sourceErr, rootCause))
}

func TestConfigOrigin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantSource string
		wantPath   string
	}{
		{
			name: "file source",
			err: errors.New(errors.ErrConfigInvalid, "bad color").
				WithDetail(errors.DetailSource, "explicit-path").
				WithDetail(errors.DetailPath, "/etc/cheatnav.yaml"),
			wantSource: "explicit-path",
			wantPath:   "/etc/cheatnav.yaml",
		},
		{
			name:       "inline source has no path",
			err:        errors.New(errors.ErrConfigParse, "bad yaml").WithDetail(errors.DetailSource, "inline"),
			wantSource: "inline",
		},
		{
			name: "wrapped by a plain error",
			err: fmt.Errorf("startup: %w", errors.New(errors.ErrSourceUnavailable, "missing").
				WithDetail(errors.DetailSource, "default-path").
				WithDetail(errors.DetailPath, "/home/u/.config/cheatnav/config.yaml")),
			wantSource: "default-path",
			wantPath:   "/home/u/.config/cheatnav/config.yaml",
		},
		{name: "no details", err: errors.New(errors.ErrInternal, "boom")},
		{name: "not coded", err: stderrors.New("plain")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, path := errors.ConfigOrigin(tt.err)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
