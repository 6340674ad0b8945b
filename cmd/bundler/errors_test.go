package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind errorKind
		wantMsg  string
	}{
		{
			name:     "missing output",
			err:      errOutputRequired,
			wantKind: errMissingOutput,
			wantMsg:  "ERROR: Output file path is required.",
		},
		{
			name:     "not exist",
			err:      fmt.Errorf("failed to create out.txt: %w", &fs.PathError{Op: "open", Path: "x/out.txt", Err: fs.ErrNotExist}),
			wantKind: errDirectoryNotFound,
			wantMsg:  "ERROR: Invalid directory path.",
		},
		{
			name:     "permission",
			err:      fmt.Errorf("failed to lock: %w", os.ErrPermission),
			wantKind: errPermissionDenied,
			wantMsg:  "ERROR: No permission to write to this location.",
		},
		{
			name:     "anything else",
			err:      errors.New("disk on fire"),
			wantKind: errUnknown,
			wantMsg:  "ERROR: disk on fire",
		},
		{
			name:     "already classified",
			err:      fmt.Errorf("wrapped: %w", &bundleError{Kind: errPermissionDenied, Err: errors.New("nope")}),
			wantKind: errPermissionDenied,
			wantMsg:  "ERROR: No permission to write to this location.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := classifyError(tt.err)
			assert.Equal(t, tt.wantKind, be.Kind)
			assert.Equal(t, tt.wantMsg, be.Message())
		})
	}

	assert.Nil(t, classifyError(nil))
}

func TestBundleErrorUnwrap(t *testing.T) {
	be := &bundleError{Kind: errDirectoryNotFound, Err: fs.ErrNotExist}
	assert.ErrorIs(t, be, fs.ErrNotExist)
	assert.Equal(t, fs.ErrNotExist.Error(), be.Error())
	assert.Equal(t, "ERROR: Output file path is required.", errOutputRequired.Error())
}
