package coincidence_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkohler/coincidence"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", coincidence.ErrorCode(nil))

	err := coincidence.Errorf(coincidence.ENOTFOUND, "article %q not found", "Missing")
	assert.Equal(t, coincidence.ENOTFOUND, coincidence.ErrorCode(err))

	// Wrapped application errors still expose their code.
	wrapped := fmt.Errorf("fetch failed: %w", err)
	assert.Equal(t, coincidence.ENOTFOUND, coincidence.ErrorCode(wrapped))

	assert.Equal(t, coincidence.EINTERNAL, coincidence.ErrorCode(errors.New("plain error")))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", coincidence.ErrorMessage(nil))

	err := coincidence.Errorf(coincidence.EUNAVAILABLE, "wikipedia unreachable")
	assert.Equal(t, "wikipedia unreachable", coincidence.ErrorMessage(err))

	assert.Equal(t, "Internal error.", coincidence.ErrorMessage(errors.New("plain error")))
}
