package docconv_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docconv"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docconv.Errorf(docconv.EINVALID, "malformed %s input", "xml")

	assert.Equal(t, docconv.EINVALID, docconv.ErrorCode(err))
	assert.Equal(t, "malformed xml input", docconv.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docconv.ErrorCode(nil))
	})

	t.Run("returns EUNSUPPORTED for unsupported conversion", func(t *testing.T) {
		t.Parallel()

		err := &docconv.UnsupportedConversionError{Source: "PDF", Target: "docx"}

		assert.Equal(t, docconv.EUNSUPPORTED, docconv.ErrorCode(err))
	})

	t.Run("finds unsupported conversion through wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("converting: %w", &docconv.UnsupportedConversionError{Source: "a", Target: "b"})

		assert.Equal(t, docconv.EUNSUPPORTED, docconv.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for foreign errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docconv.EINTERNAL, docconv.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docconv.ErrorMessage(nil))
	})

	t.Run("keeps original format names", func(t *testing.T) {
		t.Parallel()

		err := &docconv.UnsupportedConversionError{Source: "Unsupported", Target: "FORMAT"}

		assert.Equal(t, "no converter available for Unsupported to FORMAT conversion", docconv.ErrorMessage(err))
	})

	t.Run("hides foreign error details", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", docconv.ErrorMessage(errors.New("boom")))
	})
}
