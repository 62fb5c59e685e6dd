package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeDependency, cause, "insert failed")

	assert.Equal(t, CodeDependency, err.Code())
	assert.Equal(t, "insert failed", err.Message())
	assert.ErrorIs(t, err, cause)
}

func TestAsFindsTypedError(t *testing.T) {
	inner := New(CodeNotFound, "no item found with ID: 7")
	wrapped := fmt.Errorf("operation: %w", inner)

	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())

	assert.Nil(t, As(stdErrors.New("plain")))
	assert.Nil(t, As(nil))
}

func TestMetadataForFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	assert.Equal(t, metadataByCode[CodeInternal], meta)

	notFound := MetadataFor(CodeNotFound)
	assert.True(t, notFound.DetailsAllowed)
	assert.True(t, notFound.Retryable)
}
