package figtag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkupSyntaxError(t *testing.T) {
	err := NewMarkupSyntaxError("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
	assert.Contains(t, err.Error(), Syntax)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	markup, ok := customErr.GetMetadata(MetaKeyMarkup)
	assert.True(t, ok)
	assert.Equal(t, "bogus", markup)

	assert.True(t, IsMarkupSyntaxError(err))
	assert.False(t, IsResourceNotFoundError(err))
	assert.False(t, IsImageDecodeError(err))
}

func TestNewResourceNotFoundError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("stat failed")
		err := NewResourceNotFoundError("content/a.png", cause)
		assert.Contains(t, err.Error(), "content/a.png")
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsResourceNotFoundError(err))
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewResourceNotFoundError("content/b.png", nil)
		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		path, ok := customErr.GetMetadata(MetaKeyPath)
		assert.True(t, ok)
		assert.Equal(t, "content/b.png", path)
		assert.True(t, IsResourceNotFoundError(err))
	})
}

func TestErrorKinds_ThroughWrapping(t *testing.T) {
	inner := NewResourceNotFoundError("content/a.png", nil)
	wrapped := NewResolverError(TagNameImage, Position{Line: 3, Column: 1}, inner)

	assert.True(t, IsResourceNotFoundError(wrapped))
	assert.False(t, IsMarkupSyntaxError(wrapped))

	stdWrapped := fmt.Errorf("outer: %w", NewMarkupSyntaxError("x"))
	assert.True(t, IsMarkupSyntaxError(stdWrapped))

	assert.False(t, IsMarkupSyntaxError(nil))
	assert.False(t, IsMarkupSyntaxError(errors.New("plain")))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "line 2, column 7", Position{Line: 2, Column: 7}.String())
}
