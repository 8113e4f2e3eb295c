package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amascaro08/FloHub/internal/logger"
)

func TestRunSuccess(t *testing.T) {
	r := NewRunner(logger.NoOp{})

	ran := false
	err := r.Run("extract", func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunWrapsFailure(t *testing.T) {
	r := NewRunner(nil)
	cause := errors.New("no such file")

	err := r.Run("read-input", func() error { return cause })
	require.Error(t, err)

	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "read-input", serr.Stage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "stage read-input failed")
}
