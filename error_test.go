package sitegist_test

import (
	"testing"

	"github.com/fwojciec/sitegist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitegist.Errorf(sitegist.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, sitegist.ENOTFOUND, sitegist.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", sitegist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitegist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitegist.ErrorMessage(nil))
}
