package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeConflict, "chain head moved")

	assert.True(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(err, CodeBadRequest))
	assert.False(t, HasCode(errors.New("plain"), CodeConflict))
}

func TestHasCodeSeesThroughWrapping(t *testing.T) {
	inner := New(CodeValidation, "field missing")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.True(t, HasCode(wrapped, CodeValidation))
	assert.Equal(t, CodeValidation, CodeOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("json: unsupported type")
	err := Wrap(CodeBadRequest, "payload is not JSON-encodable", cause)

	assert.True(t, HasCode(err, CodeBadRequest))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "payload is not JSON-encodable")
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("untagged")))
	assert.Empty(t, MessageOf(errors.New("untagged")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest: http.StatusBadRequest,
		CodeValidation: http.StatusUnprocessableEntity,
		CodeNotFound:   http.StatusNotFound,
		CodeConflict:   http.StatusConflict,
		CodeInternal:   http.StatusInternalServerError,
		Code("novel"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}
