package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindPolicyViolation, KindOf(PolicyViolation("not allowed")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("forbidden")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom", errors.New("cause"))))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("listing likes: %w", NotFound("like not found"))

	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.Equal(t, "like not found", Message(err))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(PolicyViolation("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Authorization("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	cause := errors.New("pq: connection refused")

	assert.Equal(t, "internal server error", Message(Internal("query failed", cause)))
	assert.Equal(t, "internal server error", Message(cause))
	assert.Equal(t, "bad input", Message(Validation("bad input")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Internal("wrapped", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "root cause")
}
