package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess_FlattensFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "created", Fields{"user": map[string]string{"email": "a@example.com"}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, "a@example.com", body["user"].(map[string]interface{})["email"])
}

func TestSuccess_StatusCannotBeOverridden(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, "", Fields{"status": false})

	body := decode(t, rec)
	assert.Equal(t, true, body["status"])
	assert.NotContains(t, body, "message")
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, "email is required", body["errors"].(map[string]interface{})["email"])
}

func TestError_OmitsEmptyErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "")

	body := decode(t, rec)
	assert.Equal(t, "Unauthorized", body["message"])
	assert.NotContains(t, body, "errors")
}
