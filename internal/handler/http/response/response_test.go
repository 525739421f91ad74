package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_EnvelopeOmitsEmptyFields(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"id": "entry-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "success")
	assert.Contains(t, raw, "data")
	assert.NotContains(t, raw, "message")
	assert.NotContains(t, raw, "error")
	assert.NotContains(t, raw, "meta")
}

func TestSuccessWithMeta_PaginationShape(t *testing.T) {
	w := httptest.NewRecorder()
	SuccessWithMeta(w, []string{}, &Meta{Page: 2, Limit: 20, TotalCount: 45, TotalPages: 3})

	var resp struct {
		Meta map[string]json.Number `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, json.Number("2"), resp.Meta["page"])
	assert.Equal(t, json.Number("20"), resp.Meta["limit"])
	assert.Equal(t, json.Number("45"), resp.Meta["total_count"])
	assert.Equal(t, json.Number("3"), resp.Meta["total_pages"])
}

func TestWriteJSON_EncodingFailureIsServerError(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels are not JSON-serializable, forcing the fallback path.
	Success(w, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ENCODING_ERROR", resp.Error.Code)
}

func TestErrorHelpers_StatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"created", func(w http.ResponseWriter) { Created(w, "done", nil) }, http.StatusCreated, ""},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "nope", nil) }, http.StatusBadRequest, "BAD_REQUEST"},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "nope") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "nope") }, http.StatusForbidden, "FORBIDDEN"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "nope") }, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "nope") }, http.StatusConflict, "CONFLICT"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "nope") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, w)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}
