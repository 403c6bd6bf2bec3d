package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRequest(body string, limit int64) (*httptest.ResponseRecorder, UpdateLinePreferencesRequest, error) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/manage/update-line-preferences", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var req UpdateLinePreferencesRequest
	err := DecodeAndValidateRequest(r, w, &req, "test")
	return w, req, err
}

func TestDecodeAndValidateRequest(t *testing.T) {
	w, req, err := decodeRequest(`{"etag":"`+testETag+`","favoriteLines":["central"]}`, math.MaxInt32)

	require.NoError(t, err)
	assert.Equal(t, testETag, req.ETag)
	assert.Equal(t, []string{"central"}, req.FavoriteLines)
	assert.Zero(t, w.Body.Len(), "nothing is written on success")
}

func TestDecodeAndValidateRequest_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		limit       int64
		wantStatus  int
		wantMessage string
	}{
		{"empty body", "", 1024, http.StatusBadRequest, ErrMsgEmptyRequest},
		{"malformed", `{"etag":`, 1024, http.StatusBadRequest, ErrMsgInvalidRequest},
		{"too large", `{"etag":"` + testETag + `"}`, 8, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge},
		{"invalid", `{"etag":"nope"}`, 1024, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, err := decodeRequest(tt.body, tt.limit)

			require.Error(t, err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, ContentTypeJSON, w.Header().Get(HeaderContentType))
}
