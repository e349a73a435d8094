package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Size  int    `json:"size" validate:"min=1,max=10"`
	Level string `json:"level" validate:"omitempty,oneof=low high"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"a","size":2}`},
		{name: "empty body", body: ``, wantErr: "request body is empty"},
		{name: "malformed", body: `{"name":`, wantErr: "invalid request payload"},
		{name: "unknown field", body: `{"name":"a","size":2,"extra":1}`, wantErr: "invalid request payload"},
		{name: "missing name", body: `{"size":2}`, wantErr: "Name is required"},
		{name: "size too big", body: `{"name":"a","size":11}`, wantErr: "Size must be at most 10"},
		{name: "bad enum", body: `{"name":"a","size":1,"level":"mid"}`, wantErr: "Level must be one of [low high]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst samplePayload
			err := DecodeJSON(req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "a", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSuccessAndErrorResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessResponse(rec, map[string]int{"count": 3}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var ok Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	assert.True(t, ok.Success)

	rec = httptest.NewRecorder()
	ErrorResponse(rec, "nope", http.StatusNotFound)

	var failed Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failed))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, failed.Success)
	assert.Equal(t, "nope", failed.Error)
}
