package httputil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total     int
		limit     int
		wantPages int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{12, 5, 3},
	}
	for _, tt := range tests {
		p := NewPagination(1, tt.limit, tt.total)
		assert.Equal(t, tt.wantPages, p.Pages, "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestWriteListEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, []string{"a"}, NewPagination(1, 20, 1))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got, "success")
	assert.Contains(t, got, "data")
	assert.Contains(t, got, "pagination")
	assert.NotContains(t, got, "query")
	assert.NotContains(t, got, "error")
}

func TestWriteSearchIncludesQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSearch(rec, "Breaking", []string{}, NewPagination(1, 20, 0))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Breaking", resp.Query)
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "Movie not found")

	assert.Equal(t, 404, rec.Code)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.JSONEq(t, `false`, string(got["success"]))
	assert.JSONEq(t, `"Movie not found"`, string(got["error"]))
	assert.NotContains(t, got, "data")
	assert.NotContains(t, got, "pagination")
}
