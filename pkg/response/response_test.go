package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "bad page")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"bad page"}`, rec.Body.String())
}

func TestDecode(t *testing.T) {
	var dest struct {
		Quantity int `json:"quantity"`
	}
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity":3}`))
	require.NoError(t, Decode(req, &dest))
	assert.Equal(t, 3, dest.Quantity)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"qty":3}`))
	assert.Error(t, Decode(req, &dest))
}
