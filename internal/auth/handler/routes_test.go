package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted. A 404 means the
// route is missing; any other status (400 for an empty body, 401 for a
// missing token) proves the handler was reached.
func TestRegisterRoutes(t *testing.T) {
	f := newHandlerFixture(t, false)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/register"},
		{http.MethodPost, "/api/v1/login"},
		{http.MethodPost, "/api/v1/refresh"},
		{http.MethodDelete, "/api/v1/session"},
		{http.MethodPost, "/api/v1/forgot-password"},
		{http.MethodGet, "/reset-password/some-token"},
		{http.MethodPost, "/reset-password/some-token"},
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/api/v1/admin/accounts"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
