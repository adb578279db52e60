package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-admin/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// serve routes a single request through a throwaway mux so path variables
// resolve the way they do in production.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc(pattern, h).Methods(method)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
