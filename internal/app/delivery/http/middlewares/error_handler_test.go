package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	t.Run("Panic Renders The Server Failure Envelope", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, constvars.StatusInternalServerError, recorder.Code)

		var response exceptions.CustomError
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, response.ClientMessage)
	})

	t.Run("Healthy Handler Passes Through", func(t *testing.T) {
		handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, constvars.StatusNoContent, recorder.Code)
	})
}
