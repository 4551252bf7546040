package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pharmalife/timetracker/internal/transport/middleware"
)

var _ = Describe("RecoveryMiddleware", func() {
	var logBuf *bytes.Buffer

	newLogger := func() *slog.Logger {
		logBuf = &bytes.Buffer{}
		return slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	It("converts a panic into a 500 JSON response", func() {
		handler := middleware.RecoveryMiddleware(newLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body["code"]).To(BeEquivalentTo(http.StatusInternalServerError))
		Expect(body["message"]).To(Equal("internal server error"))
	})

	It("logs the panic with the request method and path", func() {
		handler := middleware.RecoveryMiddleware(newLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", nil)
		handler.ServeHTTP(rec, req)

		logged := logBuf.String()
		Expect(logged).To(ContainSubstring("panic recovered"))
		Expect(logged).To(ContainSubstring("boom"))
		Expect(logged).To(ContainSubstring("method=POST"))
		Expect(logged).To(ContainSubstring("path=/api/v1/workers"))
	})

	It("never leaks the panic value into the response body", func() {
		handler := middleware.RecoveryMiddleware(newLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("secret internal detail")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))

		Expect(rec.Body.String()).ToNot(ContainSubstring("secret internal detail"))
	})

	It("leaves a healthy handler untouched", func() {
		handler := middleware.RecoveryMiddleware(newLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/entries", nil))

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(logBuf.String()).To(BeEmpty())
	})
})
