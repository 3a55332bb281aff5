package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
		checkLogOmits    []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/users",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/users"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:             "POST 422",
			method:           http.MethodPost,
			path:             "/send",
			handlerStatus:    http.StatusUnprocessableEntity,
			checkLogContains: []string{`"method":"POST"`, `"status":422`, `"size":0`},
		},
		{
			name:             "redemption links are redacted",
			method:           http.MethodGet,
			path:             "/get/header.payload.signature",
			handlerStatus:    http.StatusOK,
			checkLogContains: []string{`"uri":"/get/***"`},
			checkLogOmits:    []string{"payload"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			(&Handler{}).withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, s := range tt.checkLogContains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.checkLogOmits {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestRedactCapability(t *testing.T) {
	assert.Equal(t, "/get/***", redactCapability("/get/abc"))
	assert.Equal(t, "/get/", redactCapability("/get/"))
	assert.Equal(t, "/items/1", redactCapability("/items/1"))
}
