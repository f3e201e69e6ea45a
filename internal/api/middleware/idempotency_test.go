package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "3e4666bf-d5e5-4aa7-b8ce-cefe41c7568a"

func newCountingHandler(calls *int32, status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(calls, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func doRequest(h http.Handler, method, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/bookings", strings.NewReader("{}"))
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysCompletedResponseWithoutSecondCall(t *testing.T) {
	var calls int32
	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(newCountingHandler(&calls, http.StatusCreated, `{"id":101}`))

	first := doRequest(h, http.MethodPost, testKey)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(h, http.MethodPost, testKey)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, `{"id":101}`, second.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestIdempotency_ConcurrentDuplicateGetsConflict(t *testing.T) {
	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})

	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		close(entered)
		<-release
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":101}`))
	}))

	firstDone := make(chan *httptest.ResponseRecorder)
	go func() {
		firstDone <- doRequest(h, http.MethodPost, testKey)
	}()
	<-entered

	// Повторная отправка, пока первый запрос еще обрабатывается
	duplicate := doRequest(h, http.MethodPost, testKey)
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	close(release)
	first := <-firstDone
	require.Equal(t, http.StatusCreated, first.Code)

	// После завершения тот же ключ получает сохраненный ответ
	replayed := doRequest(h, http.MethodPost, testKey)
	assert.Equal(t, http.StatusCreated, replayed.Code)
	assert.Equal(t, `{"id":101}`, replayed.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestIdempotency_InvalidKeyRejected(t *testing.T) {
	var calls int32
	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(newCountingHandler(&calls, http.StatusCreated, `{}`))

	rec := doRequest(h, http.MethodPost, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	var calls int32
	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(newCountingHandler(&calls, http.StatusCreated, `{}`))

	doRequest(h, http.MethodPost, "")
	doRequest(h, http.MethodPost, "")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIdempotency_GetRequestsIgnored(t *testing.T) {
	var calls int32
	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(newCountingHandler(&calls, http.StatusOK, `{}`))

	doRequest(h, http.MethodGet, testKey)
	doRequest(h, http.MethodGet, testKey)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIdempotency_ServerErrorsNotCached(t *testing.T) {
	// Серверная ошибка не кешируется - клиент может повторить с тем же ключом
	var calls int32
	store := NewIdempotencyStore(time.Minute)
	h := store.Middleware(newCountingHandler(&calls, http.StatusInternalServerError, `{}`))

	doRequest(h, http.MethodPost, testKey)
	doRequest(h, http.MethodPost, testKey)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestAuth_PutsUserIDInContext(t *testing.T) {
	var gotID int64
	var gotOK bool
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/101", nil)
	req.Header.Set(HeaderUserID, "7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, gotOK)
	assert.Equal(t, int64(7), gotID)
}

func TestAuth_MissingOrMalformedHeaderLeavesContextEmpty(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "без заголовка", header: ""},
		{name: "не число", header: "abc"},
		{name: "отрицательный", header: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOK bool
			h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, gotOK = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/101", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.False(t, gotOK)
		})
	}
}
