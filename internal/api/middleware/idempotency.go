package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HeaderIdempotencyKey заголовок с ключом идемпотентности запроса
const HeaderIdempotencyKey = "Idempotency-Key"

// cachedResponse сохраненный ответ на уже обработанный запрос
type cachedResponse struct {
	status    int
	header    http.Header
	body      []byte
	expiresAt time.Time
}

// responseBuffer перехватывает ответ обработчика для кеширования
type responseBuffer struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *responseBuffer) WriteHeader(status int) {
	b.status = status
	b.ResponseWriter.WriteHeader(status)
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	b.body.Write(p)
	return b.ResponseWriter.Write(p)
}

// IdempotencyStore хранит ответы на запросы с ключом идемпотентности.
// Повторная отправка формы бронирования (двойное нажатие, ретрай клиента)
// получает сохраненный ответ вместо создания второго бронирования.
type IdempotencyStore struct {
	mu        sync.Mutex
	responses map[string]*cachedResponse
	inFlight  map[string]struct{}
	ttl       time.Duration
}

// NewIdempotencyStore создает хранилище с указанным временем жизни записей
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		responses: make(map[string]*cachedResponse),
		inFlight:  make(map[string]struct{}),
		ttl:       ttl,
	}
}

// Middleware применяет идемпотентность к изменяющим запросам.
// Ключ должен быть валидным UUID; запросы без ключа обрабатываются как обычно.
func (s *IdempotencyStore) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(HeaderIdempotencyKey)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := uuid.Parse(key); err != nil {
			http.Error(w, "invalid idempotency key", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		if cached, ok := s.responses[key]; ok && time.Now().Before(cached.expiresAt) {
			s.mu.Unlock()
			replay(w, cached)
			return
		}
		if _, busy := s.inFlight[key]; busy {
			s.mu.Unlock()
			http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
			return
		}
		s.inFlight[key] = struct{}{}
		s.mu.Unlock()

		buf := &responseBuffer{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(buf, r)

		s.mu.Lock()
		delete(s.inFlight, key)
		// Ответы с серверными ошибками не кешируем - клиент должен иметь
		// возможность повторить запрос с тем же ключом
		if buf.status < http.StatusInternalServerError {
			s.responses[key] = &cachedResponse{
				status:    buf.status,
				header:    w.Header().Clone(),
				body:      buf.body.Bytes(),
				expiresAt: time.Now().Add(s.ttl),
			}
		}
		s.cleanupLocked()
		s.mu.Unlock()
	})
}

// cleanupLocked удаляет просроченные записи. Вызывается под мьютексом.
func (s *IdempotencyStore) cleanupLocked() {
	now := time.Now()
	for key, cached := range s.responses {
		if now.After(cached.expiresAt) {
			delete(s.responses, key)
		}
	}
}

func replay(w http.ResponseWriter, cached *cachedResponse) {
	for name, values := range cached.header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(cached.status)
	_, _ = w.Write(cached.body)
}
