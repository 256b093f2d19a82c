package middleware

import (
	"net/http"
	"sync"
)

// Serializer runs one ledger operation at a time. The core executes each
// public operation as a single atomic unit of work and carries no locks of
// its own; the surrounding environment owns serialization, and this
// middleware is that environment for the HTTP surface.
type Serializer struct {
	mu sync.Mutex
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

func (s *Serializer) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}
