// Package memory provides the in-process conversation memory: an
// arena-style session table with LRU + TTL eviction so per-session growth
// never exhausts the process.
package memory

import (
	"sync"
	"time"

	"narad-backend/domain/chat"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity bounds the number of live sessions.
	DefaultCapacity = 10000
	// DefaultTTL is how long an idle session survives before eviction.
	DefaultTTL = 2 * time.Hour
)

// session owns one conversation's ordered message log. The mutex serializes
// appends to the same session id; appends to different sessions never
// contend on it.
type session struct {
	mu       sync.Mutex
	messages []chat.Message
}

// SessionStore is an in-memory, process-lifetime conversation store.
// Sessions are created lazily on first write and evicted by capacity or
// idle TTL.
type SessionStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	logger   *zap.Logger

	// hookMu guards evicted on its own: the LRU's TTL reaper goroutine may
	// fire the eviction callback concurrently with SetEvictionHook, and the
	// callback can also run under mu during getOrCreate.
	hookMu  sync.RWMutex
	evicted func(sessionID string)
}

// Option customizes a SessionStore.
type Option func(*options)

type options struct {
	capacity int
	ttl      time.Duration
	onEvict  func(sessionID string)
}

// WithCapacity bounds the number of concurrently retained sessions.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithTTL sets the idle lifetime of a session.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithEvictionHook registers a callback invoked with each evicted session id.
func WithEvictionHook(fn func(sessionID string)) Option {
	return func(o *options) { o.onEvict = fn }
}

// NewSessionStore creates a session store with the given options.
func NewSessionStore(logger *zap.Logger, opts ...Option) *SessionStore {
	o := options{capacity: DefaultCapacity, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SessionStore{logger: logger, evicted: o.onEvict}
	s.sessions = expirable.NewLRU[string, *session](o.capacity, func(id string, _ *session) {
		logger.Debug("session evicted", zap.String("sessionID", id))
		s.hookMu.RLock()
		fn := s.evicted
		s.hookMu.RUnlock()
		if fn != nil {
			fn(id)
		}
	}, o.ttl)
	return s
}

// SetEvictionHook registers the eviction callback after construction, for
// wiring order where the observer itself needs the store first.
func (s *SessionStore) SetEvictionHook(fn func(sessionID string)) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.evicted = fn
}

// GetHistory returns a fresh snapshot of the session's messages,
// most-recent-last. Unknown session ids yield an empty history; they are not
// an error and do not create a session.
func (s *SessionStore) GetHistory(sessionID string) []chat.Message {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]chat.Message, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// Append adds one message to the session, creating the session on first
// write. Appends to the same session are serialized to preserve turn order.
func (s *SessionStore) Append(sessionID string, role chat.Role, content string) {
	sess := s.getOrCreate(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.messages = append(sess.messages, chat.Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

func (s *SessionStore) getOrCreate(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(sessionID); ok {
		return sess
	}
	sess := &session{}
	s.sessions.Add(sessionID, sess)
	return sess
}
