package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, int, error)
}

type Scheduler interface {
	Schedule(snapshot []byte)
}

// Store owns the in-memory document. Reads see the live state; every mutation
// schedules a full-document write and is never rolled back.
type Store struct {
	mu        sync.RWMutex
	doc       model.Document
	remote    Fetcher
	persister Scheduler
	log       *zap.Logger
}

func New(remote Fetcher, persister Scheduler, log *zap.Logger) *Store {
	return &Store{
		doc:       model.DefaultDocument(),
		remote:    remote,
		persister: persister,
		log:       log.Named("store"),
	}
}

// Load replaces the seed data with the stored document. Failures keep the seed data.
func (s *Store) Load(ctx context.Context) {
	data, status, err := s.remote.Fetch(ctx)
	if err != nil {
		s.log.Warn("failed to load state, using defaults", zap.Int("status", status), zap.Error(err))
		return
	}
	doc, ok := decodeDocument(data)
	if !ok {
		s.log.Warn("no stored state, using defaults", zap.Int("size", len(data)))
		return
	}

	s.mu.Lock()
	s.doc = doc
	missingAdmin := s.doc.AdminConfig == nil
	if missingAdmin {
		admin := model.DefaultAdminConfig()
		s.doc.AdminConfig = &admin
	}
	s.mu.Unlock()

	s.log.Info("state loaded",
		zap.Int("books", len(doc.Books)),
		zap.Int("members", len(doc.Members)),
		zap.Int("circulation", len(doc.Circulation)))
	if missingAdmin {
		s.Persist()
	}
}

func decodeDocument(data []byte) (model.Document, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.Document{}, false
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil || len(keys) == 0 {
		return model.Document{}, false
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, false
	}
	doc.Normalize()
	return doc, true
}

func (s *Store) Read(fn func(doc *model.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.doc)
}

// Mutate applies fn to the document and schedules a persist when fn reports a change.
func (s *Store) Mutate(fn func(doc *model.Document) bool) {
	s.mu.Lock()
	if !fn(&s.doc) {
		s.mu.Unlock()
		return
	}
	snapshot, err := json.Marshal(s.doc)
	s.mu.Unlock()
	if err != nil {
		s.log.Error("marshal document", zap.Error(err))
		return
	}
	s.persister.Schedule(snapshot)
}

// Persist schedules a write of the current document.
func (s *Store) Persist() {
	s.mu.RLock()
	snapshot, err := json.Marshal(s.doc)
	s.mu.RUnlock()
	if err != nil {
		s.log.Error("marshal document", zap.Error(err))
		return
	}
	s.persister.Schedule(snapshot)
}

// Snapshot returns the serialized document.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.doc)
}
