package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Keys under which the credential and its expiry are persisted.
const (
	TokenKey  = "surubi_google_token"
	ExpiryKey = "surubi_token_expiry"
)

// TokenStore persists one credential together with an absolute expiry.
type TokenStore interface {
	Save(tok *oauth2.Token, expiry time.Time) error
	// Load returns ok=false when nothing usable is stored.
	Load() (tok *oauth2.Token, expiry time.Time, ok bool)
	Clear() error
}

// FileTokenStore keeps the two keys in a small JSON object on disk.
type FileTokenStore struct {
	Path string
	mu   sync.Mutex
}

func (s *FileTokenStore) Save(tok *oauth2.Token, expiry time.Time) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	doc := map[string]string{
		TokenKey:  string(raw),
		ExpiryKey: strconv.FormatInt(expiry.UnixMilli(), 10),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.Path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

func (s *FileTokenStore) Load() (*oauth2.Token, time.Time, bool) {
	s.mu.Lock()
	data, err := os.ReadFile(s.Path)
	s.mu.Unlock()
	if err != nil {
		return nil, time.Time{}, false
	}
	var doc map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, time.Time{}, false
	}
	rawTok, rawExp := doc[TokenKey], doc[ExpiryKey]
	if rawTok == "" || rawExp == "" {
		return nil, time.Time{}, false
	}
	ms, err := strconv.ParseInt(rawExp, 10, 64)
	if err != nil {
		return nil, time.Time{}, false
	}
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(rawTok), &tok); err != nil {
		return nil, time.Time{}, false
	}
	return &tok, time.UnixMilli(ms), true
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryTokenStore keeps the credential in process only.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tok    *oauth2.Token
	expiry time.Time
}

func (s *MemoryTokenStore) Save(tok *oauth2.Token, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok, s.expiry = tok, expiry
	return nil
}

func (s *MemoryTokenStore) Load() (*oauth2.Token, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok == nil {
		return nil, time.Time{}, false
	}
	return s.tok, s.expiry, true
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok, s.expiry = nil, time.Time{}
	return nil
}
