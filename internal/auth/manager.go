// Package auth keeps the operator's spreadsheet credential: sign-in,
// restore across restarts, validation and sign-out.
package auth

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"pasajes/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// SessionTTL is how long a saved credential is trusted after sign-in.
const SessionTTL = time.Hour

var (
	ErrSignedOut = errors.New("no active session")
	ErrExpired   = errors.New("session expired")
)

// Prober validates the current credential with a lightweight store call.
type Prober interface {
	Probe(ctx context.Context) error
}

type Manager struct {
	Creds  CredentialService
	Tokens TokenStore
	Prober Prober
	Now    func() time.Time

	mu       sync.Mutex
	token    *oauth2.Token
	expiry   time.Time
	pending  string
	signedIn bool
}

func NewManager(creds CredentialService, tokens TokenStore) *Manager {
	return &Manager{Creds: creds, Tokens: tokens, Now: time.Now}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) SignedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedIn && m.now().Before(m.expiry)
}

// Status reports the sign-in state and, when signed in, the expiry.
func (m *Manager) Status() (bool, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.signedIn || !m.now().Before(m.expiry) {
		return false, time.Time{}
	}
	return true, m.expiry
}

// Token makes Manager an oauth2.TokenSource for store drivers.
func (m *Manager) Token() (*oauth2.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return nil, ErrSignedOut
	}
	if !m.now().Before(m.expiry) {
		m.dropLocked()
		return nil, ErrExpired
	}
	return m.token, nil
}

// BeginSignIn starts a consent flow and returns the URL to send the operator to.
func (m *Manager) BeginSignIn() string {
	state := uuid.NewString()
	m.mu.Lock()
	m.pending = state
	m.mu.Unlock()
	return m.Creds.AuthURL(state, "consent")
}

// CompleteSignIn finishes the flow started by BeginSignIn.
func (m *Manager) CompleteSignIn(ctx context.Context, state, code string) error {
	m.mu.Lock()
	pending := m.pending
	m.pending = ""
	m.mu.Unlock()

	if pending == "" || state != pending {
		return domain.AuthError{Msg: "estado de inicio de sesión inválido"}
	}
	if code == "" {
		return domain.AuthError{Msg: "acceso denegado"}
	}

	tok, err := m.Creds.Exchange(ctx, code)
	if err != nil {
		return domain.AuthError{Msg: "no se pudo obtener el token", Err: err}
	}

	expiry := m.now().Add(SessionTTL)
	if err := m.Tokens.Save(tok, expiry); err != nil {
		log.Printf("[AUTH] action=save_token msg=%v", err)
	}

	m.mu.Lock()
	m.token, m.expiry, m.signedIn = tok, expiry, true
	m.mu.Unlock()
	log.Println("[AUTH] action=sign_in msg=token guardado")
	return nil
}

// Restore reinstates a saved credential. Expired ones are discarded
// without a probe; live ones must pass the probe to be trusted.
func (m *Manager) Restore(ctx context.Context) bool {
	tok, expiry, ok := m.Tokens.Load()
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		_ = m.Tokens.Clear()
		log.Println("[AUTH] action=restore msg=token vencido descartado")
		return false
	}

	m.mu.Lock()
	m.token, m.expiry, m.signedIn = tok, expiry, true
	m.mu.Unlock()

	if m.Prober != nil {
		if err := m.Prober.Probe(ctx); err != nil {
			log.Printf("[AUTH] action=restore msg=token inválido: %v", err)
			m.mu.Lock()
			m.dropLocked()
			m.mu.Unlock()
			_ = m.Tokens.Clear()
			return false
		}
	}
	log.Println("[AUTH] action=restore msg=sesión restaurada")
	return true
}

// SignOut revokes the credential (best effort) and forgets it.
func (m *Manager) SignOut(ctx context.Context) {
	m.mu.Lock()
	tok := m.token
	m.dropLocked()
	m.mu.Unlock()

	if tok != nil {
		if err := m.Creds.Revoke(ctx, tok); err != nil {
			log.Printf("[AUTH] action=revoke msg=%v", err)
		}
	}
	if err := m.Tokens.Clear(); err != nil {
		log.Printf("[AUTH] action=clear_token msg=%v", err)
	}
}

func (m *Manager) dropLocked() {
	m.token = nil
	m.expiry = time.Time{}
	m.signedIn = false
}
