package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const revokeURL = "https://oauth2.googleapis.com/revoke"

// CredentialService issues and revokes access credentials.
type CredentialService interface {
	// AuthURL is where the operator grants access; prompt is passed through
	// ("consent" forces the grant screen).
	AuthURL(state, prompt string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Revoke(ctx context.Context, tok *oauth2.Token) error
}

// GoogleCredentials runs the OAuth2 authorization-code flow against Google.
type GoogleCredentials struct {
	Config     *oauth2.Config
	HTTPClient *http.Client
	RevokeURL  string
}

func NewGoogleCredentials(clientID, clientSecret, redirectURL string) *GoogleCredentials {
	return &GoogleCredentials{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{sheetsapi.SpreadsheetsScope},
			Endpoint:     google.Endpoint,
		},
		HTTPClient: http.DefaultClient,
		RevokeURL:  revokeURL,
	}
}

func (g *GoogleCredentials) AuthURL(state, prompt string) string {
	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOnline}
	if prompt != "" {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", prompt))
	}
	return g.Config.AuthCodeURL(state, opts...)
}

func (g *GoogleCredentials) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return g.Config.Exchange(ctx, code)
}

func (g *GoogleCredentials) Revoke(ctx context.Context, tok *oauth2.Token) error {
	if tok == nil || tok.AccessToken == "" {
		return nil
	}
	form := url.Values{"token": {tok.AccessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.RevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke: status %d", resp.StatusCode)
	}
	return nil
}

// LocalCredentials stands in for Google with the memory driver. Its
// consent URL points straight back at the callback with a fixed code.
type LocalCredentials struct {
	RedirectURL string
}

func (l LocalCredentials) AuthURL(state, prompt string) string {
	q := url.Values{"state": {state}, "code": {"local"}}
	if prompt != "" {
		q.Set("prompt", prompt)
	}
	return l.RedirectURL + "?" + q.Encode()
}

func (l LocalCredentials) Exchange(_ context.Context, code string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "local-" + code, TokenType: "Bearer"}, nil
}

func (l LocalCredentials) Revoke(context.Context, *oauth2.Token) error { return nil }
