package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
)

const (
	credentialsFile = "credentials.json"
	tokenFile       = "token.json"

	// callbackPort is the local port used to capture the OAuth redirect
	// during `compass integration login`.
	callbackPort = "6789"
)

// Auth manages the OAuth credentials and cached token for the Google
// Calendar connection. All files live under the given config directory.
type Auth struct {
	dir string
}

func NewAuth(dir string) *Auth {
	return &Auth{dir: dir}
}

func (a *Auth) config() (*oauth2.Config, error) {
	b, err := os.ReadFile(filepath.Join(a.dir, credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("read client credentials: %w", err)
	}
	cfg, err := google.ConfigFromJSON(b, calendarapi.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse client credentials: %w", err)
	}
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%s/oauth2callback", callbackPort)
	return cfg, nil
}

// Client returns an HTTP client backed by the cached token, refreshing it
// transparently. It fails when no token has been obtained yet.
func (a *Auth) Client(ctx context.Context) (*http.Client, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	tok, err := a.loadToken()
	if err != nil {
		return nil, fmt.Errorf("no stored calendar token, run `compass integration login` first: %w", err)
	}
	return cfg.Client(ctx, tok), nil
}

// Login runs the authorization code flow: it prints the consent URL,
// captures the redirect on a local listener, exchanges the code, and
// caches the resulting token.
func (a *Auth) Login(ctx context.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", ":"+callbackPort)
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}
	defer listener.Close()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code missing", http.StatusBadRequest)
				errCh <- fmt.Errorf("authorization code missing in redirect")
				return
			}
			fmt.Fprint(w, "Authorization complete. You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go server.Serve(listener)
	defer server.Shutdown(context.Background())

	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Open this URL in your browser to connect Google Calendar:\n%s\n", authURL)

	select {
	case code := <-codeCh:
		exchangeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		tok, err := cfg.Exchange(exchangeCtx, code)
		if err != nil {
			return fmt.Errorf("exchange authorization code: %w", err)
		}
		return a.saveToken(tok)
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("authorization timed out")
	}
}

func (a *Auth) loadToken() (*oauth2.Token, error) {
	f, err := os.Open(filepath.Join(a.dir, tokenFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decode stored token: %w", err)
	}
	return tok, nil
}

func (a *Auth) saveToken(tok *oauth2.Token) error {
	if err := os.MkdirAll(a.dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(a.dir, tokenFile), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
