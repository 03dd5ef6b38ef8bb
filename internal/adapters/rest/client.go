package rest

// Package rest implements the backend ports against the hosted AeroEdge
// HR service: an OAuth2 password/refresh token endpoint plus JSON REST
// resources for identities, profiles, and employee records.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

const (
	tokenPath  = "/auth/v1/token"
	signupPath = "/auth/v1/signup"
	logoutPath = "/auth/v1/logout"
	userPath   = "/auth/v1/user"
	restPrefix = "/rest/v1"
)

// Config holds configuration for the REST backend client.
type Config struct {
	// BaseURL is the root of the backend service, e.g.
	// https://hr.example.com.
	BaseURL string
	// APIKey is the project API key sent on every request.
	APIKey string
	// ClientID and ClientSecret authenticate this app to the token
	// endpoint. ClientSecret may be empty for public clients.
	ClientID     string
	ClientSecret string
	// DiscoveryURL, when set, enables local verification of
	// backend-issued access tokens against the service's OIDC
	// discovery/JWKS instead of a userinfo round trip.
	DiscoveryURL string
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// Client implements ports.IdentityBackend and ports.DirectoryBackend over
// the backend's HTTP surface.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	oauth      *oauth2.Config
	verifier   *gooidc.IDTokenVerifier
}

var (
	_ ports.IdentityBackend  = (*Client)(nil)
	_ ports.DirectoryBackend = (*Client)(nil)
)

// NewClient creates a REST backend client. When cfg.DiscoveryURL is set
// the constructor performs a single discovery fetch to build the token
// verifier.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")
	c := &Client{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  base + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}

	if cfg.DiscoveryURL != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		issuer := strings.TrimSuffix(cfg.DiscoveryURL, "/")
		issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
		provider, err := gooidc.NewProvider(ctx, issuer)
		if err != nil {
			return nil, fmt.Errorf("oidc discovery: %w", err)
		}
		c.verifier = provider.Verifier(&gooidc.Config{
			ClientID:          cfg.ClientID,
			SkipClientIDCheck: cfg.ClientID == "",
		})
	}

	return c, nil
}

// VerifyCredentials performs the OAuth2 password grant against the token
// endpoint.
func (c *Client) VerifyCredentials(ctx context.Context, creds identity.Credentials) (ports.AuthResult, error) {
	tok, err := c.oauth.PasswordCredentialsToken(c.oauthContext(ctx), creds.Email, creds.Password)
	if err != nil {
		if isRejection(err) {
			return ports.AuthResult{}, fmt.Errorf("%w: token endpoint rejected password grant", ports.ErrInvalidCredentials)
		}
		return ports.AuthResult{}, fmt.Errorf("password grant: %w", err)
	}

	sess, err := c.sessionFromToken(ctx, tok)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{Session: sess}, nil
}

// signupRequest is the account-creation payload. Display names travel in
// the metadata object the backend copies onto the provisioned profile.
type signupRequest struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// CreateAccount registers a new identity. The backend signs the account in
// as part of creation and returns token material directly.
func (c *Client) CreateAccount(ctx context.Context, in ports.SignUpInput) (ports.AuthResult, error) {
	payload := signupRequest{
		Email:    in.Email,
		Password: in.Password,
		Data: map[string]string{
			"first_name": in.FirstName,
			"last_name":  in.LastName,
		},
	}

	var resp tokenResponse
	status, err := c.doJSON(ctx, http.MethodPost, c.baseURL+signupPath, "", payload, &resp)
	if err != nil {
		return ports.AuthResult{}, fmt.Errorf("signup: %w", err)
	}
	switch {
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return ports.AuthResult{}, fmt.Errorf("%w: signup returned %d", ports.ErrIdentityExists, status)
	case status < 200 || status > 299:
		return ports.AuthResult{}, fmt.Errorf("signup: unexpected status %d", status)
	}

	sess := identity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		IdentityID:   resp.User.ID,
		Email:        resp.User.Email,
	}
	if resp.ExpiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return ports.AuthResult{Session: sess}, nil
}

// InvalidateSession revokes the token server-side. Best effort by
// contract; callers log and move on when this fails.
func (c *Client) InvalidateSession(ctx context.Context, sess identity.Session) error {
	status, err := c.doJSON(ctx, http.MethodPost, c.baseURL+logoutPath, sess.AccessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("logout: unexpected status %d", status)
	}
	return nil
}

// CurrentSession revalidates cached token material. Usable-as-is tokens
// are confirmed against the backend; expired ones go through the refresh
// grant. ErrNoSession means the material is gone for good.
func (c *Client) CurrentSession(ctx context.Context, cached identity.Session) (identity.Session, error) {
	if cached.AccessToken == "" && cached.RefreshToken == "" {
		return identity.Session{}, ports.ErrNoSession
	}

	if cached.Valid() {
		confirmed, err := c.confirmSession(ctx, cached)
		if err == nil {
			return confirmed, nil
		}
		if !errors.Is(err, ports.ErrNoSession) {
			return identity.Session{}, err
		}
		// Token no longer accepted; fall through to the refresh grant.
	}

	return c.refreshSession(ctx, cached)
}

// confirmSession checks that the backend still accepts the access token.
func (c *Client) confirmSession(ctx context.Context, sess identity.Session) (identity.Session, error) {
	if c.verifier != nil {
		idTok, err := c.verifier.Verify(ctx, sess.AccessToken)
		if err != nil {
			return identity.Session{}, fmt.Errorf("%w: token verification failed", ports.ErrNoSession)
		}
		if sess.IdentityID == "" {
			sess.IdentityID = idTok.Subject
		}
		return sess, nil
	}

	id, email, err := c.fetchUser(ctx, sess.AccessToken)
	if err != nil {
		return identity.Session{}, err
	}
	sess.IdentityID = id
	if email != "" {
		sess.Email = email
	}
	return sess, nil
}

// refreshSession runs the OAuth2 refresh grant with the cached refresh
// token.
func (c *Client) refreshSession(ctx context.Context, cached identity.Session) (identity.Session, error) {
	if cached.RefreshToken == "" {
		return identity.Session{}, ports.ErrNoSession
	}

	seed := &oauth2.Token{RefreshToken: cached.RefreshToken, Expiry: time.Now().Add(-time.Minute)}
	tok, err := c.oauth.TokenSource(c.oauthContext(ctx), seed).Token()
	if err != nil {
		if isRejection(err) {
			return identity.Session{}, fmt.Errorf("%w: refresh token rejected", ports.ErrNoSession)
		}
		return identity.Session{}, fmt.Errorf("refresh grant: %w", err)
	}

	return c.sessionFromToken(ctx, tok)
}

// sessionFromToken shapes an oauth2 token into a domain session, resolving
// the identity from verified claims when possible and from the userinfo
// endpoint otherwise.
func (c *Client) sessionFromToken(ctx context.Context, tok *oauth2.Token) (identity.Session, error) {
	sess := identity.Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		ExpiresAt:    tok.Expiry,
	}

	if c.verifier != nil {
		if idTok, err := c.verifier.Verify(ctx, tok.AccessToken); err == nil {
			var claims struct {
				Email string `json:"email"`
			}
			sess.IdentityID = idTok.Subject
			if claimsErr := idTok.Claims(&claims); claimsErr == nil {
				sess.Email = claims.Email
			}
			return sess, nil
		}
		// Verification is an optimization; fall back to userinfo.
	}

	id, email, err := c.fetchUser(ctx, tok.AccessToken)
	if err != nil {
		return identity.Session{}, err
	}
	sess.IdentityID = id
	sess.Email = email
	return sess, nil
}

// fetchUser resolves the identity behind an access token via the userinfo
// endpoint. A 401 maps to ErrNoSession.
func (c *Client) fetchUser(ctx context.Context, accessToken string) (id, email string, err error) {
	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	status, err := c.doJSON(ctx, http.MethodGet, c.baseURL+userPath, accessToken, nil, &user)
	if err != nil {
		return "", "", fmt.Errorf("fetch user: %w", err)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return "", "", fmt.Errorf("%w: userinfo returned %d", ports.ErrNoSession, status)
	}
	if status < 200 || status > 299 {
		return "", "", fmt.Errorf("fetch user: unexpected status %d", status)
	}
	return user.ID, user.Email, nil
}

// doJSON issues a JSON request with the API key and optional bearer token,
// decoding a 2xx body into out when out is non-nil. It returns the status
// code along with transport errors.
func (c *Client) doJSON(ctx context.Context, method, url, bearer string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", decodeErr)
		}
	}
	return resp.StatusCode, nil
}

// oauthContext injects the configured HTTP client into oauth2 calls.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// isRejection reports whether an oauth2 error is an explicit 4xx rejection
// from the token endpoint, as opposed to transport trouble.
func isRejection(err error) bool {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) || re.Response == nil {
		return false
	}
	code := re.Response.StatusCode
	return code == http.StatusBadRequest || code == http.StatusUnauthorized || code == http.StatusForbidden
}
