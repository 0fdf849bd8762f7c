package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// Supported identity providers.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

const fetchTimeout = 10 * time.Second

// Config carries the client credentials for both providers. A provider with
// an empty client ID is treated as disabled.
type Config struct {
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string
}

// Manager drives the authorization-code flow against Google and GitHub and
// normalises both providers' profiles into ports.OAuthProfile.
type Manager struct {
	google *oauth2.Config
	github *oauth2.Config
	client *http.Client
}

func NewManager(cfg Config) *Manager {
	return &Manager{
		google: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
		},
		github: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			Endpoint:     github.Endpoint,
			RedirectURL:  cfg.BaseURL + "/api/auth/github/callback",
			Scopes:       []string{"read:user", "user:email"},
		},
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// StateToken returns a random value tying the callback to the initial redirect.
func (m *Manager) StateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// AuthURL returns the provider's consent page URL for the given state.
func (m *Manager) AuthURL(provider, state string) (string, error) {
	conf, err := m.conf(provider)
	if err != nil {
		return "", err
	}
	if conf.ClientID == "" {
		return "", fmt.Errorf("oauth: provider %s not configured", provider)
	}
	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange trades the callback code for a token and fetches the user profile.
func (m *Manager) Exchange(ctx context.Context, provider, code string) (*ports.OAuthProfile, error) {
	conf, err := m.conf(provider)
	if err != nil {
		return nil, err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchange: %w", err)
	}

	switch provider {
	case ProviderGoogle:
		return m.googleProfile(ctx, conf, token)
	default:
		return m.githubProfile(ctx, conf, token)
	}
}

func (m *Manager) conf(provider string) (*oauth2.Config, error) {
	switch provider {
	case ProviderGoogle:
		return m.google, nil
	case ProviderGitHub:
		return m.github, nil
	default:
		return nil, fmt.Errorf("oauth: unknown provider %q", provider)
	}
}

func (m *Manager) googleProfile(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*ports.OAuthProfile, error) {
	var info struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := m.fetchJSON(ctx, conf, token, "https://www.googleapis.com/oauth2/v2/userinfo", &info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("oauth: google profile has no email")
	}
	return &ports.OAuthProfile{
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		Picture:   info.Picture,
	}, nil
}

func (m *Manager) githubProfile(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*ports.OAuthProfile, error) {
	var user struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := m.fetchJSON(ctx, conf, token, "https://api.github.com/user", &user); err != nil {
		return nil, err
	}

	email := user.Email
	if email == "" {
		// GitHub hides the email on the profile endpoint when the user marks
		// it private; the emails endpoint still lists it.
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := m.fetchJSON(ctx, conf, token, "https://api.github.com/user/emails", &emails); err != nil {
			return nil, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return nil, fmt.Errorf("oauth: github profile has no verified email")
	}

	first, last := splitName(user.Name, user.Login)
	return &ports.OAuthProfile{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Picture:   user.AvatarURL,
	}, nil
}

func (m *Manager) fetchJSON(ctx context.Context, conf *oauth2.Config, token *oauth2.Token, url string, out any) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.client)
	res, err := conf.Client(ctx, token).Get(url)
	if err != nil {
		return fmt.Errorf("oauth: fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("oauth: fetch %s: %s: %s", url, res.Status, body)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func splitName(fullName, fallback string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return fallback, ""
	}
	parts := strings.SplitN(fullName, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
