// Package linkedin is a minimal client for the professional network's Voyager API:
// session login, profile view, contact info and skills.
package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/kataras/golog"
)

// DefaultBaseURL is the production API host
const DefaultBaseURL = "https://www.linkedin.com"

// SkillsPageSize is the page size requested when listing skills
const SkillsPageSize = 100

// ProfileURL returns the public profile URL for a handle
func ProfileURL(handle string) string {
	return "https://www.linkedin.com/in/" + handle
}

// Client talks to the Voyager API with a cookie-backed session.
type Client struct {
	baseURL string
	http    *fetch.Client
	logger  *golog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host (tests use httptest servers)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *golog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates an unauthenticated client. Call Authenticate before fetching.
func NewClient(opts ...Option) *Client {
	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UserAgent = "LinkedIn/8.8.1 CFNetwork/711.3.18 Darwin/14.0.0"
	fetchOpts.Headers = map[string]string{
		"X-Li-User-Agent": "LIAuthLibrary:3.2.4 com.linkedin.LinkedIn:8.8.1 iPhone:8.3",
		"X-User-Language": "en",
		"X-User-Locale":   "en_US",
		"Accept-Language": "en-us",
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		http:    fetch.NewClient(fetchOpts),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDiscard(c.logger)
	return c
}

type loginResponse struct {
	LoginResult string `json:"login_result"`
}

// Authenticate opens a session: a GET seeds the JSESSIONID cookie, then the
// credentials are posted along with it.
func (c *Client) Authenticate(ctx context.Context, email, password string) error {
	authURL := c.baseURL + "/uas/authenticate"

	if _, err := c.http.Get(ctx, authURL, nil); err != nil {
		return &AuthError{Message: "failed to start session", Cause: err}
	}

	sessionID := c.sessionID()
	if sessionID == "" {
		return &AuthError{Message: "no JSESSIONID cookie issued"}
	}

	form := url.Values{
		"session_key":      {email},
		"session_password": {password},
		"JSESSIONID":       {sessionID},
	}
	result, err := c.http.PostForm(ctx, authURL, form, nil)
	if err != nil {
		if fetch.StatusCode(err) == http.StatusUnauthorized {
			return &AuthError{Message: "credentials rejected", Cause: err}
		}
		return &AuthError{Message: "login request failed", Cause: err}
	}

	var login loginResponse
	if err := fetch.DecodeJSON(result, &login); err != nil {
		return &AuthError{Message: "unreadable login response", Cause: err}
	}
	if login.LoginResult != "PASS" {
		return &AuthError{Message: fmt.Sprintf("login result %q", login.LoginResult)}
	}

	c.logger.Debugf("linkedin session established for %s", email)
	return nil
}

// sessionID returns the JSESSIONID cookie without surrounding quotes
func (c *Client) sessionID() string {
	return strings.Trim(c.http.Cookie(c.baseURL, "JSESSIONID"), `"`)
}

func (c *Client) apiHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "application/json",
		"csrf-token":                c.sessionID(),
		"x-restli-protocol-version": "2.0.0",
	}
}

// get fetches a Voyager path and maps HTTP failures to the package error types
func (c *Client) get(ctx context.Context, handle, path string, out any) error {
	endpoint := c.baseURL + "/voyager/api/identity/profiles/" + url.PathEscape(handle) + path
	err := c.http.GetJSON(ctx, endpoint, c.apiHeaders(), out)
	if err == nil {
		return nil
	}

	switch fetch.StatusCode(err) {
	case http.StatusNotFound:
		return &ProfileNotFoundError{Handle: handle, Cause: err}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Message: "session rejected", Cause: err}
	default:
		return fmt.Errorf("linkedin request %s failed: %w", path, err)
	}
}

type elements[T any] struct {
	Elements []T `json:"elements"`
}

type profileView struct {
	Profile       types.Profile              `json:"profile"`
	EducationView elements[types.Education] `json:"educationView"`
	LanguageView  elements[types.Language]  `json:"languageView"`
	ProjectView   elements[types.Project]   `json:"projectView"`
}

// GetProfile fetches the profile view for a handle.
func (c *Client) GetProfile(ctx context.Context, handle string) (*types.Profile, error) {
	if handle == "" {
		return nil, &ProfileNotFoundError{Handle: handle}
	}

	var view profileView
	if err := c.get(ctx, handle, "/profileView", &view); err != nil {
		return nil, err
	}

	profile := view.Profile
	profile.Education = view.EducationView.Elements
	profile.Languages = view.LanguageView.Elements
	profile.Projects = view.ProjectView.Elements

	c.logger.Debugf("fetched profile %q: %d education, %d languages, %d projects",
		handle, len(profile.Education), len(profile.Languages), len(profile.Projects))
	return &profile, nil
}

// GetContactInfo fetches email and phone numbers for a handle.
func (c *Client) GetContactInfo(ctx context.Context, handle string) (*types.ContactInfo, error) {
	var info types.ContactInfo
	if err := c.get(ctx, handle, "/profileContactInfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSkills lists every skill for a handle, following pages until one comes back empty.
func (c *Client) GetSkills(ctx context.Context, handle string) ([]types.Skill, error) {
	var skills []types.Skill
	for start := 0; ; start += SkillsPageSize {
		var page elements[types.Skill]
		path := fmt.Sprintf("/skills?count=%d&start=%d", SkillsPageSize, start)
		if err := c.get(ctx, handle, path, &page); err != nil {
			return nil, err
		}
		skills = append(skills, page.Elements...)
		if len(page.Elements) < SkillsPageSize {
			break
		}
	}

	c.logger.Debugf("fetched %d skills for %q", len(skills), handle)
	return skills, nil
}
