// Package github aggregates language byte counts across every repository
// visible to an access token.
package github

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/kataras/golog"
)

// PageSize is the repository page size requested from the API
const PageSize = 100

// Client wraps the REST client with the token already applied.
type Client struct {
	api    *gh.Client
	logger *golog.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	baseURL string
	logger  *golog.Logger
}

// WithBaseURL overrides the API root (tests use httptest servers)
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *golog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient creates a client authenticated with token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	api := gh.NewClient(nil).WithAuthToken(token)
	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", o.baseURL, err)
		}
		api.BaseURL = u
	}

	return &Client{api: api, logger: logging.OrDiscard(o.logger)}, nil
}

// Repositories lists every repository visible to the token, following
// pagination until the API reports no next page.
func (c *Client) Repositories(ctx context.Context) ([]*gh.Repository, error) {
	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		ListOptions: gh.ListOptions{PerPage: PageSize},
	}

	var all []*gh.Repository
	for {
		repos, resp, err := c.api.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories (page %d): %w", opts.Page, err)
		}
		all = append(all, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Debugf("found %d repositories", len(all))
	return all, nil
}

// LanguageStats sums per-language byte counts across all repositories.
func (c *Client) LanguageStats(ctx context.Context) (types.LanguageStats, error) {
	repos, err := c.Repositories(ctx)
	if err != nil {
		return nil, err
	}

	stats := types.LanguageStats{}
	for _, repo := range repos {
		owner, name := repo.GetOwner().GetLogin(), repo.GetName()
		languages, _, err := c.api.Repositories.ListLanguages(ctx, owner, name)
		if err != nil {
			return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, name, err)
		}
		for language, bytes := range languages {
			stats[language] += bytes
		}
	}

	return stats, nil
}

// LanguageCount is one row of sorted language statistics
type LanguageCount struct {
	Language string
	Bytes    int
}

// Sorted orders stats by byte count descending, then by name.
func Sorted(stats types.LanguageStats) []LanguageCount {
	rows := make([]LanguageCount, 0, len(stats))
	for language, bytes := range stats {
		rows = append(rows, LanguageCount{Language: language, Bytes: bytes})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bytes != rows[j].Bytes {
			return rows[i].Bytes > rows[j].Bytes
		}
		return rows[i].Language < rows[j].Language
	})
	return rows
}
