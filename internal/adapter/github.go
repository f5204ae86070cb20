package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/m-hosseinpour/bidi-markdown/internal/config"
	"github.com/m-hosseinpour/bidi-markdown/internal/logger"
	"github.com/m-hosseinpour/bidi-markdown/internal/utils"
	"github.com/m-hosseinpour/bidi-markdown/models"
)

type githubRemoteStore struct {
	client *utils.HTTPClient

	token  string
	target models.RepoTarget

	logger *logger.Logger
}

// contentsEntry mirrors one entry of the GitHub contents API response.
type contentsEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// commitEnvelope mirrors the write/delete response wrapper carrying the
// resulting commit.
type commitEnvelope struct {
	Commit struct {
		SHA     string `json:"sha"`
		HTMLURL string `json:"html_url"`
	} `json:"commit"`
}

// NewGitHubRemoteStore constructs the GitHub contents API implementation of
// [RemoteStore]. It normalises and validates the API base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout. The token and target are held for the
// lifetime of the adapter; both may be empty, in which case every operation
// fails eagerly with [ErrNoToken] or [ErrNoRepository].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewGitHubRemoteStore(cfg config.Adapter, token string, target models.RepoTarget, logger *logger.Logger) (RemoteStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/vnd.github+json")

	return &githubRemoteStore{
		client: client,
		token:  strings.TrimSpace(token),
		target: target,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ready performs the eager configuration checks required before any batch
// operation: a token and a complete repository target must be present.
func (g *githubRemoteStore) ready() error {
	if g.token == "" {
		return ErrNoToken
	}
	if !g.target.IsConfigured() {
		return ErrNoRepository
	}
	return nil
}

func (g *githubRemoteStore) contentsURL(path string) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(g.target.Owner),
		url.PathEscape(g.target.Repo),
		url.PathEscape(path),
	)
}

// ReadFile implements [RemoteStore]. It GETs the contents endpoint for path
// at the configured branch and decodes the transport encoding: base64 first,
// then the resulting bytes as UTF-8 text, so multi-byte content survives the
// round trip intact.
func (g *githubRemoteStore) ReadFile(ctx context.Context, path string) (models.RemoteFile, error) {
	if err := g.ready(); err != nil {
		return models.RemoteFile{}, err
	}

	resp, err := g.authedRequest(ctx).
		SetQueryParam("ref", g.target.Branch).
		Get(g.contentsURL(path))
	if err != nil {
		return models.RemoteFile{}, fmt.Errorf("read file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteFile{}, err
	}

	var entry contentsEntry
	if err = json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.RemoteFile{}, fmt.Errorf("decode read file response: %w", err)
	}

	content, err := decodeContent(entry)
	if err != nil {
		return models.RemoteFile{}, fmt.Errorf("decode content of %s: %w", path, err)
	}

	return models.RemoteFile{
		Name:    entry.Name,
		Path:    entry.Path,
		Content: content,
		SHA:     entry.SHA,
	}, nil
}

// WriteFile implements [RemoteStore]. It PUTs the transport-encoded content
// to the contents endpoint; an empty sha creates the file, a non-empty sha
// requests a compare-and-swap update that the remote rejects with a conflict
// when the marker is stale.
func (g *githubRemoteStore) WriteFile(ctx context.Context, path, content, message, sha string) (models.CommitInfo, error) {
	if err := g.ready(); err != nil {
		return models.CommitInfo{}, err
	}

	body := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  g.target.Branch,
	}
	if sha != "" {
		body["sha"] = sha
	}

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(g.contentsURL(path))
	if err != nil {
		return models.CommitInfo{}, fmt.Errorf("write file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommitInfo{}, err
	}

	return decodeCommit(resp.Body())
}

// DeleteFile implements [RemoteStore]. The sha is mandatory: the remote
// refuses deletes whose marker does not match its current state.
func (g *githubRemoteStore) DeleteFile(ctx context.Context, path, message, sha string) (models.CommitInfo, error) {
	if err := g.ready(); err != nil {
		return models.CommitInfo{}, err
	}

	body := map[string]string{
		"message": message,
		"sha":     sha,
		"branch":  g.target.Branch,
	}

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Delete(g.contentsURL(path))
	if err != nil {
		return models.CommitInfo{}, fmt.Errorf("delete file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommitInfo{}, err
	}

	return decodeCommit(resp.Body())
}

// ListMarkdownFiles implements [RemoteStore]. It lists the repository root at
// the configured branch and keeps the entries that are files whose path ends
// in ".md".
func (g *githubRemoteStore) ListMarkdownFiles(ctx context.Context) ([]models.RemoteFile, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	resp, err := g.authedRequest(ctx).
		SetQueryParam("ref", g.target.Branch).
		Get(g.contentsURL(""))
	if err != nil {
		return nil, fmt.Errorf("list files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []contentsEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	files := make([]models.RemoteFile, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" || !strings.HasSuffix(entry.Path, ".md") {
			continue
		}
		files = append(files, models.RemoteFile{
			Name: entry.Name,
			Path: entry.Path,
			SHA:  entry.SHA,
		})
	}

	return files, nil
}

func (g *githubRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.token)
}

// decodeContent reverses the transport encoding of a contents entry. GitHub
// wraps the base64 payload at 60 columns, so line breaks are stripped before
// decoding.
func decodeContent(entry contentsEntry) (string, error) {
	if entry.Encoding != "" && entry.Encoding != "base64" {
		return "", fmt.Errorf("unsupported content encoding %q", entry.Encoding)
	}

	compact := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, entry.Content)

	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	return string(raw), nil
}

func decodeCommit(body []byte) (models.CommitInfo, error) {
	var envelope commitEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.CommitInfo{}, fmt.Errorf("decode commit response: %w", err)
	}

	return models.CommitInfo{
		SHA:     envelope.Commit.SHA,
		HTMLURL: envelope.Commit.HTMLURL,
	}, nil
}
