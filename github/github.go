package github

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/vellum-lang/vellum"

	"github.com/valyala/fasttemplate"
)

// DefaultBaseURL is the GitHub REST API root used for contents requests.
const DefaultBaseURL = "https://api.github.com"

// LibraryScope is the scope name the library answers to in a document.
const LibraryScope = "GitHub"

const (
	// rawMediaType asks the contents API for decoded file content instead
	// of the base64 JSON envelope.
	rawMediaType = "application/vnd.github.raw+json"

	// apiVersion pins the GitHub REST API version for every request.
	apiVersion = "2022-11-28"

	// fetchTimeout bounds the connect phase and the whole request, 3s each.
	fetchTimeout = 3 * time.Second
)

// contentsTemplate renders the contents-API URL for an owner/repo/path
// triple. The path placeholder is substituted verbatim: the host supplies a
// well-formed relative path and composition is byte-exact, with no escaping.
var contentsTemplate = fasttemplate.New("{base}/repos/{owner}/{repo}/contents/{path}", "{", "}")

// Ensures Library implements vellum.Library.
var _ vellum.Library = Library{}

// Library exposes repository registration to running documents. Load it once
// per document; addFormat is then callable from any scope, typically from an
// init routine so the format exists before import statements are parsed.
type Library struct{}

// Scope implements vellum.Library.
func (Library) Scope() string { return LibraryScope }

// Call dispatches a library call by name. addFormat is the only operation.
func (Library) Call(_ string, doc *vellum.Document, name string, args []vellum.Value) (vellum.Value, error) {
	switch name {
	case "addFormat":
		return addFormat(doc, args)
	default:
		return nil, fmt.Errorf("%w: GitHub.%s", ErrUnknownFunction, name)
	}
}

// addFormat registers a repository-backed format in the document:
//
//	GitHub.addFormat(owner: str, repo: str, repo_id?: str, headers?: list)
//
// The two optional slots are each interpreted by shape, independently: a Str
// overrides the identifier (default: repo), a List of Pairs supplies extra
// headers (later entries win per key, and win over the defaults). Any other
// shape is ignored, so a partial or mistyped call degrades to the defaults
// instead of failing. Arguments past the fourth are ignored.
func addFormat(doc *vellum.Document, args []vellum.Value) (vellum.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: GitHub.addFormat(owner: str, repo: str, repo_id?: str, headers?: list)", ErrMissingArguments)
	}
	f := New(args[0].Text(), args[1].Text())
	for i := 2; i < len(args) && i < 4; i++ {
		applyExtra(f, args[i])
	}
	doc.LoadFormat(f)
	return vellum.Unit{}, nil
}

// applyExtra interprets one optional addFormat argument by its shape.
// Unrecognized shapes fall through silently.
func applyExtra(f *Format, arg vellum.Value) {
	switch v := arg.(type) {
	case vellum.Str:
		f.repoID = string(v)
	case vellum.List:
		for _, item := range v {
			pair, ok := item.(vellum.Pair)
			if !ok {
				continue
			}
			f.headers[pair.First.Text()] = pair.Second.Text()
		}
	}
}

// Ensures Format implements the format contract and file import.
var (
	_ vellum.Format       = (*Format)(nil)
	_ vellum.FileImporter = (*Format)(nil)
)

// Format imports files from one GitHub repository over the contents API.
// Immutable once registered; safe for concurrent use, sharing one HTTP
// client across calls.
type Format struct {
	repoID     string
	owner      string
	repo       string
	headers    map[string]string
	baseURL    string
	httpClient *http.Client
}

// New creates a Format for the given repository, registered as
// "github:{repo}" unless WithRepoID overrides the identifier. Headers are
// seeded with the raw-content Accept and API-version defaults; options and
// addFormat-supplied headers may override them.
func New(owner, repo string, opts ...Option) *Format {
	f := &Format{
		repoID: repo,
		owner:  owner,
		repo:   repo,
		headers: map[string]string{
			"Accept":               rawMediaType,
			"X-GitHub-Api-Version": apiVersion,
		},
		baseURL:    DefaultBaseURL,
		httpClient: defaultClient(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// defaultClient bounds connect and overall request time at fetchTimeout.
func defaultClient() *http.Client {
	return &http.Client{
		Timeout: fetchTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: fetchTimeout}).DialContext,
		},
	}
}

// Format returns the identifier this format is registered under. For repoID
// "stof" that is "github:stof":
//
//	import github:stof "web/deno.json" as Import;
func (f *Format) Format() string {
	return "github:" + f.repoID
}

// URL composes the contents-API URL for a path in this repository.
func (f *Format) URL(path string) string {
	return contentsTemplate.ExecuteString(map[string]any{
		"base":  f.baseURL,
		"owner": f.owner,
		"repo":  f.repo,
		"path":  path,
	})
}

// Fetch returns the raw contents of the file at path in this repository.
// One attempt, no retries: transport failures, non-success statuses, and
// body read errors all wrap ErrFetchFailed and surface to the caller.
func (f *Format) Fetch(path string) (string, error) {
	u := f.URL(path)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s %s", ErrFetchFailed, resp.Status, u)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	return string(body), nil
}

// FileImport fetches fullPath and re-dispatches the contents through the
// document's string import, selecting the parser by extension. From the
// document's perspective the fetched text is indistinguishable from a local
// file. The declared format is already resolved by the registry and is not
// consulted. Errors if no format is registered for extension, or if the
// fetch itself failed.
func (f *Format) FileImport(pid string, doc *vellum.Document, _ string, fullPath, extension, as string) error {
	contents, err := f.Fetch(fullPath)
	if err != nil {
		return err
	}
	return doc.StringImport(pid, extension, contents, as)
}
