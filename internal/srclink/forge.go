// Package srclink derives the source base URI and line-anchor prefix of a
// project from its git checkout.
package srclink

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ForgeKind identifies a hosting service by its web URL layout.
type ForgeKind string

const (
	ForgeGitHub    ForgeKind = "github"
	ForgeGitLab    ForgeKind = "gitlab"
	ForgeForgejo   ForgeKind = "forgejo" // also Gitea
	ForgeBitbucket ForgeKind = "bitbucket"
)

// Remote is a parsed clone URL.
type Remote struct {
	Kind     ForgeKind
	BaseURL  string // scheme and host, e.g. https://github.com
	FullName string // owner/repo
}

// ParseRemote turns a clone URL (https, ssh:// or scp-like git@host:path)
// into its web location. Local paths have no web location and are rejected.
func ParseRemote(cloneURL string) (Remote, error) {
	if isLocalPath(cloneURL) {
		return Remote{}, fmt.Errorf("remote %q is a local path", cloneURL)
	}
	u, err := url.Parse(normalizeSSHURL(cloneURL))
	if err != nil {
		return Remote{}, fmt.Errorf("parse remote %q: %w", cloneURL, err)
	}
	if u.Host == "" {
		return Remote{}, fmt.Errorf("remote %q has no host", cloneURL)
	}

	fullName := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if fullName == "" {
		return Remote{}, fmt.Errorf("remote %q has no repository path", cloneURL)
	}

	// Ports of ssh remotes belong to the ssh daemon, not the web UI.
	scheme, host := u.Scheme, u.Host
	if scheme != "http" && scheme != "https" || cloneURL != normalizeSSHURL(cloneURL) {
		scheme, host = "https", u.Hostname()
	}
	return Remote{
		Kind:     detectForgeKind(u.Hostname()),
		BaseURL:  scheme + "://" + host,
		FullName: fullName,
	}, nil
}

// detectForgeKind classifies a host by name. Unknown self-hosted instances
// are assumed to be Forgejo/Gitea.
func detectForgeKind(host string) ForgeKind {
	switch {
	case strings.Contains(host, "github."):
		return ForgeGitHub
	case strings.Contains(host, "gitlab."):
		return ForgeGitLab
	case strings.Contains(host, "bitbucket."):
		return ForgeBitbucket
	default:
		return ForgeForgejo
	}
}

// normalizeSSHURL rewrites git@host:owner/repo and ssh:// URLs as https.
func normalizeSSHURL(repoURL string) string {
	if strings.HasPrefix(repoURL, "ssh://") {
		return "https://" + strings.TrimPrefix(repoURL, "ssh://")
	}
	if !strings.HasPrefix(repoURL, "git@") {
		return repoURL
	}
	parts := strings.SplitN(strings.TrimPrefix(repoURL, "git@"), ":", 2)
	if len(parts) == 2 {
		return "https://" + parts[0] + "/" + parts[1]
	}
	return repoURL
}

func isLocalPath(urlStr string) bool {
	for _, prefix := range []string{"http://", "https://", "git@", "ssh://", "git://"} {
		if strings.HasPrefix(urlStr, prefix) {
			return false
		}
	}
	return true
}

// BlobBaseURI is the web URL of dir at commit, ending in '/', so a
// dir-relative source path can be appended directly.
func (r Remote) BlobBaseURI(commit, dir string) string {
	base := strings.TrimSuffix(r.BaseURL, "/") + "/" + r.FullName
	var uri string
	switch r.Kind {
	case ForgeGitHub:
		uri = fmt.Sprintf("%s/blob/%s/", base, commit)
	case ForgeGitLab:
		uri = fmt.Sprintf("%s/-/blob/%s/", base, commit)
	case ForgeBitbucket:
		uri = fmt.Sprintf("%s/src/%s/", base, commit)
	default:
		uri = fmt.Sprintf("%s/src/commit/%s/", base, commit)
	}

	dir = path.Clean(strings.Trim(dir, "/"))
	if dir != "." && dir != "" {
		uri += dir + "/"
	}
	return uri
}

// LineAnchorPrefix is the fragment prefix the forge uses for line numbers.
func (r Remote) LineAnchorPrefix() string {
	if r.Kind == ForgeBitbucket {
		return "lines-"
	}
	return "L"
}
