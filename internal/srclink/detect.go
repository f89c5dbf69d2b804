package srclink

import (
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/nsdoc/internal/foundation/errors"
	"git.home.luguber.info/inful/nsdoc/internal/logfields"
)

// RemoteName is the remote whose URL is used for detection.
const RemoteName = "origin"

// Source is a detected source location.
type Source struct {
	URI              string
	LineAnchorPrefix string
	Remote           Remote
	Commit           string
}

// Detect inspects the git checkout containing dir. The resulting URI is
// pinned to the HEAD commit and points at dir inside the repository.
func Detect(dir string) (Source, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "resolve repository path").
			WithContext("path", dir).
			Build()
	}

	repo, err := git.PlainOpenWithOptions(absDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "open repository").
			WithContext("path", absDir).
			Build()
	}

	remote, err := repo.Remote(RemoteName)
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "read remote").
			WithContext("remote", RemoteName).
			Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Source{}, errors.GitError("remote has no URL").WithContext("remote", RemoteName).Build()
	}
	parsed, err := ParseRemote(urls[0])
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "parse remote").
			WithContext("remote", RemoteName).
			Build()
	}

	head, err := repo.Head()
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "resolve HEAD").
			WithContext("path", absDir).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "open worktree").
			WithContext("path", absDir).
			Build()
	}
	rel, err := relativeDir(wt.Filesystem.Root(), absDir)
	if err != nil {
		return Source{}, errors.WrapError(err, errors.CategoryGit, "locate directory in repository").
			WithContext("path", absDir).
			Build()
	}

	commit := head.Hash().String()
	src := Source{
		URI:              parsed.BlobBaseURI(commit, rel),
		LineAnchorPrefix: parsed.LineAnchorPrefix(),
		Remote:           parsed,
		Commit:           commit,
	}
	slog.Debug("Detected source location",
		logfields.URL(src.URI),
		slog.String("forge", string(parsed.Kind)),
		slog.String("commit", commit))
	return src, nil
}

func relativeDir(root, dir string) (string, error) {
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}
	if d, err := filepath.EvalSymlinks(dir); err == nil {
		dir = d
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
