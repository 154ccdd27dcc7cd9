package git

import (
	"context"
	"errors"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type source struct {
	path string
	repo *git.Repository
}

// NewSource opens the repository containing path. Parent directories are searched for .git.
func NewSource(path string) (interfaces.CommitSource, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(err, "not a git repository",
			goerr.V("path", path),
			goerr.T(types.ErrTagSourceUnavailable),
		)
	}

	return &source{path: path, repo: repo}, nil
}

// Commits walks history from HEAD and returns commits made at or after since.
func (s *source) Commits(ctx context.Context, since time.Time) ([]*model.Commit, error) {
	logger := ctxlog.From(ctx)

	head, err := s.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, goerr.Wrap(err, "repository has no commits",
				goerr.V("path", s.path),
				goerr.T(types.ErrTagSourceUnavailable),
			)
		}
		return nil, goerr.Wrap(err, "failed to resolve HEAD",
			goerr.V("path", s.path),
			goerr.T(types.ErrTagSourceUnavailable),
		)
	}

	iter, err := s.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
		Since: &since,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read commit log",
			goerr.V("path", s.path),
			goerr.T(types.ErrTagSourceUnavailable),
		)
	}
	defer iter.Close()

	var commits []*model.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		files, err := changedFiles(c)
		if err != nil {
			logger.Warn("Failed to compute changed files",
				"hash", c.Hash.String(),
				"error", err,
			)
		}

		commits = append(commits, &model.Commit{
			Hash:         c.Hash.String(),
			Author:       c.Author.Name,
			Timestamp:    c.Committer.When,
			Message:      c.Message,
			ChangedFiles: files,
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, goerr.Wrap(err, "failed to iterate commits", goerr.V("path", s.path))
	}

	logger.Debug("Loaded commits",
		"path", s.path,
		"since", since,
		"count", len(commits),
	)

	return commits, nil
}

// changedFiles lists paths touched by c relative to its first parent.
func changedFiles(c *object.Commit) ([]string, error) {
	stats, err := c.Stats()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute commit stats")
	}

	files := make([]string, 0, len(stats))
	for _, st := range stats {
		files = append(files, st.Name)
	}
	return files, nil
}
