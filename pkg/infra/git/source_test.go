package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	gitinfra "github.com/m-mizutani/devmemory/pkg/infra/git"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fileChange struct {
	path    string
	content string
}

func commitFiles(t *testing.T, repo *git.Repository, dir, msg string, when time.Time, changes ...fileChange) {
	t.Helper()

	wt, err := repo.Worktree()
	gt.NoError(t, err)

	for _, ch := range changes {
		full := filepath.Join(dir, ch.path)
		gt.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		gt.NoError(t, os.WriteFile(full, []byte(ch.content), 0644))
		_, err := wt.Add(ch.path)
		gt.NoError(t, err)
	}

	sig := &object.Signature{Name: "alice", Email: "alice@example.com", When: when}
	_, err = wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})
	gt.NoError(t, err)
}

func TestSource_Commits(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	gt.NoError(t, err)

	now := time.Now()
	commitFiles(t, repo, dir, "Initial commit", now.AddDate(0, 0, -60),
		fileChange{"README.md", "hello"},
	)
	commitFiles(t, repo, dir, "Add Redis for caching", now.Add(-2*time.Hour),
		fileChange{"requirements.txt", "redis\n"},
		fileChange{"app/cache.py", "import redis\n"},
	)
	commitFiles(t, repo, dir, "Refactor auth", now.Add(-time.Hour),
		fileChange{"auth.py", "pass\n"},
	)

	src, err := gitinfra.NewSource(dir)
	gt.NoError(t, err)

	t.Run("window excludes old commits", func(t *testing.T) {
		commits, err := src.Commits(ctx, now.AddDate(0, 0, -30))
		gt.NoError(t, err)
		gt.A(t, commits).Length(2)

		gt.Equal(t, commits[0].Message, "Refactor auth")
		gt.Equal(t, commits[0].ChangedFiles, []string{"auth.py"})
		gt.Equal(t, commits[0].Author, "alice")
		gt.Equal(t, len(commits[0].Hash), 40)

		gt.Equal(t, commits[1].Message, "Add Redis for caching")
		gt.A(t, commits[1].ChangedFiles).Length(2)
	})

	t.Run("wide window includes root commit", func(t *testing.T) {
		commits, err := src.Commits(ctx, now.AddDate(0, 0, -90))
		gt.NoError(t, err)
		gt.A(t, commits).Length(3)
		gt.Equal(t, commits[2].ChangedFiles, []string{"README.md"})
	})

	t.Run("subdirectory resolves to repository", func(t *testing.T) {
		sub, err := gitinfra.NewSource(filepath.Join(dir, "app"))
		gt.NoError(t, err)

		commits, err := sub.Commits(ctx, now.AddDate(0, 0, -30))
		gt.NoError(t, err)
		gt.A(t, commits).Length(2)
	})
}

func TestSource_NotARepository(t *testing.T) {
	_, err := gitinfra.NewSource(t.TempDir())
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagSourceUnavailable))
}

func TestSource_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	gt.NoError(t, err)

	src, err := gitinfra.NewSource(dir)
	gt.NoError(t, err)

	_, err = src.Commits(context.Background(), time.Now().AddDate(0, 0, -30))
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagSourceUnavailable))
}
