// Package git reads lightweight repository status for the status bar.
// It shells out to the git binary rather than parsing .git internals,
// and caches results so the UI can poll cheaply.
package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotRepository is returned when the path is not inside a work tree.
var ErrNotRepository = errors.New("not a git repository")

// Status is the summary shown in the status bar.
type Status struct {
	Branch string
	Dirty  bool
}

// DiscoverRoot walks up from path looking for a .git entry and returns
// the repository root.
func DiscoverRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	current := abs
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotRepository
		}
		current = parent
	}
}

// ReadStatus queries git for the current branch and whether the work
// tree has uncommitted changes.
func ReadStatus(dir string) (*Status, error) {
	branch, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, ErrNotRepository
	}

	porcelain, err := runGit(dir, "status", "--porcelain")
	if err != nil {
		return nil, ErrNotRepository
	}

	return &Status{Branch: branch, Dirty: porcelain != ""}, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Cache wraps ReadStatus with a TTL so the event loop can refresh the
// status bar every tick without forking git each time.
type Cache struct {
	ttl time.Duration

	mu      sync.Mutex
	dir     string
	status  *Status
	fetched time.Time
}

// NewCache returns a cache that refreshes at most once per ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Status returns the cached status for dir, refreshing when the cache
// is stale or the directory changed. A nil result means dir is not
// inside a repository.
func (c *Cache) Status(dir string) *Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dir == c.dir && time.Since(c.fetched) < c.ttl {
		return c.status
	}

	c.dir = dir
	c.fetched = time.Now()
	c.status = nil

	// Walking for .git is much cheaper than forking git, so settle
	// non-repo directories without spawning anything.
	if _, err := DiscoverRoot(dir); err != nil {
		return nil
	}
	status, err := ReadStatus(dir)
	if err != nil {
		return nil
	}
	c.status = status
	return status
}

// Invalidate drops the cached result so the next Status call re-queries
// git. Used after commands finish, since they may have touched the tree.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = time.Time{}
}
