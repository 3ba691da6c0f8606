package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

// New creates a GitInfoAdapter.
func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(dir string) bool {
	_, err := open(dir)
	return err == nil
}

// CurrentBranch returns the short name of the branch HEAD points at. An
// unborn branch in a fresh repository still has a name.
func (g *GitInfoAdapter) CurrentBranch(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", ErrDetachedHead
	}
	return head.Target().Short(), nil
}

func open(dir string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
}
