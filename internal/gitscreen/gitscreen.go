// Package gitscreen wraps the git porcelain (shelled out to the git
// binary, the same way the rest of this module's host-tool integrations
// work) for the status/diff/log/commit screen.
package gitscreen

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// StatusEntry is one line of `git status --porcelain=v1`.
type StatusEntry struct {
	Code string // two-letter XY porcelain status
	Path string
}

// Status returns the porcelain status of repo and the branch it's on.
func Status(ctx context.Context, repoDir string) ([]StatusEntry, string, error) {
	branch, err := Branch(ctx, repoDir)
	if err != nil {
		return nil, "", err
	}
	out, err := runGit(ctx, repoDir, "status", "--porcelain=v1")
	if err != nil {
		return nil, "", err
	}
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		entries = append(entries, StatusEntry{Code: line[:2], Path: strings.TrimSpace(line[3:])})
	}
	return entries, branch, nil
}

// Branch returns the current branch name, or the short commit hash when
// detached.
func Branch(ctx context.Context, repoDir string) (string, error) {
	out, err := runGit(ctx, repoDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Diff returns the unstaged diff of path relative to repoDir.
func Diff(ctx context.Context, repoDir, path string) (string, error) {
	return runGit(ctx, repoDir, "diff", "--", path)
}

// Log returns the last n one-line log entries.
func Log(ctx context.Context, repoDir string, n int) ([]string, error) {
	out, err := runGit(ctx, repoDir, "log", "--oneline", "-n", strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

// StagePath runs `git add` on path.
func StagePath(ctx context.Context, repoDir, path string) error {
	_, err := runGit(ctx, repoDir, "add", "--", path)
	return err
}

// UnstagePath runs `git restore --staged` on path.
func UnstagePath(ctx context.Context, repoDir, path string) error {
	_, err := runGit(ctx, repoDir, "restore", "--staged", "--", path)
	return err
}

// Commit runs `git commit -m message`.
func Commit(ctx context.Context, repoDir, message string) error {
	_, err := runGit(ctx, repoDir, "commit", "-m", message)
	return err
}

func runGit(ctx context.Context, repoDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoDir
	out, err := cmd.Output()
	return string(out), err
}

