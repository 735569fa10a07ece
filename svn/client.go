package svn

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/svnview/svnview/svn/internal/cmdlog"
)

// DefaultBinary is the client executable resolved through PATH when no
// explicit path is given.
const DefaultBinary = "svn"

// Client invokes the svn command-line client and parses its reports.
// A Client holds no mutable state; operations may run concurrently, each
// spawning an independent subprocess. It does not serialize commands
// against one working copy - callers that mutate the same working copy
// concurrently must coordinate themselves.
type Client struct {
	binary  string
	runner  Runner
	execCtx ExecContext
}

// NewClient returns a Client wrapping the given executable. An empty
// binary falls back to DefaultBinary.
func NewClient(binary string, execCtx ExecContext) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		binary:  binary,
		runner:  &execRunner{binary: binary},
		execCtx: execCtx,
	}
}

// args builds the argument vector for one operation: context-derived
// global flags first, then the operation and its own flags.
func (c *Client) args(op string, rest ...string) []string {
	out := append([]string{}, c.execCtx.GlobalArgs()...)
	out = append(out, op)
	return append(out, rest...)
}

// Status reports the working-copy state of every item under wcPath.
func (c *Client) Status(ctx context.Context, wcPath string) (*StatusResult, error) {
	done := cmdlog.Op("status", "path", wcPath)

	out, err := c.runner.Run(ctx, c.args("status", "--xml", "--verbose"), wcPath)
	if err != nil {
		done(err)
		return nil, err
	}

	result, err := ParseStatus(wcPath, out)
	done(err)
	return result, err
}

// Log returns up to limit history entries for target, newest first.
// A limit of 0 or less fetches the full history.
func (c *Client) Log(ctx context.Context, target string, limit int) (*LogResult, error) {
	done := cmdlog.Op("log", "target", target, "limit", limit)

	rest := []string{"--xml", "--verbose"}
	if limit > 0 {
		rest = append(rest, "--limit", fmt.Sprint(limit))
	}
	rest = append(rest, target)

	out, err := c.runner.Run(ctx, c.args("log", rest...), "")
	if err != nil {
		done(err)
		return nil, err
	}

	result, err := ParseLog(out)
	done(err)
	return result, err
}

// Info describes the single node at target, which may be a working-copy
// path or a repository URL.
func (c *Client) Info(ctx context.Context, target string) (*InfoResult, error) {
	done := cmdlog.Op("info", "target", target)

	out, err := c.runner.Run(ctx, c.args("info", "--xml", target), "")
	if err != nil {
		done(err)
		return nil, err
	}

	result, err := ParseInfo(out)
	done(err)
	return result, err
}

// List enumerates the repository children of target.
func (c *Client) List(ctx context.Context, target string) (*ListResult, error) {
	done := cmdlog.Op("list", "target", target)

	out, err := c.runner.Run(ctx, c.args("list", "--xml", target), "")
	if err != nil {
		done(err)
		return nil, err
	}

	result, err := ParseList(target, out)
	done(err)
	return result, err
}

// WorkingCopyRoot resolves the root directory of the working copy
// containing target.
func (c *Client) WorkingCopyRoot(ctx context.Context, target string) (string, error) {
	info, err := c.Info(ctx, target)
	if err != nil {
		return "", err
	}
	if info.WorkingCopyRoot == "" {
		return "", fmt.Errorf("%s is not inside a working copy", target)
	}
	return info.WorkingCopyRoot, nil
}

// ToolVersion reports the installed client's version, parsed so callers
// can gate features on it.
func (c *Client) ToolVersion(ctx context.Context) (*semver.Version, error) {
	done := cmdlog.Op("version")

	out, err := c.runner.Run(ctx, []string{"--version", "--quiet"}, "")
	if err != nil {
		done(err)
		return nil, err
	}

	v, err := semver.NewVersion(strings.TrimSpace(out))
	if err != nil {
		err = fmt.Errorf("unrecognized svn version %q: %w", strings.TrimSpace(out), err)
	}
	done(err)
	return v, err
}

// Update brings the working copy at wcPath up to date and returns the
// client's own progress text.
func (c *Client) Update(ctx context.Context, wcPath string) (string, error) {
	return c.run(ctx, wcPath, "update")
}

// Add schedules paths for addition.
func (c *Client) Add(ctx context.Context, wcPath string, paths ...string) (string, error) {
	return c.run(ctx, wcPath, "add", paths...)
}

// Revert discards local modifications to paths.
func (c *Client) Revert(ctx context.Context, wcPath string, paths ...string) (string, error) {
	return c.run(ctx, wcPath, "revert", paths...)
}

// Commit sends scheduled changes to the repository.
func (c *Client) Commit(ctx context.Context, wcPath, message string, paths ...string) (string, error) {
	rest := append([]string{"--message", message}, paths...)
	return c.run(ctx, wcPath, "commit", rest...)
}

// Cleanup releases write locks left behind by an interrupted operation.
func (c *Client) Cleanup(ctx context.Context, wcPath string) (string, error) {
	return c.run(ctx, wcPath, "cleanup")
}

// run executes a mutating operation inside wcPath. These are plain
// orchestration - no XML, the tool's text output goes back as-is.
func (c *Client) run(ctx context.Context, wcPath, op string, rest ...string) (string, error) {
	done := cmdlog.Op(op, "path", wcPath)

	out, err := c.runner.Run(ctx, c.args(op, rest...), wcPath)
	if err != nil {
		done(err)
		return "", fmt.Errorf("svn %s failed: %w", op, err)
	}
	done(nil)
	return out, nil
}
