package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/svnview/svnview/svn"
)

const usage = `usage: svnview [flags] <command> [target]

commands:
  status [path]    working-copy status (default target ".")
  log [target]     commit history, newest first
  info [target]    describe a single node
  list [target]    repository listing
  version          installed client version

flags:
`

func main() {
	binary := flag.String("bin", svn.DefaultBinary, "svn executable to invoke")
	contextFile := flag.String("context", "", "execution context YAML (proxy/SSL/timeout)")
	limit := flag.Int("limit", 25, "maximum log entries (0 for full history)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	target := flag.Arg(1)
	if target == "" {
		target = "."
	}

	execCtx, err := svn.LoadExecContext(*contextFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading execution context: %v\n", err)
		os.Exit(1)
	}

	client := svn.NewClient(*binary, execCtx)
	ctx := context.Background()

	if err := run(ctx, client, command, target, *limit); err != nil {
		// The tool's own stderr is the most useful thing to show.
		var cmdErr *svn.CommandError
		if errors.As(err, &cmdErr) {
			fmt.Fprintln(os.Stderr, cmdErr.Stderr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *svn.Client, command, target string, limit int) error {
	switch command {
	case "status":
		result, err := client.Status(ctx, target)
		if err != nil {
			return err
		}
		renderStatus(os.Stdout, result)
	case "log":
		result, err := client.Log(ctx, target, limit)
		if err != nil {
			return err
		}
		renderLog(os.Stdout, result)
	case "info":
		result, err := client.Info(ctx, target)
		if err != nil {
			return err
		}
		renderInfo(os.Stdout, result)
	case "list":
		result, err := client.List(ctx, target)
		if err != nil {
			return err
		}
		renderList(os.Stdout, result)
	case "version":
		v, err := client.ToolVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Println(v)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
