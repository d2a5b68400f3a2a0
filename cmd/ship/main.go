package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"
	"github.com/urfave/cli/v2"

	"github.com/tss-calculator/ship/pkg/release/infrastructure/config"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/dependency"
)

// assetsVersion tags the image assets linked from pull request bodies, set with -ldflags.
var assetsVersion = "0.26.0"

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger()

	app := &cli.App{
		Name:  "ship",
		Usage: "decide and describe releases according to the merge strategy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "ship.config.yaml",
			},
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
			},
		},
		Before: func(c *cli.Context) error {
			releaseConfig, err := config.LoadOrDefault(c.String("config"))
			if err != nil {
				return err
			}
			container := dependency.NewDependencyContainer(
				mainLogger, releaseConfig, assetsVersion, c.String("dir"), os.Getenv("SILENT") != "",
			)
			c.Context = dependency.ContainerToContext(c.Context, container)
			return nil
		},
		Commands: cli.Commands{
			&cli.Command{
				Name: "commit-message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "version", Required: true},
					&cli.StringFlag{Name: "base-branch", Required: true},
				},
				Action: func(c *cli.Context) error {
					return commitMessage(c.Context, c.App.Writer, c.String("version"), c.String("base-branch"))
				},
			},
			&cli.Command{
				Name: "pr-title",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "version", Required: true},
				},
				Action: func(c *cli.Context) error {
					return pullRequestTitle(c.App.Writer, c.String("version"))
				},
			},
			&cli.Command{
				Name: "prepare",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "version", Required: true},
					&cli.StringFlag{Name: "next-version", Required: true},
					&cli.StringFlag{Name: "base-branch"},
					&cli.StringFlag{Name: "staging-branch"},
					&cli.StringFlag{Name: "repo-url"},
				},
				Action: func(c *cli.Context) error {
					return prepare(c.Context, c.App.Writer, prepareFlags{
						version:       c.String("version"),
						nextVersion:   c.String("next-version"),
						baseBranch:    c.String("base-branch"),
						stagingBranch: c.String("staging-branch"),
						repoURL:       c.String("repo-url"),
					})
				},
			},
			&cli.Command{
				Name: "should-release",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "version", Required: true},
					&cli.StringFlag{Name: "branch"},
					&cli.StringFlag{Name: "commit-message"},
				},
				Action: func(c *cli.Context) error {
					return shouldRelease(c.Context, c.String("version"), c.String("branch"),
						optionalFlag(c.IsSet("commit-message"), c.String("commit-message")))
				},
			},
		},
	}
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		mainLogger.FatalError(err, "failed execute command "+strings.Join(os.Args, " "))
	}
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
