package dependency

import (
	"context"
	"errors"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/tss-calculator/ship/pkg/release/application/model"
	"github.com/tss-calculator/ship/pkg/release/application/service"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/command"
	"github.com/tss-calculator/ship/pkg/release/infrastructure/provider"
)

type containerKey struct{}

type Container interface {
	Release() service.Release
	Config() model.Release
}

func NewDependencyContainer(
	logger applogger.Logger,
	releaseConfig model.Release,
	toolVersion model.Version,
	workDir string,
	silentMode bool,
) Container {
	runner := command.NewCommandRunner(logger, silentMode)
	gitProvider := provider.NewGitProvider(workDir, runner)
	releaseService := service.NewReleaseService(releaseConfig, toolVersion, logger, gitProvider)

	return &container{
		release: releaseService,
		config:  releaseConfig,
	}
}

type container struct {
	release service.Release
	config  model.Release
}

func (c *container) Release() service.Release {
	return c.release
}

func (c *container) Config() model.Release {
	return c.config
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(containerKey{})
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}
