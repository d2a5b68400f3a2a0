package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tss-calculator/ship/pkg/release/application/model"
)

type MergeStrategy struct {
	ToSameBranch    []string       `yaml:"toSameBranch"`
	ToReleaseBranch BranchMappings `yaml:"toReleaseBranch"`
}

// BranchMappings keeps toReleaseBranch entries in the order they are declared.
type BranchMappings []model.BranchMapping

func (mappings *BranchMappings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %v: toReleaseBranch must be a mapping", node.Line)
	}
	result := make(BranchMappings, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var base, destination string
		if err := node.Content[i].Decode(&base); err != nil {
			return errors.Wrapf(err, "line %v: invalid base branch", node.Content[i].Line)
		}
		if err := node.Content[i+1].Decode(&destination); err != nil {
			return errors.Wrapf(err, "line %v: invalid destination branch for %v", node.Content[i+1].Line, base)
		}
		result = append(result, model.BranchMapping{Base: base, Destination: destination})
	}
	*mappings = result
	return nil
}

type Config struct {
	MergeStrategy       *MergeStrategy `yaml:"mergeStrategy"`
	StagingBranchPrefix string         `yaml:"stagingBranchPrefix"`
	RepoURL             string         `yaml:"repoURL"`
}

// Load reads a YAML or JSON release config.
func Load(path string) (model.Release, error) {
	configBody, err := os.ReadFile(path)
	if err != nil {
		return model.Release{}, errors.Wrapf(err, "failed to read config file: %v", path)
	}
	return Parse(configBody)
}

// LoadOrDefault falls back to the default release config when the file does not exist.
func LoadOrDefault(path string) (model.Release, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return model.DefaultRelease(), nil
	}
	return Load(path)
}

func Parse(configBody []byte) (model.Release, error) {
	var infraConfig Config
	err := yaml.Unmarshal(configBody, &infraConfig)
	if err != nil {
		return model.Release{}, errors.Wrap(err, "failed to unmarshal config")
	}
	release := mapInfraConfigToAppConfig(infraConfig)
	err = assertMergeStrategy(release.MergeStrategy)
	if err != nil {
		return model.Release{}, err
	}
	return release, nil
}

func mapInfraConfigToAppConfig(config Config) model.Release {
	release := model.DefaultRelease()
	if config.MergeStrategy != nil {
		release.MergeStrategy = model.MergeStrategy{
			ToSameBranch:    config.MergeStrategy.ToSameBranch,
			ToReleaseBranch: config.MergeStrategy.ToReleaseBranch,
		}
	}
	if config.StagingBranchPrefix != "" {
		release.StagingBranchPrefix = config.StagingBranchPrefix
	}
	release.RepoURL = config.RepoURL
	return release
}

func assertMergeStrategy(strategy model.MergeStrategy) error {
	sameBranches := make(map[string]struct{}, len(strategy.ToSameBranch))
	for _, branch := range strategy.ToSameBranch {
		if branch == "" {
			return errors.New("mergeStrategy.toSameBranch contains an empty branch")
		}
		sameBranches[branch] = struct{}{}
	}
	bases := make(map[string]struct{}, len(strategy.ToReleaseBranch))
	for _, mapping := range strategy.ToReleaseBranch {
		if mapping.Base == "" || mapping.Destination == "" {
			return errors.Errorf("mergeStrategy.toReleaseBranch has an empty branch in %q: %q", mapping.Base, mapping.Destination)
		}
		if _, ok := sameBranches[mapping.Base]; ok {
			return errors.Errorf("branch %v is declared in both toSameBranch and toReleaseBranch", mapping.Base)
		}
		if _, ok := bases[mapping.Base]; ok {
			return errors.Errorf("branch %v is declared more than once in toReleaseBranch", mapping.Base)
		}
		bases[mapping.Base] = struct{}{}
	}
	return nil
}
