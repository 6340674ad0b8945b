package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const bundleFileName = ".bundle"

type bundleProfile struct {
	Output    string            `yaml:"output"`
	Author    string            `yaml:"author"`
	Exclude   []string          `yaml:"exclude"`
	Languages map[string]string `yaml:"languages"`
}

type bundleFile struct {
	Echo      string                   `yaml:"echo"`
	Output    string                   `yaml:"output"`
	Author    string                   `yaml:"author"`
	Exclude   []string                 `yaml:"exclude"`
	Languages map[string]string        `yaml:"languages"`
	Profiles  map[string]bundleProfile `yaml:"profiles"`
}

// loadBundleFile parses the .bundle at path. A missing file is an empty config.
func loadBundleFile(path string) (*bundleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &bundleFile{}, nil
		}
		return nil, err
	}
	var cfg bundleFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// bundleDefaults is a .bundle file flattened for one profile.
type bundleDefaults struct {
	output    string
	author    string
	exclude   []string
	languages map[string]string
}

// readBundleFile loads path and merges the named profile (or "default" when
// the profile is missing) over the top-level values. A missing file yields
// empty defaults.
func readBundleFile(path string, profile string) (*bundleDefaults, error) {
	cfg, err := loadBundleFile(path)
	if err != nil {
		return nil, err
	}

	defaults := &bundleDefaults{
		output:    cfg.Output,
		author:    cfg.Author,
		exclude:   append([]string{}, cfg.Exclude...),
		languages: make(map[string]string, len(cfg.Languages)),
	}
	for token, ext := range cfg.Languages {
		defaults.languages[token] = ext
	}

	if len(cfg.Profiles) == 0 {
		return defaults, nil
	}
	prof, ok := cfg.Profiles[profile]
	if !ok {
		prof, ok = cfg.Profiles["default"]
	}
	if !ok {
		return defaults, nil
	}

	if prof.Output != "" {
		defaults.output = prof.Output
	}
	if prof.Author != "" {
		defaults.author = prof.Author
	}
	defaults.exclude = append(defaults.exclude, prof.Exclude...)
	for token, ext := range prof.Languages {
		defaults.languages[token] = ext
	}
	return defaults, nil
}

func homeBundleFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, bundleFileName), nil
}

// readEchoSetting returns the normalized echo mode stored in the .bundle at
// path, or "" when the key is absent.
func readEchoSetting(path string) (string, error) {
	cfg, err := loadBundleFile(path)
	if err != nil {
		return "", err
	}
	if cfg.Echo == "" {
		return "", nil
	}
	mode, ok := normalizeEchoMode(cfg.Echo)
	if !ok {
		return "", fmt.Errorf("invalid echo mode %q in %s (expected none, print, copy, or ssh-copy)", cfg.Echo, path)
	}
	return mode, nil
}

// writeEchoSetting stores mode under the echo key of the .bundle at path.
// The rest of the document, comments included, is written back untouched.
func writeEchoSetting(path string, mode string) error {
	normalized, ok := normalizeEchoMode(mode)
	if !ok {
		return fmt.Errorf("invalid echo mode %q (expected none, print, copy, or ssh-copy)", mode)
	}

	var doc yaml.Node
	perm := os.FileMode(0o644)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if info, err := os.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	case !os.IsNotExist(err):
		return err
	}

	root, err := documentMapping(&doc)
	if err != nil {
		return fmt.Errorf("cannot set echo in %s: %w", path, err)
	}
	setMappingScalar(root, "echo", normalized)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return atomicWriteFile(path, out, perm)
}

func readHomeEchoSetting() (string, error) {
	path, err := homeBundleFilePath()
	if err != nil {
		return "", err
	}
	return readEchoSetting(path)
}

func writeHomeEchoSetting(mode string) error {
	path, err := homeBundleFilePath()
	if err != nil {
		return err
	}
	return writeEchoSetting(path, mode)
}

// documentMapping returns the top-level mapping of doc, creating it for an
// empty document.
func documentMapping(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("top level is not a mapping")
	}
	return root, nil
}

func setMappingScalar(m *yaml.Node, key, value string) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != key {
			continue
		}
		v := m.Content[i+1]
		if v.Kind == yaml.ScalarNode {
			v.Tag, v.Value, v.Style = "!!str", value, 0
			return
		}
		m.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
		return
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}
