// Package docs embeds the user documentation topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the content of a single documentation topic.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of the given topics concatenated together. A
// "*" entry expands to every topic but the readme.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := AllTopics()
			if err != nil {
				return "", err
			}
			content, err := Topics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists the available topics, readme excluded, in sorted order.
func AllTopics() ([]string, error) {
	entries, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
