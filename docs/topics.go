// Package docs embeds the user manual as markdown topics.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// readme is the index topic, served by default and excluded from listings.
const readme = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := manual.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics
// concatenated together. "*" expands to all topics.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			content, err := GetTopics(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			continue
		}
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of documentation topics, without
// the index.
func GetAllTopics() ([]string, error) {
	pages, err := fs.Glob(manual, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(pages))
	for _, page := range pages {
		if topic := strings.TrimSuffix(page, ".md"); topic != readme {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}
