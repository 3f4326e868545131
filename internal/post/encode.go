package post

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Encode renders the post back into its source form: a YAML header fenced by
// "---" lines followed by the body. Header keys keep a stable order so the
// output is deterministic and re-parsing yields an equal Post.
func (p *Post) Encode() ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	addEntry(mapping, "title", scalarNode(p.Title))
	addEntry(mapping, "description", scalarNode(p.Description))
	addEntry(mapping, "date", scalarNode(p.Date.Format(time.RFC3339)))
	if len(p.Tags) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, tag := range p.Tags {
			seq.Content = append(seq.Content, scalarNode(tag))
		}
		addEntry(mapping, "tags", seq)
	}
	if p.Slug != "" {
		addEntry(mapping, "slug", scalarNode(p.Slug))
	}

	header, err := yaml.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("post: encode header: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(header) + len(p.Body) + 8)
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")
	buf.Write(p.Body)
	return buf.Bytes(), nil
}

func addEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalarNode(key), value)
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
