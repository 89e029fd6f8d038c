// Package config provides the dependency document codec and the settings loader.
package config

import (
	"bytes"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	keyName         = "name"
	keyDependencies = "dependencies"
	keyPrefix       = "prefix"
)

var _ ports.DocumentCodec = (*Codec)(nil)

// Codec implements ports.DocumentCodec for conda environment YAML documents.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse decodes a spec or lockfile body into a DependencySpec.
func (c *Codec) Parse(data []byte) (*domain.DependencySpec, error) {
	root, err := decodeMapping(data)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrMalformedSpec, err.Error())
	}
	if root == nil {
		return nil, zerr.Wrap(domain.ErrMalformedSpec, "document has no top-level mapping")
	}

	nameNode := lookup(root, keyName)
	if nameNode == nil || nameNode.Kind != yaml.ScalarNode || nameNode.ShortTag() != "!!str" || nameNode.Value == "" {
		return nil, zerr.Wrap(domain.ErrMalformedSpec, "document has no name field")
	}

	depsNode := lookup(root, keyDependencies)
	if depsNode == nil || depsNode.Kind != yaml.SequenceNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedSpec, "document has no dependencies sequence"), "name", nameNode.Value)
	}

	spec := &domain.DependencySpec{
		Name:         nameNode.Value,
		Dependencies: make([]domain.DependencyEntry, 0, len(depsNode.Content)),
	}
	for _, item := range depsNode.Content {
		spec.Dependencies = append(spec.Dependencies, parseEntries(item)...)
	}

	return spec, nil
}

// Normalize overwrites the document's name and drops its prefix field.
// Key order and every other field are preserved.
func (c *Codec) Normalize(export []byte, name string) ([]byte, error) {
	root, err := decodeMapping(export)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrExportParseFailed, err.Error())
	}
	if root == nil {
		return nil, zerr.Wrap(domain.ErrExportParseFailed, "exported document has no top-level mapping")
	}

	if nameNode := lookup(root, keyName); nameNode != nil {
		nameNode.Kind = yaml.ScalarNode
		nameNode.Tag = "!!str"
		nameNode.Style = 0
		nameNode.Value = name
		nameNode.Content = nil
	} else {
		root.Content = append([]*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: keyName},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
		}, root.Content...)
	}

	remove(root, keyPrefix)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, zerr.Wrap(domain.ErrExportParseFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrExportParseFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// decodeMapping returns the top-level mapping node, or nil when the document
// is empty or its root is not a mapping.
func decodeMapping(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil
	}
	return root, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func remove(mapping *yaml.Node, key string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
			return
		}
	}
}

// parseEntries maps one item of the dependencies sequence to its entries.
// A mapping item yields one entry per key.
func parseEntries(item *yaml.Node) []domain.DependencyEntry {
	switch item.Kind {
	case yaml.ScalarNode:
		return []domain.DependencyEntry{domain.DirectPackage{Token: item.Value}}
	case yaml.SequenceNode:
		return []domain.DependencyEntry{domain.NestedGroup{Tokens: scalars(item)}}
	case yaml.MappingNode:
		entries := make([]domain.DependencyEntry, 0, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			value := item.Content[i+1]
			if value.Kind != yaml.SequenceNode {
				entries = append(entries, domain.UnrecognizedEntry{Kind: "mapping"})
				continue
			}
			entries = append(entries, domain.NestedGroup{
				Ecosystem: item.Content[i].Value,
				Tokens:    scalars(value),
			})
		}
		return entries
	default:
		return []domain.DependencyEntry{domain.UnrecognizedEntry{Kind: kindName(item.Kind)}}
	}
}

func scalars(seq *yaml.Node) []string {
	tokens := make([]string, 0, len(seq.Content))
	for _, n := range seq.Content {
		if n.Kind == yaml.ScalarNode {
			tokens = append(tokens, n.Value)
		}
	}
	return tokens
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
