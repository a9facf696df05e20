package model

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"mosql_gen/internal/domain"
)

// FileSource читает модель из YAML файла:
//
//	lists:
//	  User:
//	    table: users
//	    fields:
//	      name: name
//	      posts: {type: relationship, many: true}
//
// Порядок списков и полей берется из файла.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Load(ctx context.Context) (*domain.SchemaModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	m, err := ParseModel(raw)
	if err != nil {
		return nil, fmt.Errorf("model file %s: %w", f.Path, err)
	}
	return m, nil
}

type fieldDoc struct {
	Type string `yaml:"type"`
	Path string `yaml:"path"`
	Many bool   `yaml:"many"`
}

// ParseModel разбирает YAML модель. Обычный Decode в map теряет порядок,
// поэтому идем по yaml.Node.
func ParseModel(raw []byte) (*domain.SchemaModel, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	m := &domain.SchemaModel{}
	if len(root.Content) == 0 {
		return m, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: model must be a mapping", doc.Line)
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		switch key.Value {
		case "name":
			if err := checkPlain(value.Value); err != nil {
				return nil, fmt.Errorf("line %d: name: %w", value.Line, err)
			}
			m.Name = value.Value
		case "lists":
			lists, err := parseLists(value)
			if err != nil {
				return nil, err
			}
			m.Lists = lists
		default:
			return nil, fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return m, nil
}

func parseLists(node *yaml.Node) ([]domain.ListDescriptor, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: lists must be a mapping", node.Line)
	}
	lists := make([]domain.ListDescriptor, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		list, err := parseList(node.Content[i].Value, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func parseList(key string, node *yaml.Node) (domain.ListDescriptor, error) {
	list := domain.ListDescriptor{Key: key}
	// пустой список: "Tag:" без полей
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return list, nil
	}
	if node.Kind != yaml.MappingNode {
		return list, fmt.Errorf("line %d: list %s must be a mapping", node.Line, key)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		switch k.Value {
		case "table":
			if err := checkPlain(v.Value); err != nil {
				return list, fmt.Errorf("line %d: table of %s: %w", v.Line, key, err)
			}
			list.Table = v.Value
		case "fields":
			if v.Kind != yaml.MappingNode {
				return list, fmt.Errorf("line %d: fields of %s must be a mapping", v.Line, key)
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				f, err := parseField(v.Content[j].Value, v.Content[j+1])
				if err != nil {
					return list, fmt.Errorf("list %s: %w", key, err)
				}
				list.Fields = append(list.Fields, f)
			}
		default:
			return list, fmt.Errorf("line %d: unknown key %q in list %s", k.Line, k.Value, key)
		}
	}
	return list, nil
}

// поле можно записать коротко "email: email" или полностью мапой
func parseField(key string, node *yaml.Node) (domain.FieldDescriptor, error) {
	f := domain.FieldDescriptor{Key: key, Path: key}
	switch node.Kind {
	case yaml.ScalarNode:
		f.Type = node.Value
	case yaml.MappingNode:
		var doc fieldDoc
		if err := node.Decode(&doc); err != nil {
			return f, fmt.Errorf("line %d: field %s: %w", node.Line, key, err)
		}
		f.Type = doc.Type
		f.Many = doc.Many
		if doc.Path != "" {
			f.Path = doc.Path
		}
	default:
		return f, fmt.Errorf("line %d: field %s must be a type name or a mapping", node.Line, key)
	}
	if f.Type == "" {
		return f, fmt.Errorf("line %d: field %s has no type", node.Line, key)
	}
	if err := checkPlain(f.Path); err != nil {
		return f, fmt.Errorf("line %d: path of field %s: %w", node.Line, key, err)
	}
	if err := checkPlain(f.Type); err != nil {
		return f, fmt.Errorf("line %d: type of field %s: %w", node.Line, key, err)
	}
	return f, nil
}

// checkPlain пропускает только значения, которые в документе MoSQL
// можно записать без кавычек и прочитать обратно тем же
func checkPlain(v string) error {
	switch {
	case strings.ContainsAny(v, "\n\r\t"):
		return fmt.Errorf("%q contains a control character", v)
	case strings.Contains(v, ": ") || strings.HasSuffix(v, ":"):
		return fmt.Errorf("%q contains \": \"", v)
	case strings.Contains(v, " #"):
		return fmt.Errorf("%q contains \" #\"", v)
	case v != strings.TrimSpace(v):
		return fmt.Errorf("%q has leading or trailing spaces", v)
	case v != "" && strings.ContainsRune("#&*!|>'\"%@`{}[],?-:", rune(v[0])):
		return fmt.Errorf("%q starts with %q", v, v[0])
	}
	return nil
}
