package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"mosql_gen/internal/domain"
)

// служебные поля, которые не описывают данные
var skipFields = map[string]bool{"_id": true, "__v": true}

// Формы вложенных документов, по которым узнаем составные типы
var compositeShapes = []struct {
	fieldType string
	keys      []string
}{
	{"cloudinaryimage", []string{"public_id", "secure_url"}},
	{"s3file", []string{"filename", "originalname"}},
	{"location", []string{"street1", "suburb"}},
	{"location", []string{"street1", "geo"}},
	{"name", []string{"first", "last"}},
}

// InferFieldType угадывает тип поля контент-модели по значению BSON.
// Незнакомые значения получают имя BSON типа, маппер превратит его в комментарий.
func InferFieldType(value any) (fieldType string, many bool) {
	switch v := value.(type) {
	case string:
		return "text", false
	case bool:
		return "boolean", false
	case int32, int64, float64, bson.Decimal128:
		return "number", false
	case bson.DateTime:
		return "datetime", false
	case bson.ObjectID:
		return "relationship", false
	case bson.D:
		return inferDocument(v), false
	case bson.A:
		return inferArray(v)
	case nil:
		return "", false
	default:
		return bsonKind(v), false
	}
}

func inferDocument(doc bson.D) string {
	keys := make(map[string]bool, len(doc))
	for _, e := range doc {
		keys[e.Key] = true
	}
	for _, shape := range compositeShapes {
		matched := true
		for _, k := range shape.keys {
			if !keys[k] {
				matched = false
				break
			}
		}
		if matched {
			return shape.fieldType
		}
	}
	return "object"
}

func inferArray(arr bson.A) (string, bool) {
	if len(arr) == 0 {
		return "", false
	}
	// [lng, lat]
	if len(arr) == 2 && isNumber(arr[0]) && isNumber(arr[1]) {
		return "geopoint", false
	}

	elemType, _ := InferFieldType(arr[0])
	for _, item := range arr[1:] {
		t, _ := InferFieldType(item)
		if t != elemType {
			return "array", false
		}
	}
	switch elemType {
	case "relationship":
		return "relationship", true
	case "text":
		return "textarray", false
	default:
		return "array", false
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int32, int64, float64:
		return true
	}
	return false
}

func bsonKind(v any) string {
	switch v.(type) {
	case bson.Binary:
		return "binary"
	case bson.Regex:
		return "regex"
	case bson.Timestamp:
		return "bsontimestamp"
	case bson.JavaScript, bson.CodeWithScope:
		return "javascript"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// fieldSet накапливает поля в порядке первого появления
type fieldSet struct {
	order  []string
	fields map[string]domain.FieldDescriptor
}

func newFieldSet() *fieldSet {
	return &fieldSet{fields: make(map[string]domain.FieldDescriptor)}
}

// Observe учитывает один документ выборки
func (s *fieldSet) Observe(doc bson.D) {
	for _, e := range doc {
		// ключи, которые нельзя записать в документ без кавычек, пропускаем
		if skipFields[e.Key] || checkPlain(e.Key) != nil {
			continue
		}
		fieldType, many := InferFieldType(e.Value)
		existing, seen := s.fields[e.Key]
		if !seen {
			s.order = append(s.order, e.Key)
			s.fields[e.Key] = domain.FieldDescriptor{Key: e.Key, Path: e.Key, Type: fieldType, Many: many}
			continue
		}
		// null и пустые массивы тип не уточняют
		if fieldType == "" {
			continue
		}
		if existing.Type == "" {
			existing.Type, existing.Many = fieldType, many
		} else if existing.Type != fieldType {
			existing.Type, existing.Many = "mixed", false
		}
		s.fields[e.Key] = existing
	}
}

// Fields возвращает поля; тип, который так и не определился, становится "unknown"
func (s *fieldSet) Fields() []domain.FieldDescriptor {
	out := make([]domain.FieldDescriptor, 0, len(s.order))
	for _, key := range s.order {
		f := s.fields[key]
		if f.Type == "" {
			f.Type = "unknown"
		}
		out = append(out, f)
	}
	return out
}
