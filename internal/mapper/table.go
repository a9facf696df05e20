package mapper

import (
	"fmt"
	"maps"
)

// Реляционные типы, которые понимает MoSQL
const (
	TypeText              = "text"
	TypeNumeric           = "numeric"
	TypeDouble            = "double precision"
	TypeBoolean           = "boolean"
	TypeTimestamp         = "timestamp"
	TypeTimestampTZ       = "timestamp with time zone"
	TypeInt               = "int"
	TypeTextArray         = "text array"
	TypeDoubleArray       = "double precision array"
	FieldTypeRelationship = "relationship"
	FieldTypePassword     = "password"
)

// Имена вариантов таблицы типов
const (
	VariantStandard = "standard"
	VariantExtended = "extended"
)

// SubField одна под-колонка составного типа
type SubField struct {
	Suffix string // добавляется к имени колонки через '_'
	Source string // добавляется к пути поля через '.'
	Type   string
}

// TypeTable фиксированная таблица маппинга типов полей
type TypeTable struct {
	Name         string
	Scalars      map[string]string
	Composites   map[string][]SubField
	Excluded     map[string]bool
	ManyRelation string
}

var nameFields = []SubField{
	{Suffix: "first", Source: "first", Type: TypeText},
	{Suffix: "last", Source: "last", Type: TypeText},
}

// building_name берется из .name, так пишет адрес сам контент-менеджер
var locationFields = []SubField{
	{Suffix: "street1", Source: "street1", Type: TypeText},
	{Suffix: "street2", Source: "street2", Type: TypeText},
	{Suffix: "building_name", Source: "name", Type: TypeText},
	{Suffix: "shop", Source: "shop", Type: TypeText},
	{Suffix: "number", Source: "number", Type: TypeText},
	{Suffix: "state", Source: "state", Type: TypeText},
	{Suffix: "postcode", Source: "postcode", Type: TypeText},
	{Suffix: "suburb", Source: "suburb", Type: TypeText},
	{Suffix: "geo", Source: "geo", Type: TypeDoubleArray},
}

var s3FileFields = []SubField{
	{Suffix: "filename", Source: "filename", Type: TypeText},
	{Suffix: "originalname", Source: "originalname", Type: TypeText},
	{Suffix: "path", Source: "path", Type: TypeText},
	{Suffix: "size", Source: "size", Type: TypeInt},
	{Suffix: "filetype", Source: "filetype", Type: TypeText},
	{Suffix: "url", Source: "url", Type: TypeText},
}

var cloudinaryImageFields = []SubField{
	{Suffix: "public_id", Source: "public_id", Type: TypeText},
	{Suffix: "version", Source: "version", Type: TypeInt},
	{Suffix: "signature", Source: "signature", Type: TypeText},
	{Suffix: "width", Source: "width", Type: TypeInt},
	{Suffix: "height", Source: "height", Type: TypeInt},
	{Suffix: "format", Source: "format", Type: TypeText},
	{Suffix: "resource_type", Source: "resource_type", Type: TypeText},
	{Suffix: "url", Source: "url", Type: TypeText},
	{Suffix: "secure_url", Source: "secure_url", Type: TypeText},
}

// money и number идут в неточный тип, numeric(20, 4) был бы лучше,
// но потребители уже завязаны на текущее представление
func scalarTypes(timestamp, number string) map[string]string {
	return map[string]string{
		"datetime":            timestamp,
		"date":                timestamp,
		"number":              number,
		FieldTypeRelationship: TypeText,
		"select":              TypeText,
		"text":                TypeText,
		"boolean":             TypeBoolean,
		"code":                TypeText,
		"email":               TypeText,
		"html":                TypeText,
		"markdown":            TypeText,
		"textarea":            TypeText,
		"money":               number,
		"geopoint":            TypeDoubleArray,
		"textarray":           TypeTextArray,
	}
}

// StandardTypeTable numeric / timestamp, без cloudinaryimage
func StandardTypeTable() TypeTable {
	return TypeTable{
		Name:    VariantStandard,
		Scalars: scalarTypes(TypeTimestamp, TypeNumeric),
		Composites: map[string][]SubField{
			"name":     nameFields,
			"location": locationFields,
			"s3file":   s3FileFields,
		},
		Excluded:     map[string]bool{FieldTypePassword: true},
		ManyRelation: TypeTextArray,
	}
}

// ExtendedTypeTable double precision / timestamptz и разложение cloudinaryimage
func ExtendedTypeTable() TypeTable {
	return TypeTable{
		Name:    VariantExtended,
		Scalars: scalarTypes(TypeTimestampTZ, TypeDouble),
		Composites: map[string][]SubField{
			"name":            nameFields,
			"location":        locationFields,
			"s3file":          s3FileFields,
			"cloudinaryimage": cloudinaryImageFields,
		},
		Excluded:     map[string]bool{FieldTypePassword: true},
		ManyRelation: TypeTextArray,
	}
}

// LookupTypeTable возвращает встроенный вариант по имени
func LookupTypeTable(variant string) (TypeTable, error) {
	switch variant {
	case "", VariantStandard:
		return StandardTypeTable(), nil
	case VariantExtended:
		return ExtendedTypeTable(), nil
	default:
		return TypeTable{}, fmt.Errorf("unknown mapper variant: %s", variant)
	}
}

// WithScalars возвращает копию таблицы с добавленными/переопределенными скалярами
func (t TypeTable) WithScalars(overrides map[string]string) TypeTable {
	out := t.clone()
	for tag, relType := range overrides {
		out.Scalars[tag] = relType
	}
	return out
}

// WithExcluded возвращает копию таблицы с дополнительными исключенными типами
func (t TypeTable) WithExcluded(tags ...string) TypeTable {
	out := t.clone()
	for _, tag := range tags {
		out.Excluded[tag] = true
	}
	return out
}

func (t TypeTable) clone() TypeTable {
	out := TypeTable{
		Name:         t.Name,
		Scalars:      maps.Clone(t.Scalars),
		Composites:   maps.Clone(t.Composites),
		Excluded:     maps.Clone(t.Excluded),
		ManyRelation: t.ManyRelation,
	}
	if out.Scalars == nil {
		out.Scalars = make(map[string]string)
	}
	if out.Composites == nil {
		out.Composites = make(map[string][]SubField)
	}
	if out.Excluded == nil {
		out.Excluded = make(map[string]bool)
	}
	return out
}
