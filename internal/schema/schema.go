package schema

import "fmt"

// FieldType is the semantic type of a fixed-width field. It drives both the
// decoder's coercion and the summary sheet's "Data Type" column.
type FieldType string

const (
	Integer FieldType = "integer"
	Text    FieldType = "text"
	Boolean FieldType = "boolean"
	Date    FieldType = "date"
)

// FieldDescriptor describes one field of the record layout: its unique name,
// 0-based character offset, width in characters and semantic type.
type FieldDescriptor struct {
	Name   string
	Start  int
	Length int
	Type   FieldType
}

// End returns the 0-based offset of the field's last character.
func (f FieldDescriptor) End() int {
	return f.Start + f.Length - 1
}

// BoolCodes maps the single-character (or short) codes found in boolean
// fields to their values. Codes are matched after trimming and upper-casing;
// anything not in the map decodes to null. The mapping ships alongside the
// schema because legacy producers disagree on flag conventions.
type BoolCodes map[string]bool

// DefaultBoolCodes covers the flag conventions seen in Cliente exports.
func DefaultBoolCodes() BoolCodes {
	return BoolCodes{
		"1":     true,
		"S":     true,
		"SI":    true,
		"Y":     true,
		"TRUE":  true,
		"0":     false,
		"N":     false,
		"NO":    false,
		"FALSE": false,
	}
}

// Schema is the immutable record layout: an ordered, contiguous list of field
// descriptors. Built once at startup and passed by reference to every decode.
type Schema struct {
	Fields       []FieldDescriptor
	RecordLength int
	BoolCodes    BoolCodes
}

// fieldSpec is a FieldDescriptor before its offset is assigned.
type fieldSpec struct {
	name   string
	length int
	typ    FieldType
}

// New builds a Schema from an ordered list of field specs, assigning each
// field the offset right after its predecessor. Contiguity and non-overlap
// hold by construction; duplicate names and non-positive lengths are the only
// ways to misconfigure, and both are rejected here.
func New(specs []fieldSpec, codes BoolCodes) (*Schema, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("schema must define at least one field")
	}

	fields := make([]FieldDescriptor, 0, len(specs))
	seen := make(map[string]bool, len(specs))
	offset := 0

	for _, spec := range specs {
		if spec.name == "" {
			return nil, fmt.Errorf("field at offset %d has no name", offset)
		}
		if seen[spec.name] {
			return nil, fmt.Errorf("duplicate field name: %s", spec.name)
		}
		if spec.length <= 0 {
			return nil, fmt.Errorf("field %s has non-positive length %d", spec.name, spec.length)
		}
		seen[spec.name] = true
		fields = append(fields, FieldDescriptor{
			Name:   spec.name,
			Start:  offset,
			Length: spec.length,
			Type:   spec.typ,
		})
		offset += spec.length
	}

	return &Schema{
		Fields:       fields,
		RecordLength: offset,
		BoolCodes:    codes,
	}, nil
}

// FieldNames returns the field names in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// ValidRecordLength reports whether a line (line ending already stripped) has
// exactly the expected record length, counted in characters.
func (s *Schema) ValidRecordLength(line string) bool {
	return len([]rune(line)) == s.RecordLength
}
