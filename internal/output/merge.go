package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/vegasq/xlcat/internal/table"
)

// WriteCollection stores the table under document[group][category] in
// the output file, creating the document when the file does not exist.
// Entries outside the addressed slot are preserved. Only json and yaml
// carry the nested document structure; other formats cannot be updated
// in place.
func WriteCollection(path string, format Format, group, category string, t *table.Table) error {
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %s files have no document structure to merge into", ErrCannotUpdate, format)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read existing output: %w", err)
		}
		existing = nil
	}

	var data []byte
	switch format {
	case FormatJSON:
		rows, err := jsonRows(t)
		if err != nil {
			return err
		}
		data, err = mergeJSON(existing, group, category, rows)
		if err != nil {
			return err
		}
	case FormatYAML:
		merged, err := mergeYAML(existing, group, category, yamlRows(t))
		if err != nil {
			return err
		}
		data = merged
	}

	return writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// mergeJSON replaces document[group][category] with rows. The existing
// document is decoded into ordered members, so untouched groups and
// categories keep their position and come back byte-for-byte except
// for re-indentation.
func mergeJSON(existing []byte, group, category string, rows []json.RawMessage) ([]byte, error) {
	var doc []jsonMember
	if len(existing) > 0 {
		members, err := parseJSONObject(existing)
		if err != nil {
			return nil, fmt.Errorf("existing output is not a JSON object: %w", err)
		}
		doc = members
	}

	var categories []jsonMember
	if raw, ok := memberGet(doc, group); ok {
		members, err := parseJSONObject(raw)
		if err != nil {
			return nil, fmt.Errorf("group %q in existing output is not a JSON object: %w", group, err)
		}
		categories = members
	}

	rowsJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	categories = memberSet(categories, category, rowsJSON)

	groupJSON, err := frameJSONObject(categories)
	if err != nil {
		return nil, err
	}
	doc = memberSet(doc, group, groupJSON)

	framed, err := frameJSONObject(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(framed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// jsonMember is one key of a JSON object, held in document order.
type jsonMember struct {
	key   string
	value json.RawMessage
}

// parseJSONObject decodes data as a JSON object while keeping member
// order, which encoding/json's map decoding throws away.
func parseJSONObject(data []byte) ([]jsonMember, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("unexpected %v, want an object", tok)
	}

	var members []jsonMember
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		members = append(members, jsonMember{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after object")
	}
	return members, nil
}

// frameJSONObject frames members as a raw JSON object, keys in member
// order, the same way jsonRows frames row objects.
func frameJSONObject(members []jsonMember) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')
	return json.RawMessage(buf.Bytes()), nil
}

func memberGet(members []jsonMember, key string) (json.RawMessage, bool) {
	for _, m := range members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

func memberSet(members []jsonMember, key string, value json.RawMessage) []jsonMember {
	for i := range members {
		if members[i].key == key {
			members[i].value = value
			return members
		}
	}
	return append(members, jsonMember{key: key, value: value})
}

// mergeYAML replaces document[group][category] with rows. The existing
// document is decoded into ordered mappings so untouched keys keep
// their order on rewrite.
func mergeYAML(existing []byte, group, category string, rows []yaml.MapSlice) ([]byte, error) {
	var doc yaml.MapSlice
	if len(existing) > 0 {
		var v interface{}
		if err := yaml.UnmarshalWithOptions(existing, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("existing output is not valid YAML: %w", err)
		}
		if v != nil {
			m, ok := v.(yaml.MapSlice)
			if !ok {
				return nil, fmt.Errorf("existing output is not a YAML mapping")
			}
			doc = m
		}
	}

	var categories yaml.MapSlice
	if current, ok := mapSliceGet(doc, group); ok {
		m, ok := current.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("group %q in existing output is not a YAML mapping", group)
		}
		categories = m
	}

	categories = mapSliceSet(categories, category, rows)
	doc = mapSliceSet(doc, group, categories)

	return yaml.Marshal(doc)
}

func mapSliceGet(m yaml.MapSlice, key string) (interface{}, bool) {
	for _, item := range m {
		if name, ok := item.Key.(string); ok && name == key {
			return item.Value, true
		}
	}
	return nil, false
}

func mapSliceSet(m yaml.MapSlice, key string, value interface{}) yaml.MapSlice {
	for i, item := range m {
		if name, ok := item.Key.(string); ok && name == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, yaml.MapItem{Key: key, Value: value})
}
