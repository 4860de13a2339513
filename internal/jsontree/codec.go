package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Indent is the indentation used for every JSON file minecorg writes.
const Indent = "  "

// Parse decodes a single JSON document. Duplicate object keys keep the
// position of their first occurrence and the value of their last.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	// Anything after the top-level value is an error.
	tok, err := dec.Token()
	if err == nil {
		return Value{}, fmt.Errorf("unexpected %v after top-level value", tok)
	}
	if !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("after top-level value: %w", err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("member %q: %w", key, err)
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return ObjectValue(obj), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	elems := []Value{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", len(elems), err)
		}
		elems = append(elems, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return NewArray(elems...), nil
}

// Marshal returns the compact encoding of v.
func Marshal(v Value) []byte {
	return MarshalIndent(v, "")
}

// MarshalIndent encodes v with one member or element per line, each level
// indented by indent. An empty indent produces compact output.
func MarshalIndent(v Value, indent string) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, indent, 0)
	return buf.Bytes()
}

// Encode writes v to w indented with two spaces and a trailing newline.
func Encode(w io.Writer, v Value) error {
	data := MarshalIndent(v, Indent)
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// WriteFile writes v to path in the same format as Encode. The write is
// not atomic: an interrupted write can leave a partial file behind.
func WriteFile(path string, v Value) error {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // project files are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and parses the JSON document at path.
func ReadFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("reading %s: %w", path, err)
	}
	v, err := Parse(data)
	if err != nil {
		return Value{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}

func writeValue(buf *bytes.Buffer, v Value, indent string, depth int) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.num.String())
	case KindString:
		writeString(buf, v.str)
	case KindArray:
		if len(v.arr) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			writeValue(buf, e, indent, depth+1)
		}
		newline(buf, indent, depth)
		buf.WriteByte(']')
	case KindObject:
		if v.obj.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, m := range v.obj.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent, depth+1)
			writeString(buf, m.Key)
			buf.WriteByte(':')
			if indent != "" {
				buf.WriteByte(' ')
			}
			writeValue(buf, m.Value, indent, depth+1)
		}
		newline(buf, indent, depth)
		buf.WriteByte('}')
	}
}

func newline(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

// writeString encodes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // encoding a string cannot fail
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
