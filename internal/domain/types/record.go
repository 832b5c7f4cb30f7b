package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record field names.
const (
	FieldAddress         = "address"
	FieldCommodity       = "commodity"
	FieldCommodityAmount = "commodity_amount"
	FieldNetwork         = "network"
	FieldSCAddress       = "sc_address"
	FieldSCInputData     = "sc_input_data"
	FieldSignature       = "signature"
)

var requiredFields = [...]string{
	FieldAddress,
	FieldCommodity,
	FieldCommodityAmount,
	FieldNetwork,
	FieldSCAddress,
	FieldSCInputData,
}

// RequiredFieldNames returns the signed field names in canonical order.
func RequiredFieldNames() []string {
	out := make([]string, len(requiredFields))
	copy(out, requiredFields[:])
	return out
}

// SignedFieldNames returns the required field names followed by "signature".
func SignedFieldNames() []string {
	return append(RequiredFieldNames(), FieldSignature)
}

// Record is an insertion-ordered mapping from field name to Value.
// The zero Record is empty and ready to use. Copying a Record shares its
// storage; use Clone for an independent copy.
type Record struct {
	keys []string
	vals map[string]Value
}

// NewRecord builds a record from fields in order.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Field is a single name/value pair.
type Field struct {
	Name  string
	Value Value
}

// Set inserts or overwrites name. An overwritten field keeps its position.
func (r *Record) Set(name string, v Value) {
	if r.vals == nil {
		r.vals = make(map[string]Value)
	}
	if _, ok := r.vals[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.vals[name] = v
}

// Get returns the value stored under name.
func (r Record) Get(name string) (Value, bool) {
	v, ok := r.vals[name]
	return v, ok
}

// Has reports whether name is present.
func (r Record) Has(name string) bool {
	_, ok := r.vals[name]
	return ok
}

// Delete removes name if present.
func (r *Record) Delete(name string) {
	if _, ok := r.vals[name]; !ok {
		return
	}
	delete(r.vals, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns field names in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r Record) Len() int { return len(r.keys) }

// Clone returns a copy sharing no storage with r.
func (r Record) Clone() Record {
	c := Record{
		keys: make([]string, len(r.keys)),
		vals: make(map[string]Value, len(r.vals)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.vals {
		c.vals[k] = v
	}
	return c
}

// Equal reports whether r and o hold the same fields in the same order.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k || !r.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}

// MissingFields lists required field names absent from r, in canonical order.
func (r Record) MissingFields() []string {
	var missing []string
	for _, name := range requiredFields {
		if !r.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// MarshalJSON encodes r as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.vals[k].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of strings and numbers, keeping
// key order. Integral numbers that fit int64 become Int, others Float.
// Numbers keep their source text for MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected JSON object")
	}

	var out Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: expected field name")
		}
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		v, err := valueFromToken(tok)
		if err != nil {
			return fmt.Errorf("record: field %q: %w", name, err)
		}
		out.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

func valueFromToken(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case string:
		return String(t), nil
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				v := Int(i)
				v.raw = s
				return v, nil
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, err
		}
		v := Float(f)
		v.raw = s
		return v, nil
	case json.Delim:
		return Value{}, fmt.Errorf("nested %s not supported", t)
	case nil:
		return Value{}, fmt.Errorf("null not supported")
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", t)
	}
}
