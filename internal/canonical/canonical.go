package canonical

import (
	"bytes"

	"wertsigner/internal/domain"
	"wertsigner/internal/domain/types"
)

// Encode returns the signing payload for r. Callers validate that every
// required field is present first.
func Encode(r domain.Record) []byte {
	var buf bytes.Buffer
	for i, name := range domain.RequiredFieldNames() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		v, _ := r.Get(name)
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(render(name, v))
	}
	return buf.Bytes()
}

func render(name string, v domain.Value) string {
	switch name {
	case domain.FieldCommodityAmount:
		if s, ok := v.Str(); ok {
			return s
		}
		f, _ := v.Float64()
		return types.FormatDecimal(f)
	case domain.FieldCommodity, domain.FieldNetwork:
		return asciiLower(v.Text())
	default:
		return v.Text()
	}
}

// asciiLower folds A-Z only; other bytes pass through.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
