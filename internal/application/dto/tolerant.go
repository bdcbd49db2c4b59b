package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// fields objeto JSON crudo con lectura tolerante: varias claves posibles por campo,
// números como número o string y valores por defecto explícitos cuando faltan.
type fields map[string]json.RawMessage

func decodeFields(b []byte) (fields, error) {
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	if f == nil {
		f = fields{}
	}
	return f, nil
}

func (f fields) raw(keys ...string) json.RawMessage {
	for _, k := range keys {
		if v, ok := f[k]; ok && !isNull(v) {
			return v
		}
	}
	return nil
}

// num devuelve el primer número presente; cero si no hay ninguno o no es numérico.
func (f fields) num(keys ...string) decimal.Decimal {
	v := f.raw(keys...)
	if v == nil {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(v); err != nil {
		return decimal.Zero
	}
	return d
}

func (f fields) str(keys ...string) string {
	v := f.raw(keys...)
	if v == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	// números o booleanos: se conserva el literal
	return string(bytes.Trim(v, `"`))
}

// into decodifica la primera clave presente en dst; deja dst intacto si ninguna existe.
func (f fields) into(dst any, keys ...string) error {
	v := f.raw(keys...)
	if v == nil {
		return nil
	}
	return json.Unmarshal(v, dst)
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
