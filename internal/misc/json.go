package misc

import (
	"bytes"
	"encoding/json"
)

// StrictUnmarshalJSON decodes raw into v, rejecting unknown fields.
func StrictUnmarshalJSON(raw []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()
	d.UseNumber()
	return d.Decode(v)
}
