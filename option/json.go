package option

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some as the encoded value.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some. A value
// present in the payload counts as present even when it is a default value.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = FromOk(v, true)
	return nil
}
