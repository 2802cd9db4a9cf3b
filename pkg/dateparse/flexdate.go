package dateparse

import (
	"bytes"
	"encoding/json"
	"time"
)

// FlexDate is a time.Time that unmarshals from any of the date encodings
// accepted at the API boundary (see ParseValue). It marshals back as RFC3339.
type FlexDate struct {
	time.Time
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return ErrUnrecognizedFormat
	}
	if raw == nil {
		d.Time = time.Time{}
		return nil
	}

	t, err := ParseValue(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
