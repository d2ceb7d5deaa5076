package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"tracker-cli/internal/model"
)

// encodeCharts writes the id -> chart mapping as a JSON object, keys in the
// given order.
func encodeCharts(order []string, byID map[string]model.Chart) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	for _, id := range order {
		c, ok := byID[id]
		if !ok {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeCharts parses the mapping and keeps the key order of the document.
// An empty or null blob yields no charts.
func decodeCharts(b []byte) ([]string, map[string]model.Chart, error) {
	byID := map[string]model.Chart{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, byID, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, DeserializationError{Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, DeserializationError{Err: fmt.Errorf("expected object, got %v", tok)}
	}

	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, DeserializationError{Err: err}
		}
		id, ok := tok.(string)
		if !ok {
			return nil, nil, DeserializationError{Err: fmt.Errorf("expected chart id, got %v", tok)}
		}
		c := model.Chart{ID: id}
		if err := dec.Decode(&c); err != nil {
			return nil, nil, DeserializationError{Err: fmt.Errorf("chart %s: %w", id, err)}
		}
		if _, dup := byID[id]; !dup {
			order = append(order, id)
		}
		byID[id] = c
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, DeserializationError{Err: err}
	}
	if dec.More() {
		return nil, nil, DeserializationError{Err: errors.New("trailing data after charts object")}
	}
	return order, byID, nil
}
