package display

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON marshals v with two-space indentation and a trailing newline
func MarshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// OutputJSON writes v to w using MarshalJSON
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = w.Write(data)
	return err
}
