package draw

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Encode serializes the board as {"pots":{...},"groups":{...}}.
func Encode(b Board) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return json.Marshal(b)
}

// Decode parses a serialized board and validates its shape. Unknown fields,
// trailing data, missing or extra containers, null containers, and duplicate
// or empty ids are all rejected.
func Decode(data []byte) (Board, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var b Board
	if err := dec.Decode(&b); err != nil {
		return Board{}, fmt.Errorf("decode board: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Board{}, errors.New("decode board: trailing data after board")
	}
	if err := b.Validate(); err != nil {
		return Board{}, fmt.Errorf("decode board: %w", err)
	}
	return b, nil
}
