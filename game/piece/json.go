package piece

import (
	"encoding/json"
	"errors"
	"fmt"
)

// jsonPiece is used for serialization with the json/encoding package
type jsonPiece struct {
	Name  Name   `json:"name"`
	Cells []Cell `json:"cells"`
	Count int    `json:"count"`
}

// MarshalJSON implements the encoding/json.Marshaler interface to marshal offsets into [dx,dy] pairs.
func (o Offset) MarshalJSON() ([]byte, error) {
	pair := [2]int{o.DX, o.DY}
	return json.Marshal(pair)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface to unmarshal offsets from [dx,dy] pairs.
func (o *Offset) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.New("offset must be a pair of integers: " + string(b))
	}
	o.DX, o.DY = pair[0], pair[1]
	return nil
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// The shape is written as cells that each carry the piece name.
func (p Piece) MarshalJSON() ([]byte, error) {
	jp := jsonPiece{
		Name:  p.Name,
		Cells: p.Cells(),
		Count: p.MaxCount,
	}
	return json.Marshal(jp)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// Every cell must belong to the piece being read.
func (p *Piece) UnmarshalJSON(b []byte) error {
	var jp jsonPiece
	if err := json.Unmarshal(b, &jp); err != nil {
		return err
	}
	shape := make([]Offset, len(jp.Cells))
	for i, c := range jp.Cells {
		if c.ID != jp.Name {
			return fmt.Errorf("cell %v of %q belongs to %q", i, jp.Name, c.ID)
		}
		shape[i] = c.Offset
	}
	p.Name = jp.Name
	p.Shape = shape
	p.MaxCount = jp.Count
	return nil
}
