package wrapper

import (
	"encoding/json"

	"github.com/pkg/errors"
)

//go:generate asjson -type Variant -engine goccy parse

type Variant string

const (
	Foo Variant = "Foo"
	Bar Variant = "Bar"
)

func (v *Variant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch variant := Variant(s); variant {
	case Foo, Bar:
		*v = variant
		return nil
	}
	return errors.Errorf("unknown variant %q", s)
}

//go:generate asjson -type Wrapper

// Wrapper is encoded as its only field.
//
//asjson:display
//asjson:debug -pretty
//asjson:parse -set
type Wrapper struct {
	Variant Variant
}

func (w Wrapper) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Variant)
}

func (w *Wrapper) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &w.Variant)
}
