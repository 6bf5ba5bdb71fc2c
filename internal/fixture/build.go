package fixture

import (
	"encoding/json"
	"fmt"

	"github.com/aledsdavies/jsonnetobj/istr"
	"github.com/aledsdavies/jsonnetobj/object"
	"github.com/aledsdavies/jsonnetobj/thunk"
	"github.com/aledsdavies/jsonnetobj/value"
	"github.com/aledsdavies/jsonnetobj/visibility"
)

// doc mirrors schemaSource's shape for decoding.
type doc struct {
	Super   *doc                 `json:"super"`
	Members map[string]memberDoc `json:"members"`
}

type memberDoc struct {
	Value      json.RawMessage `json:"value"`
	Visibility string          `json:"visibility"`
	Additive   bool            `json:"additive"`
}

// Build validates raw against the fixture schema, then constructs the
// ObjValue graph it describes. A "super" key nests recursively, bottom
// fixture first, mirroring how object literals chain in source order.
func Build(raw []byte) (*object.ObjValue, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var d doc
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse fixture json: %w", err)
	}
	return build(&d)
}

func build(d *doc) (*object.ObjValue, error) {
	var super *object.ObjValue
	if d.Super != nil {
		var err error
		super, err = build(d.Super)
		if err != nil {
			return nil, err
		}
	}

	members := make(map[istr.IStr]object.ObjMember, len(d.Members))
	for name, m := range d.Members {
		v, err := decodeValue(m.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		vis, err := decodeVisibility(m.Visibility)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		members[istr.Intern(name)] = object.ObjMember{
			Additive:   m.Additive,
			Visibility: vis,
			Binding: thunk.Bind(func(self, super value.ObjectValue) (value.Val, error) {
				return v, nil
			}),
		}
	}

	return object.New(super, members, nil), nil
}

func decodeVisibility(s string) (visibility.Visibility, error) {
	switch s {
	case "", "normal":
		return visibility.Normal, nil
	case "hidden":
		return visibility.Hidden, nil
	case "unhide":
		return visibility.Unhide, nil
	default:
		return visibility.Normal, fmt.Errorf("unknown visibility %q", s)
	}
}

func decodeValue(raw json.RawMessage) (value.Val, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return value.Val{}, err
	}
	return fromAny(v)
}

func fromAny(v any) (value.Val, error) {
	switch t := v.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(t), nil
	case float64:
		return value.Number(t), nil
	case string:
		return value.String(t), nil
	case []any:
		out := make([]value.Val, len(t))
		for i, elem := range t {
			ev, err := fromAny(elem)
			if err != nil {
				return value.Val{}, err
			}
			out[i] = ev
		}
		return value.Array(out), nil
	default:
		return value.Val{}, fmt.Errorf("unsupported fixture value type %T", v)
	}
}
