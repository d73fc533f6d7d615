package domain

import (
	"fmt"
	"math"
	"strings"
)

// Field names a material attribute.
type Field string

// Mutable fields, diffed into history entries.
const (
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldQuantity Field = "quantity"
	FieldUnit     Field = "unit"
	FieldPrice    Field = "price"
	FieldSupplier Field = "supplier"
	FieldStatus   Field = "status"
)

// Bookkeeping fields, tracked for persistence only.
const (
	FieldConfirmed Field = "confirmed"
	FieldUpdatedAt Field = "updated_at"
)

// mutableFields is the canonical order in which a patch is diffed.
var mutableFields = []Field{
	FieldName,
	FieldCategory,
	FieldQuantity,
	FieldUnit,
	FieldPrice,
	FieldSupplier,
	FieldStatus,
}

type fieldSpec struct {
	kind     ValueKind
	nullable bool
}

var fieldSpecs = map[Field]fieldSpec{
	FieldName:     {kind: KindString},
	FieldCategory: {kind: KindString},
	FieldQuantity: {kind: KindNumber},
	FieldUnit:     {kind: KindString},
	FieldPrice:    {kind: KindNumber, nullable: true},
	FieldSupplier: {kind: KindString, nullable: true},
	FieldStatus:   {kind: KindString},
}

// IsMutable reports whether f may appear in a Patch.
func (f Field) IsMutable() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Patch is a partial update: mutable field -> new value.
type Patch map[Field]Value

// normalized validates every entry and returns a copy with values in canonical form
// (trimmed strings, empty supplier as none).
func (p Patch) normalized() (Patch, error) {
	out := make(Patch, len(p))
	for field, v := range p {
		spec, ok := fieldSpecs[field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrImmutableField, field)
		}
		if v.IsNone() {
			if !spec.nullable {
				return nil, fmt.Errorf("%w: %q cannot be cleared", ErrFieldTypeMismatch, field)
			}
			out[field] = v
			continue
		}
		if v.Kind() != spec.kind {
			return nil, fmt.Errorf("%w: %q expects %s, got %s", ErrFieldTypeMismatch, field, spec.kind, v.Kind())
		}
		nv, err := normalizeValue(field, v)
		if err != nil {
			return nil, err
		}
		out[field] = nv
	}
	return out, nil
}

func normalizeValue(field Field, v Value) (Value, error) {
	switch field {
	case FieldName:
		s, _ := v.AsString()
		if err := validateMaterialName(s); err != nil {
			return Value{}, err
		}
		return StringValue(strings.TrimSpace(s)), nil
	case FieldCategory, FieldUnit:
		s, _ := v.AsString()
		return StringValue(strings.TrimSpace(s)), nil
	case FieldSupplier:
		s, _ := v.AsString()
		s = strings.TrimSpace(s)
		if s == "" {
			return NoValue(), nil
		}
		return StringValue(s), nil
	case FieldQuantity:
		n, _ := v.AsNumber()
		if err := validateQuantity(n); err != nil {
			return Value{}, err
		}
		return v, nil
	case FieldPrice:
		n, _ := v.AsNumber()
		if err := validatePrice(&n); err != nil {
			return Value{}, err
		}
		return v, nil
	case FieldStatus:
		s, _ := v.AsString()
		st := MaterialStatus(strings.TrimSpace(s))
		if !st.Valid() {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidMaterialStatus, s)
		}
		return StringValue(string(st)), nil
	}
	return v, nil
}

func validateMaterialName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyMaterialName
	}
	if len(trimmed) > 255 {
		return ErrMaterialNameTooLong
	}
	return nil
}

func validateQuantity(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return ErrInvalidQuantity
	}
	if q < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

func validatePrice(price *float64) error {
	if price == nil {
		return nil
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) {
		return ErrInvalidPrice
	}
	if *price < 0 {
		return ErrNegativePrice
	}
	return nil
}
