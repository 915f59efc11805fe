package formatting

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a single response entity: field names mapped to values in the
// order the endpoint sent them. Values are strings, json.Number, bools, nil,
// nested Records or []any.
type Record = *orderedmap.OrderedMap[string, any]

// NewRecord returns an empty Record.
func NewRecord() Record {
	return orderedmap.New[string, any]()
}

// Keys returns the field names of r in order.
func Keys(r Record) []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the field values of r in order.
func Values(r Record) []any {
	if r == nil {
		return nil
	}
	values := make([]any, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// Kind tags the shape of a Payload.
type Kind int

const (
	// KindScalar is a single record.
	KindScalar Kind = iota + 1
	// KindCollection is an ordered list of records.
	KindCollection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Payload is a response body, either a Scalar or a Collection.
// The zero value is an invalid payload.
type Payload struct {
	kind       Kind
	scalar     Record
	collection []Record
}

// Scalar wraps a single record.
func Scalar(r Record) Payload {
	if r == nil {
		r = NewRecord()
	}
	return Payload{kind: KindScalar, scalar: r}
}

// Collection wraps a list of records. The records are not checked for a
// common field set.
func Collection(records []Record) Payload {
	if records == nil {
		records = []Record{}
	}
	return Payload{kind: KindCollection, collection: records}
}

// Kind returns the payload shape.
func (p Payload) Kind() Kind {
	return p.kind
}

// Scalar returns the record of a Scalar payload.
func (p Payload) Scalar() (Record, bool) {
	return p.scalar, p.kind == KindScalar
}

// Collection returns the records of a Collection payload.
func (p Payload) Collection() ([]Record, bool) {
	return p.collection, p.kind == KindCollection
}

// Len returns the number of records carried by the payload.
func (p Payload) Len() int {
	switch p.kind {
	case KindScalar:
		return 1
	case KindCollection:
		return len(p.collection)
	default:
		return 0
	}
}

// value returns the payload as a JSON-marshalable value.
func (p Payload) value() any {
	switch p.kind {
	case KindScalar:
		return p.scalar
	case KindCollection:
		return p.collection
	default:
		return nil
	}
}
