package formatting

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// DecodeError reports a response body that is not a record or a list of
// records.
type DecodeError struct {
	// Reason describes what was wrong with the body.
	Reason string
	// Err is the underlying parser error, if any.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to work with wrapped errors.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// DecodePayload decodes a response body. A top-level object becomes a
// Scalar, a top-level array of objects a Collection. Field order is kept at
// every nesting level.
func DecodePayload(data []byte) (Payload, error) {
	if !json.Valid(data) {
		return Payload{}, &DecodeError{Reason: "body is not valid JSON"}
	}

	switch firstToken(data) {
	case '{':
		record, err := decodeObject(data)
		if err != nil {
			return Payload{}, err
		}
		return Scalar(record), nil
	case '[':
		records, err := decodeRecordList(data)
		if err != nil {
			return Payload{}, err
		}
		return Collection(records), nil
	default:
		return Payload{}, &DecodeError{Reason: "body is neither an object nor an array"}
	}
}

// DecodeRecord decodes a single JSON object.
func DecodeRecord(data []byte) (Record, error) {
	if !json.Valid(data) {
		return nil, &DecodeError{Reason: "body is not valid JSON"}
	}
	if firstToken(data) != '{' {
		return nil, &DecodeError{Reason: "body is not an object"}
	}
	return decodeObject(data)
}

func decodeRecordList(data []byte) ([]Record, error) {
	records := []Record{}
	var elemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if elemErr != nil {
			return
		}
		if err != nil {
			elemErr = &DecodeError{Reason: fmt.Sprintf("element %d", len(records)), Err: err}
			return
		}
		if dataType != jsonparser.Object {
			elemErr = &DecodeError{Reason: fmt.Sprintf("element %d is %s, not an object", len(records), dataType)}
			return
		}
		record, err := decodeObject(value)
		if err != nil {
			elemErr = err
			return
		}
		records = append(records, record)
	})
	if elemErr != nil {
		return nil, elemErr
	}
	if err != nil {
		return nil, &DecodeError{Reason: "array", Err: err}
	}
	return records, nil
}

func decodeObject(data []byte) (Record, error) {
	record := NewRecord()
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		v, err := decodeValue(value, dataType)
		if err != nil {
			return err
		}
		// ObjectEach hands out keys already unescaped.
		record.Set(string(key), v)
		return nil
	})
	if err != nil {
		if _, ok := err.(*DecodeError); ok {
			return nil, err
		}
		return nil, &DecodeError{Reason: "object", Err: err}
	}
	return record, nil
}

func decodeValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, &DecodeError{Reason: "string value", Err: err}
		}
		return s, nil
	case jsonparser.Number:
		return json.Number(string(value)), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, &DecodeError{Reason: "boolean value", Err: err}
		}
		return b, nil
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Object:
		return decodeObject(value)
	case jsonparser.Array:
		return decodeArray(value)
	default:
		return nil, &DecodeError{Reason: fmt.Sprintf("unexpected %s value", dataType)}
	}
}

func decodeArray(data []byte) ([]any, error) {
	items := []any{}
	var itemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = &DecodeError{Reason: "array item", Err: err}
			return
		}
		v, err := decodeValue(value, dataType)
		if err != nil {
			itemErr = err
			return
		}
		items = append(items, v)
	})
	if itemErr != nil {
		return nil, itemErr
	}
	if err != nil {
		return nil, &DecodeError{Reason: "array", Err: err}
	}
	return items, nil
}

// firstToken returns the first non-whitespace byte of data, or 0.
func firstToken(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c
		}
	}
	return 0
}
