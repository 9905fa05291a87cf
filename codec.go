package serialqueue

import "encoding/json"

// encodedItem is the canonical value encoding of a submission's item. The
// round trip through JSON gives items value semantics: the task receives a
// snapshot, never a reference the caller can still mutate.
type encodedItem struct {
	data    []byte
	present bool
}

func encodeItem(item any) (encodedItem, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return encodedItem{}, &SerializationError{Cause: err}
	}
	return encodedItem{data: data, present: true}, nil
}

func (e encodedItem) decode() (any, error) {
	if !e.present {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(e.data, &v); err != nil {
		return nil, &SerializationError{Cause: err}
	}
	return v, nil
}
