// Package jsonutil wraps the codec used for every JSON payload exchanged
// with the API, both REST bodies and streaming event payloads.
package jsonutil

import (
	"bytes"
	"io"

	"github.com/ugorji/go/codec"
)

var handle = newHandle()

func newHandle() *codec.JsonHandle {
	var h codec.JsonHandle
	h.MapKeyAsString = true
	return &h
}

// Unmarshal decodes the JSON-encoded data and stores the result in the value
// pointed to by v.
func Unmarshal(data []byte, v interface{}) error {
	return Decode(bytes.NewReader(data), v)
}

// Decode decodes a JSON document read from r into v.
func Decode(r io.Reader, v interface{}) error {
	dec := codec.NewDecoder(r, handle)
	return dec.Decode(v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode encodes v as JSON and writes the output to w.
func Encode(w io.Writer, v interface{}) error {
	enc := codec.NewEncoder(w, handle)
	return enc.Encode(v)
}
