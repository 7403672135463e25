// Package jsonutil wraps github.com/go-json-experiment/json behind a
// small stdlib-shaped API. Report documents and result streams go
// through here so every emitter encodes the same way.
package jsonutil

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Encoder is a streaming JSON encoder shaped like encoding/json.Encoder.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetIndent formats each subsequent encoded value with the given
// indentation.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes the JSON encoding of v to the stream, followed by a
// newline, matching encoding/json.Encoder behavior.
func (e *Encoder) Encode(v any) error {
	var err error
	if e.indent != "" {
		err = json.MarshalWrite(e.w, v, jsontext.WithIndent(e.indent))
	} else {
		err = json.MarshalWrite(e.w, v)
	}
	if err != nil {
		return err
	}
	_, err = e.w.Write([]byte{'\n'})
	return err
}

// Decoder is a streaming JSON decoder shaped like encoding/json.Decoder.
// Decode returns io.EOF once the stream is exhausted.
type Decoder struct {
	dec *jsontext.Decoder
}

// NewDecoder creates a decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: jsontext.NewDecoder(r)}
}

// Decode reads the next JSON-encoded value from the stream into v.
func (d *Decoder) Decode(v any) error {
	return json.UnmarshalDecode(d.dec, v)
}
