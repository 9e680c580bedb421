package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-msgpack/v2/codec"
)

// WriteJSON writes doc as indented JSON followed by a newline.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// ReadJSON decodes and validates a JSON document.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode json: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// mh is shared by every encoder and decoder; it is never mutated.
var mh codec.MsgpackHandle

// EncodeMsgpack writes doc in MessagePack form.
func EncodeMsgpack(w io.Writer, doc Document) error {
	if err := codec.NewEncoder(w, &mh).Encode(doc); err != nil {
		return fmt.Errorf("export: encode msgpack: %w", err)
	}
	return nil
}

// DecodeMsgpack reads and validates a MessagePack document.
func DecodeMsgpack(r io.Reader) (Document, error) {
	var doc Document
	if err := codec.NewDecoder(r, &mh).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode msgpack: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// MarshalMsgpack returns the MessagePack bytes of doc.
func MarshalMsgpack(doc Document) ([]byte, error) {
	var b []byte
	if err := codec.NewEncoderBytes(&b, &mh).Encode(doc); err != nil {
		return nil, fmt.Errorf("export: encode msgpack: %w", err)
	}
	return b, nil
}

// UnmarshalMsgpack is the inverse of MarshalMsgpack.
func UnmarshalMsgpack(b []byte) (Document, error) {
	var doc Document
	if err := codec.NewDecoderBytes(b, &mh).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("export: decode msgpack: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}
