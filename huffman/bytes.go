package huffman

import (
	"bytes"

	"github.com/vbroda17/lzhuff/internal/pool"
)

// EncodeBytes encodes data in memory and returns header plus payload.
func (t *Tree) EncodeBytes(data []byte) ([]byte, error) {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	if err := t.Encode(bytes.NewReader(data), buf); err != nil {
		return nil, err
	}

	return bytes.Clone(buf.Bytes()), nil
}

// DecodeBytes decodes an in-memory encoding produced by EncodeBytes or Encode.
func (t *Tree) DecodeBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := t.Decode(bytes.NewReader(data), &out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
