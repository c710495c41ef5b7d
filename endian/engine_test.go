package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestBigEndianTokenField(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := engine.AppendUint16(nil, 0xFF00)
	require.Equal(t, []byte{0xFF, 0x00}, buf)
	require.Len(t, buf, Uint16Size)
	require.Equal(t, uint16(0xFF00), engine.Uint16(buf))

	buf = engine.AppendUint16(buf, 1)
	require.Equal(t, []byte{0xFF, 0x00, 0x00, 0x01}, buf)
}

func TestWord(t *testing.T) {
	tests := []struct {
		name     string
		engine   EndianEngine
		value    uint64
		expected []byte
	}{
		{
			name:     "little endian bit count",
			engine:   GetLittleEndianEngine(),
			value:    0x0102,
			expected: []byte{0x02, 0x01, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "big endian",
			engine:   GetBigEndianEngine(),
			value:    0x0102,
			expected: []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02},
		},
		{
			name:     "zero",
			engine:   GetLittleEndianEngine(),
			value:    0,
			expected: make([]byte, WordSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := make([]byte, WordSize+3)
			PutWord(tt.engine, b, tt.value)
			require.Equal(t, tt.expected, b[:WordSize])
			require.Equal(t, []byte{0, 0, 0}, b[WordSize:])
			require.Equal(t, tt.value, Word(tt.engine, b))
		})
	}
}

func TestWordPanicsOnShortBuffer(t *testing.T) {
	require.Panics(t, func() {
		PutWord(GetLittleEndianEngine(), make([]byte, WordSize-1), 1)
	})
	require.Panics(t, func() {
		Word(GetLittleEndianEngine(), make([]byte, 2))
	})
}
