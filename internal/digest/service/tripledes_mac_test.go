package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

func sequentialKey(n int) []byte {
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return key
}

func TestTripleDESMAC(t *testing.T) {
	tests := []struct {
		name     string
		key      []byte
		message  string
		expected string
	}{
		{name: "zero key", key: nil, message: "hello", expected: "6eff9dee14c40f43"},
		{name: "zero key empty message", key: nil, message: "", expected: "8ca64de9c1b123a7"},
		{name: "zero key full block", key: nil, message: "12345678", expected: "62dd8e4a614e1af9"},
		{name: "24 byte key", key: sequentialKey(24), message: "hello", expected: "2b29cbba2a388e26"},
		{name: "16 byte key", key: sequentialKey(16), message: "hello", expected: "42df9086156cec2b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mac, err := newTripleDESMAC(tt.key)
			require.NoError(t, err)

			_, err = mac.Write([]byte(tt.message))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(mac.Sum(nil)))
			assert.Equal(t, 8, mac.Size())
			assert.Equal(t, 8, mac.BlockSize())
		})
	}
}

func TestTripleDESMAC_IncrementalWrites(t *testing.T) {
	message := []byte("the quick brown fox jumps over the lazy dog")

	oneShot, err := newTripleDESMAC(nil)
	require.NoError(t, err)
	_, _ = oneShot.Write(message)
	expected := oneShot.Sum(nil)

	for _, chunk := range []int{1, 3, 7, 8, 9} {
		mac, err := newTripleDESMAC(nil)
		require.NoError(t, err)
		for i := 0; i < len(message); i += chunk {
			end := min(i+chunk, len(message))
			_, _ = mac.Write(message[i:end])
		}
		assert.Equal(t, expected, mac.Sum(nil), "chunk size %d", chunk)
	}
}

func TestTripleDESMAC_SumDoesNotChangeState(t *testing.T) {
	mac, err := newTripleDESMAC(nil)
	require.NoError(t, err)

	_, _ = mac.Write([]byte("hel"))
	_ = mac.Sum(nil)
	_, _ = mac.Write([]byte("lo"))

	assert.Equal(t, "6eff9dee14c40f43", hex.EncodeToString(mac.Sum(nil)))
}

func TestTripleDESMAC_Reset(t *testing.T) {
	mac, err := newTripleDESMAC(nil)
	require.NoError(t, err)

	_, _ = mac.Write([]byte("something else"))
	mac.Reset()
	_, _ = mac.Write([]byte("hello"))

	assert.Equal(t, "6eff9dee14c40f43", hex.EncodeToString(mac.Sum(nil)))
}

func TestTripleDESMAC_InvalidKeySize(t *testing.T) {
	for _, size := range []int{1, 8, 15, 17, 23, 25, 32} {
		_, err := newTripleDESMAC(make([]byte, size))
		assert.ErrorIs(t, err, digestDomain.ErrInvalidKeySize, "size %d", size)
	}
}
