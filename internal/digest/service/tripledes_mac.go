package service

import (
	"crypto/cipher"
	"crypto/des" //nolint:gosec // triple DES MAC is a supported legacy selector
	"fmt"
	"hash"

	digestDomain "github.com/allisson/passcrypt/internal/digest/domain"
)

// tripleDESMAC is a CBC-MAC over triple DES implementing hash.Hash.
//
// The IV is zero and the final partial block is padded with zeros. An empty message is
// processed as a single zero block. The tag is the last ciphertext block (8 bytes).
type tripleDESMAC struct {
	block   cipher.Block
	state   [des.BlockSize]byte
	pending []byte
	written int
}

// newTripleDESMAC creates a triple DES CBC-MAC.
// key must be 16 bytes (expanded to K1K2K1) or 24 bytes; an empty key selects the all-zero key.
func newTripleDESMAC(key []byte) (hash.Hash, error) {
	var k []byte
	switch len(key) {
	case 0:
		k = make([]byte, 24)
	case 16:
		k = make([]byte, 0, 24)
		k = append(k, key...)
		k = append(k, key[:8]...)
	case 24:
		k = key
	default:
		return nil, fmt.Errorf(
			"%w: triple DES MAC key must be 16 or 24 bytes, got %d",
			digestDomain.ErrInvalidKeySize,
			len(key),
		)
	}

	block, err := des.NewTripleDESCipher(k)
	if err != nil {
		return nil, fmt.Errorf("failed to create triple DES cipher: %w", err)
	}
	return &tripleDESMAC{block: block}, nil
}

func (m *tripleDESMAC) Write(p []byte) (int, error) {
	n := len(p)
	m.written += n

	if len(m.pending) > 0 {
		need := des.BlockSize - len(m.pending)
		if len(p) < need {
			m.pending = append(m.pending, p...)
			return n, nil
		}
		m.pending = append(m.pending, p[:need]...)
		m.chain(&m.state, m.pending)
		m.pending = m.pending[:0]
		p = p[need:]
	}

	for len(p) >= des.BlockSize {
		m.chain(&m.state, p[:des.BlockSize])
		p = p[des.BlockSize:]
	}
	m.pending = append(m.pending, p...)
	return n, nil
}

// chain folds one block into the CBC state.
func (m *tripleDESMAC) chain(state *[des.BlockSize]byte, block []byte) {
	for i := range state {
		state[i] ^= block[i]
	}
	m.block.Encrypt(state[:], state[:])
}

func (m *tripleDESMAC) Sum(b []byte) []byte {
	state := m.state
	if len(m.pending) > 0 || m.written == 0 {
		var last [des.BlockSize]byte
		copy(last[:], m.pending)
		m.chain(&state, last[:])
	}
	return append(b, state[:]...)
}

func (m *tripleDESMAC) Reset() {
	m.state = [des.BlockSize]byte{}
	m.pending = m.pending[:0]
	m.written = 0
}

func (m *tripleDESMAC) Size() int { return des.BlockSize }

func (m *tripleDESMAC) BlockSize() int { return des.BlockSize }
