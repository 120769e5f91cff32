package domain

// DerivedKeyMaterial holds the AES key and CBC IV derived from a password and salt.
//
// It is recomputed on every call and must never be persisted or cached. Call Zero once
// the cipher has been initialized.
type DerivedKeyMaterial struct {
	Key []byte
	IV  []byte
}

// Zero overwrites the key and IV with zeros.
func (m *DerivedKeyMaterial) Zero() {
	if m == nil {
		return
	}
	Zero(m.Key)
	Zero(m.IV)
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
