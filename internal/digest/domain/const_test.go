package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/passcrypt/internal/errors"
)

func TestAlgorithms(t *testing.T) {
	algs := Algorithms()
	assert.Len(t, algs, 13)
	for _, alg := range algs {
		assert.True(t, alg.IsValid(), alg)
	}
}

func TestAlgorithm_IsKeyed(t *testing.T) {
	keyed := map[Algorithm]bool{
		HMAC: true, HMACMD5: true, HMACSHA1: true, HMACSHA256: true, HMACSHA384: true,
		HMACSHA512: true, MACTripleDES: true,
	}
	for _, alg := range Algorithms() {
		assert.Equal(t, keyed[alg], alg.IsKeyed(), alg)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Algorithm
	}{
		{name: "Success_Empty", input: "", expected: SHA256},
		{name: "Success_Lower", input: "md5", expected: MD5},
		{name: "Success_Mixed", input: "HMAC-SHA512", expected: HMACSHA512},
		{name: "Success_TripleDES", input: "mac-tripledes", expected: MACTripleDES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, alg)
		})
	}

	t.Run("Error_Unknown", func(t *testing.T) {
		alg, err := ParseAlgorithm("whirlpool")
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Empty(t, alg)
	})
}
