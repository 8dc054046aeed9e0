package kdf_test

import (
	"bytes"
	"testing"

	"github.com/hwf452/CudaMiner/scrypt/kdf"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/scrypt"
)

// RFC 7914 section 12, the P="" S="" N=16 r=1 p=1 dkLen=64 vector.
var emptyVector = []byte{
	0x77, 0xd6, 0x57, 0x62, 0x38, 0x65, 0x7b, 0x20,
	0x3b, 0x19, 0xca, 0x42, 0xc1, 0x8a, 0x04, 0x97,
	0xf1, 0x6b, 0x48, 0x44, 0xe3, 0x07, 0x4a, 0xe8,
	0xdf, 0xdf, 0xfa, 0x3f, 0xed, 0xe2, 0x14, 0x42,
	0xfc, 0xd0, 0x06, 0x9d, 0xed, 0x09, 0x48, 0xf8,
	0x32, 0x6a, 0x75, 0x3a, 0x0f, 0xc8, 0x1f, 0x17,
	0xe8, 0xd3, 0xe0, 0xfb, 0x2e, 0x0d, 0x36, 0x28,
	0xcf, 0x35, 0xe2, 0x0c, 0x38, 0xd1, 0x89, 0x06,
}

func TestKeyEmptyVector(t *testing.T) {
	key, err := kdf.Key(nil, nil, 16, 64)
	require.NoError(t, err)
	require.Equal(t, emptyVector, key)
}

func TestKeyMatchesSequentialScrypt(t *testing.T) {
	for _, n := range []int{16, 256, 1024} {
		password := []byte("pleaseletmein")
		salt := []byte("SodiumChloride")

		expected, err := scrypt.Key(password, salt, n, 1, 1, 32)
		require.NoError(t, err)

		key, err := kdf.Key(password, salt, n, 32)
		require.NoError(t, err)
		require.Equal(t, expected, key, "n=%d", n)
	}
}

func TestKeyBatchMatchesSingle(t *testing.T) {
	passwords := [][]byte{
		[]byte("password"),
		[]byte(""),
		bytes.Repeat([]byte{0xab}, 200),
		[]byte("pleaseletmein"),
	}
	salt := []byte("NaCl")

	keys, err := kdf.KeyBatch(passwords, salt, 64, 48)
	require.NoError(t, err)
	require.Len(t, keys, len(passwords))

	for i, password := range passwords {
		key, err := kdf.Key(password, salt, 64, 48)
		require.NoError(t, err)
		require.Equal(t, key, keys[i], "password %d", i)
	}
}

func TestKeyInvalidN(t *testing.T) {
	for _, n := range []int{-16, 0, 1, 3, 1000} {
		_, err := kdf.Key([]byte("password"), []byte("salt"), n, 32)
		require.ErrorIs(t, err, kdf.ErrInvalidN, "n=%d", n)
	}
}
