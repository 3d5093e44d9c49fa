package encryption

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	enc, err := New("correct horse", filepath.Join(t.TempDir(), "salt"))
	require.NoError(t, err)

	sealed, err := enc.Encrypt("Dear diary, today was calm.")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "diary")

	plain, err := enc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "Dear diary, today was calm.", plain)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	enc, err := NewWithSalt("pw", make([]byte, SaltSize))
	require.NoError(t, err)

	a, err := enc.Encrypt("same")
	require.NoError(t, err)
	b, err := enc.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEmptyStaysEmpty(t *testing.T) {
	enc, err := NewWithSalt("pw", make([]byte, SaltSize))
	require.NoError(t, err)

	s, err := enc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = enc.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestWrongPassphrase(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	right, err := New("right", salt)
	require.NoError(t, err)
	wrong, err := New("wrong", salt)
	require.NoError(t, err)

	sealed, err := right.Encrypt("secret")
	require.NoError(t, err)

	_, err = wrong.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = right.Decrypt("not base64!")
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = right.Decrypt("AAAA")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestSaltIsPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "salt")
	_, err := New("pw", path)
	require.NoError(t, err)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, first, SaltSize)

	_, err = New("pw", path)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmptyPassphraseRejected(t *testing.T) {
	_, err := New("", filepath.Join(t.TempDir(), "salt"))
	assert.Error(t, err)
}
