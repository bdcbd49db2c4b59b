package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/internal/infrastructure/filestore"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestStateStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := filestore.New(path)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		"token": []byte(`"abc"`),
		"user":  []byte(`{"id":1}`),
	}))

	v, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":1}`, string(v))

	require.NoError(t, s.Delete(ctx, "token", "user", "missing"))
	_, ok, err = s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateStorage_PersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	a, err := filestore.New(path)
	require.NoError(t, err)
	require.NoError(t, a.SetMany(ctx, map[string][]byte{"token": []byte(`"t1"`)}))

	b, err := filestore.New(path)
	require.NoError(t, err)
	v, ok, err := b.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"t1"`, string(v))
}

func TestStateStorage_ValorNoJSON(t *testing.T) {
	s, err := filestore.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.Error(t, s.SetMany(context.Background(), map[string][]byte{"token": []byte("abc")}))
}

func TestStateStorage_Cifrado(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := filestore.New(path, filestore.WithEncryptionKey(testKey))
	require.NoError(t, err)
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"token": []byte(`"secret-token"`)}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "secret-token"), "el archivo no debe contener el token en claro")

	v, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"secret-token"`, string(v))

	other, err := filestore.New(path, filestore.WithEncryptionKey(strings.Repeat("ff", 32)))
	require.NoError(t, err)
	_, _, err = other.Get(ctx, "token")
	assert.ErrorIs(t, err, repository.ErrCorruptState)
}

func TestStateStorage_ArchivoCorrupto_SeReescribe(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token": "tok", "user": {broken`), 0o600))
	s, err := filestore.New(path)
	require.NoError(t, err)

	_, _, err = s.Get(ctx, "token")
	require.ErrorIs(t, err, repository.ErrCorruptState)

	require.NoError(t, s.Delete(ctx, "token", "user"))
	_, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"token": []byte(`"fresh"`)}))
	v, ok, err := s.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"fresh"`, string(v))
}

func TestStateStorage_ClaveIncorrecta_SetManyReemplaza(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	a, err := filestore.New(path, filestore.WithEncryptionKey(testKey))
	require.NoError(t, err)
	require.NoError(t, a.SetMany(ctx, map[string][]byte{"token": []byte(`"old"`)}))

	b, err := filestore.New(path, filestore.WithEncryptionKey(strings.Repeat("ff", 32)))
	require.NoError(t, err)
	require.NoError(t, b.SetMany(ctx, map[string][]byte{"token": []byte(`"new"`)}))

	v, ok, err := b.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"new"`, string(v))
}

func TestWithEncryptionKey_Invalida(t *testing.T) {
	_, err := filestore.New(filepath.Join(t.TempDir(), "s.json"), filestore.WithEncryptionKey("abcd"))
	assert.Error(t, err)
	_, err = filestore.New(filepath.Join(t.TempDir(), "s.json"), filestore.WithEncryptionKey("zz"))
	assert.Error(t, err)
}
