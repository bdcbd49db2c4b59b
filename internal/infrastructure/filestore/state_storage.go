// Package filestore guarda el estado de sesión en un archivo JSON local,
// opcionalmente cifrado con NaCl secretbox.
package filestore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jhoicas/bizdash/internal/domain/repository"
)

const (
	keySize   = 32
	nonceSize = 24
)

var _ repository.StateStorage = (*StateStorage)(nil)

// StateStorage archivo {clave: valor JSON}. Cada escritura reescribe el archivo completo
// en un temporal y lo renombra, de modo que SetMany es todo o nada.
type StateStorage struct {
	mu   sync.Mutex
	path string
	key  *[keySize]byte
}

// Option configura el almacén.
type Option func(*StateStorage) error

// WithEncryptionKey cifra el archivo con secretbox; hexKey debe ser de 32 bytes (64 caracteres hex).
func WithEncryptionKey(hexKey string) Option {
	return func(s *StateStorage) error {
		if hexKey == "" {
			return nil
		}
		raw, err := hex.DecodeString(hexKey)
		if err != nil {
			return fmt.Errorf("filestore: clave de cifrado no es hex: %w", err)
		}
		if len(raw) != keySize {
			return fmt.Errorf("filestore: clave de cifrado debe tener %d bytes, tiene %d", keySize, len(raw))
		}
		s.key = new([keySize]byte)
		copy(s.key[:], raw)
		return nil
	}
}

// New construye el almacén y crea el directorio si no existe.
func New(path string, opts ...Option) (*StateStorage, error) {
	s := &StateStorage{path: path}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("filestore: crear directorio: %w", err)
		}
	}
	return s, nil
}

func (s *StateStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := state[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *StateStorage) SetMany(_ context.Context, values map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.loadForWrite()
	if err != nil {
		return err
	}
	for k, v := range values {
		if !json.Valid(v) {
			return fmt.Errorf("filestore: valor de %s no es JSON válido", k)
		}
		state[k] = json.RawMessage(v)
	}
	return s.save(state)
}

func (s *StateStorage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.loadForWrite()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(state, k)
	}
	return s.save(state)
}

// loadForWrite como load, pero un archivo ilegible se descarta: la escritura siguiente lo reemplaza.
func (s *StateStorage) loadForWrite() (map[string]json.RawMessage, error) {
	state, err := s.load()
	if errors.Is(err, repository.ErrCorruptState) {
		return map[string]json.RawMessage{}, nil
	}
	return state, err
}

// load lee el archivo; inexistente equivale a vacío.
func (s *StateStorage) load() (map[string]json.RawMessage, error) {
	state := map[string]json.RawMessage{}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return state, nil
	}
	if s.key != nil {
		if b, err = s.open(b); err != nil {
			return nil, fmt.Errorf("%w: %w", repository.ErrCorruptState, err)
		}
	}
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("filestore: %s corrupto: %w: %w", s.path, repository.ErrCorruptState, err)
	}
	return state, nil
}

func (s *StateStorage) save(state map[string]json.RawMessage) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("filestore: serializar estado: %w", err)
	}
	if s.key != nil {
		if b, err = s.seal(b); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*")
	if err != nil {
		return fmt.Errorf("filestore: crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("filestore: reemplazar %s: %w", s.path, err)
	}
	return nil
}

// seal antepone el nonce aleatorio al mensaje cifrado.
func (s *StateStorage) seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("filestore: generar nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plain, &nonce, s.key), nil
}

func (s *StateStorage) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("filestore: archivo cifrado truncado")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, s.key)
	if !ok {
		return nil, fmt.Errorf("filestore: no se pudo descifrar %s (clave incorrecta o archivo alterado)", s.path)
	}
	return plain, nil
}
