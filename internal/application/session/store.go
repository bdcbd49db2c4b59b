// Package session contiene el estado de autenticación del terminal: usuario, negocio y token.
//
// Store es un objeto explícito que se pasa por constructor a handlers y casos de uso;
// no hay estado global. Ciclo de vida: Restore (una vez al arrancar) → Login/Register/Logout → fin del proceso.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	pkgjwt "github.com/jhoicas/bizdash/pkg/jwt"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// MinPasswordLength longitud mínima de contraseña en el registro.
const MinPasswordLength = 6

const backendLogoutTimeout = 5 * time.Second

var persistedKeys = []string{
	repository.KeyToken,
	repository.KeyUser,
	repository.KeyBusiness,
	repository.KeyBusinessSettings,
}

// Store sesión única del terminal.
type Store struct {
	storage repository.StateStorage
	auth    repository.AuthGateway
	log     *logger.Logger

	// lifecycle serializa commit, logout y expiración (memoria + almacén).
	lifecycle sync.Mutex

	mu       sync.RWMutex
	user     *entity.User
	business *entity.Business
	token    string
	settings *entity.BusinessSettings

	restoreOnce sync.Once
	restoreErr  error
	restored    chan struct{}
}

// NewStore construye la sesión vacía; Loading() es true hasta que termine Restore.
func NewStore(storage repository.StateStorage, auth repository.AuthGateway, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		storage:  storage,
		auth:     auth,
		log:      log.Component("session"),
		restored: make(chan struct{}),
	}
}

// Restore lee el estado persistido una sola vez. Llamadas posteriores devuelven el mismo resultado.
// Un valor JSON corrupto o un estado incompleto se descarta y la sesión arranca vacía.
func (s *Store) Restore(ctx context.Context) error {
	s.restoreOnce.Do(func() {
		defer close(s.restored)
		s.restoreErr = s.restore(ctx)
	})
	return s.restoreErr
}

func (s *Store) restore(ctx context.Context) error {
	token, err := s.readString(ctx, repository.KeyToken)
	if err != nil {
		return s.discard(ctx, "token", err)
	}
	var user *entity.User
	if err := s.readJSON(ctx, repository.KeyUser, &user); err != nil {
		return s.discard(ctx, "user", err)
	}
	var business *entity.Business
	if err := s.readJSON(ctx, repository.KeyBusiness, &business); err != nil {
		return s.discard(ctx, "business", err)
	}
	var settings *entity.BusinessSettings
	if err := s.readJSON(ctx, repository.KeyBusinessSettings, &settings); err != nil {
		s.log.Warn().Err(err).Msg("businessSettings persistido ilegible; se ignora")
		settings = nil
	}

	if !entity.Authenticated(user, token) {
		if user != nil || token != "" {
			s.log.Warn().Msg("estado persistido incompleto; se descarta")
			if err := s.storage.Delete(ctx, persistedKeys...); err != nil {
				s.log.Error().Err(err).Msg("no se pudo limpiar el estado persistido")
			}
		}
		return nil
	}

	s.mu.Lock()
	s.user, s.business, s.token, s.settings = user, business, token, settings
	s.mu.Unlock()
	s.log.Info().Str("user", user.Email).Msg("sesión restaurada")
	return nil
}

// discard registra el fallo de lectura y deja la sesión vacía. Sólo los errores del
// almacén se devuelven; el estado corrupto no es un error para quien llama.
func (s *Store) discard(ctx context.Context, key string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, repository.ErrCorruptState) {
		s.log.Warn().Err(err).Str("key", key).Msg("estado persistido corrupto; la sesión arranca vacía")
		if delErr := s.storage.Delete(ctx, persistedKeys...); delErr != nil {
			s.log.Error().Err(delErr).Msg("no se pudo limpiar el estado persistido")
		}
		return nil
	}
	s.log.Error().Err(err).Str("key", key).Msg("no se pudo leer el estado persistido")
	return fmt.Errorf("session: restaurar %s: %w", key, err)
}

func (s *Store) readString(ctx context.Context, key string) (string, error) {
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil || !ok {
		return "", err
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) readJSON(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil || !ok {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Loading indica si la restauración inicial aún no terminó.
func (s *Store) Loading() bool {
	select {
	case <-s.restored:
		return false
	default:
		return true
	}
}

// Login autentica contra el backend. Si falla, el estado queda intacto y el error lleva el mensaje del backend.
func (s *Store) Login(ctx context.Context, email, password string) (entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entity.Session{}, domain.Invalid("email", "Email and password are required")
	}
	resp, err := s.auth.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.log.Info().Err(err).Str("email", email).Msg("login rechazado")
		return entity.Session{}, err
	}
	if err := s.commit(ctx, resp); err != nil {
		return entity.Session{}, err
	}
	s.log.Info().Str("email", email).Msg("login correcto")
	return s.Snapshot(), nil
}

// Register valida el formulario localmente (sin llamada de red si falla) y registra en el backend.
func (s *Store) Register(ctx context.Context, in dto.RegisterRequest) (entity.Session, error) {
	if err := validateRegister(&in); err != nil {
		return entity.Session{}, err
	}
	resp, err := s.auth.Register(ctx, in)
	if err != nil {
		s.log.Info().Err(err).Str("email", in.Email).Msg("registro rechazado")
		return entity.Session{}, err
	}
	if err := s.commit(ctx, resp); err != nil {
		return entity.Session{}, err
	}
	s.log.Info().Str("email", in.Email).Msg("registro correcto")
	return s.Snapshot(), nil
}

func validateRegister(in *dto.RegisterRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domain.Invalid("name", "Name, email and password are required")
	}
	if in.BusinessName == "" {
		return domain.Invalid("businessName", "Business name is required")
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if len(in.Password) < MinPasswordLength {
		return domain.Invalid("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// commit persiste {token, user, business} y después actualiza la memoria.
// Si cambia el negocio, la businessSettings en caché es de otro negocio y se descarta.
func (s *Store) commit(ctx context.Context, resp *dto.AuthResponse) error {
	if resp == nil || !entity.Authenticated(resp.User, resp.BearerToken()) {
		return fmt.Errorf("session: respuesta de autenticación incompleta: %w", domain.ErrBackendUnavailable)
	}
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.RLock()
	sameBusiness := s.business != nil && resp.Business != nil && s.business.ID == resp.Business.ID
	s.mu.RUnlock()
	token := resp.BearerToken()
	values := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		repository.KeyToken:    token,
		repository.KeyUser:     resp.User,
		repository.KeyBusiness: resp.Business,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("session: serializar %s: %w", key, err)
		}
		values[key] = b
	}
	if err := s.storage.SetMany(ctx, values); err != nil {
		s.log.Error().Err(err).Msg("no se pudo persistir la sesión")
		return fmt.Errorf("session: persistir: %w", err)
	}
	if !sameBusiness {
		if err := s.storage.Delete(ctx, repository.KeyBusinessSettings); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo borrar businessSettings del negocio anterior")
		}
	}

	s.mu.Lock()
	s.user, s.business, s.token = resp.User, resp.Business, token
	if !sameBusiness {
		s.settings = nil
	}
	s.mu.Unlock()
	return nil
}

// Logout limpia memoria y almacenamiento y luego, en el mejor esfuerzo, avisa al backend.
// Un fallo del backend nunca impide el cierre local.
func (s *Store) Logout(ctx context.Context) error {
	s.lifecycle.Lock()
	token := s.clear()
	err := s.storage.Delete(ctx, persistedKeys...)
	s.lifecycle.Unlock()
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudo borrar el estado persistido")
		err = fmt.Errorf("session: borrar estado: %w", err)
	}

	if token != "" {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), backendLogoutTimeout)
		defer cancel()
		if lerr := s.auth.Logout(bctx, token); lerr != nil {
			s.log.Warn().Err(lerr).Msg("logout remoto falló; la sesión local ya está cerrada")
		}
	}
	s.log.Info().Msg("sesión cerrada")
	return err
}

// clear vacía la memoria y devuelve el token que había.
func (s *Store) clear() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := s.token
	s.user, s.business, s.token, s.settings = nil, nil, "", nil
	return token
}

// clearIfToken vacía la memoria sólo si el token sigue siendo el indicado.
func (s *Store) clearIfToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return false
	}
	s.user, s.business, s.token, s.settings = nil, nil, "", nil
	return true
}

// ExpireIfExpired cierra la sesión local si el token trae exp y ya pasó.
// No llama al backend: un token expirado ya no sirve para el logout remoto.
// La comprobación, el vaciado y el borrado ocurren bajo el mismo lock que Login, así que
// nunca borra una sesión iniciada después de leer el token expirado.
func (s *Store) ExpireIfExpired(ctx context.Context, now time.Time) (bool, error) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	token := s.Token()
	if token == "" || !pkgjwt.Expired(token, now) {
		return false, nil
	}
	if !s.clearIfToken(token) {
		return false, nil
	}
	if err := s.storage.Delete(ctx, persistedKeys...); err != nil {
		return true, fmt.Errorf("session: borrar estado expirado: %w", err)
	}
	s.log.Info().Msg("token expirado; sesión cerrada")
	return true, nil
}

// Snapshot copia consistente del estado actual.
func (s *Store) Snapshot() entity.Session {
	s.mu.RLock()
	sess := entity.Session{
		User:            s.user,
		Business:        s.business,
		Token:           s.token,
		IsAuthenticated: entity.Authenticated(s.user, s.token),
	}
	s.mu.RUnlock()

	sess.Loading = s.Loading()
	if exp, ok := pkgjwt.ExpiresAt(sess.Token); ok {
		sess.ExpiresAt = &exp
	}
	return sess
}

// Token bearer actual; vacío si no hay sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated ⇔ user != nil && token != "".
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.Authenticated(s.user, s.token)
}

// Business negocio de la sesión (nil si no hay).
func (s *Store) Business() *entity.Business {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.business
}

// BusinessSettings copia en caché de la configuración del negocio.
func (s *Store) BusinessSettings() *entity.BusinessSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil
	}
	cp := *s.settings
	return &cp
}

// SaveBusinessSettings persiste businessSettings y actualiza la caché.
func (s *Store) SaveBusinessSettings(ctx context.Context, settings entity.BusinessSettings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("session: serializar businessSettings: %w", err)
	}
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if err := s.storage.SetMany(ctx, map[string][]byte{repository.KeyBusinessSettings: b}); err != nil {
		return fmt.Errorf("session: persistir businessSettings: %w", err)
	}
	s.mu.Lock()
	s.settings = &settings
	s.mu.Unlock()
	return nil
}
