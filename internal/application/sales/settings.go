package sales

import (
	"context"
	"strings"

	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// SettingsCache copia local de businessSettings (la sesión la persiste).
type SettingsCache interface {
	BusinessSettings() *entity.BusinessSettings
	SaveBusinessSettings(ctx context.Context, s entity.BusinessSettings) error
	Business() *entity.Business
}

// SettingsUseCase configuración del negocio; la copia en caché es la cabecera de los recibos.
type SettingsUseCase struct {
	gateway repository.SettingsGateway
	cache   SettingsCache
	log     *logger.Logger
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(gateway repository.SettingsGateway, cache SettingsCache, log *logger.Logger) *SettingsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SettingsUseCase{gateway: gateway, cache: cache, log: log.Component("settings")}
}

// Get trae la configuración del backend y refresca la caché. Si el backend falla,
// devuelve la cabecera local junto con el error.
func (uc *SettingsUseCase) Get(ctx context.Context) (entity.BusinessSettings, error) {
	s, err := uc.gateway.GetBusinessSettings(ctx)
	if err != nil {
		return uc.Header(), err
	}
	if err := uc.cache.SaveBusinessSettings(ctx, *s); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo guardar businessSettings en caché")
	}
	return *s, nil
}

// Update guarda la configuración en el backend y en la caché.
func (uc *SettingsUseCase) Update(ctx context.Context, in entity.BusinessSettings) (*entity.BusinessSettings, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	if in.BusinessName == "" {
		return nil, domain.Invalid("business_name", "Business name is required")
	}
	s, err := uc.gateway.UpdateBusinessSettings(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SaveBusinessSettings(ctx, *s); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo guardar businessSettings en caché")
	}
	uc.log.Info().Str("business", s.BusinessName).Msg("configuración del negocio actualizada")
	return s, nil
}

// Header cabecera de recibo: la configuración en caché o, si no hay, los datos del negocio de la sesión.
func (uc *SettingsUseCase) Header() entity.BusinessSettings {
	if s := uc.cache.BusinessSettings(); s != nil {
		return *s
	}
	if b := uc.cache.Business(); b != nil {
		return entity.BusinessSettings{BusinessName: b.Name, Address: b.Address, Phone: b.Phone, Email: b.Email}
	}
	return entity.BusinessSettings{}
}
