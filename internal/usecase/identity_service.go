package usecase

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
)

// Проверка, что IdentityService удовлетворяет интерфейсу IdentityResolver.
var _ ports.IdentityResolver = (*IdentityService)(nil)

// IdentityService — разрешение effective identity для запроса.
// Член команды всегда работает под email владельца магазина: ключи API
// привязаны к дилеру, а не к пользователю. Результат не кэшируется —
// связь «член команды → владелец» может измениться между запросами.
type IdentityService struct {
	dealers ports.DealerConfigRepository
	log     ports.Logger
}

// NewIdentityService — DI-конструктор.
func NewIdentityService(dealers ports.DealerConfigRepository, log ports.Logger) *IdentityService {
	return &IdentityService{dealers: dealers, log: log}
}

// Resolve — effective identity по id пользователя и/или email.
// Порядок: связь команды (email владельца), затем собственная конфигурация
// по userID, затем конфигурация по email. Если ничего нет — config_not_found.
func (s *IdentityService) Resolve(ctx context.Context, userID, email string) (*domain.EffectiveIdentity, error) {
	if userID != "" {
		member, err := s.dealers.TeamMemberByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if member != nil {
			ownerCfg, err := s.dealers.ConfigByUserID(ctx, member.StoreOwnerID)
			if err != nil {
				return nil, err
			}
			if ownerCfg == nil {
				// Связь есть, а конфигурации владельца нет — делегирование сломано.
				s.log.Warnf(ctx, "team member %s points to owner %s without dealer config", userID, member.StoreOwnerID)
				return nil, domain.ErrConfigNotFound(userID)
			}
			return &domain.EffectiveIdentity{
				RequestingUserID:  userID,
				EffectiveEmail:    ownerCfg.Email,
				IsDelegated:       true,
				DelegatingOwnerID: member.StoreOwnerID,
			}, nil
		}

		own, err := s.dealers.ConfigByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if own != nil {
			return &domain.EffectiveIdentity{RequestingUserID: userID, EffectiveEmail: own.Email}, nil
		}
	}

	if email != "" {
		cfg, err := s.dealers.ConfigByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			return &domain.EffectiveIdentity{RequestingUserID: userID, EffectiveEmail: cfg.Email}, nil
		}
	}

	return nil, domain.ErrConfigNotFound(userID)
}
