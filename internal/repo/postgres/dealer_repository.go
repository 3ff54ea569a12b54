package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что DealerRepository удовлетворяет интерфейсу DealerConfigRepository.
var _ ports.DealerConfigRepository = (*DealerRepository)(nil)

// DealerRepository — чтение конфигураций дилеров и связей команды (pgxpool).
type DealerRepository struct {
	pool *pgxpool.Pool
}

// NewDealerRepository - конструктор DealerRepository.
func NewDealerRepository(pool *pgxpool.Pool) *DealerRepository { return &DealerRepository{pool: pool} }

// ConfigByUserID — конфигурация по id пользователя-владельца; (nil, nil), если нет.
func (r *DealerRepository) ConfigByUserID(ctx context.Context, userID string) (*domain.DealerConfig, error) {
	return r.config(ctx, `
		SELECT user_id, email, api_key, api_secret, advertiser_id
		FROM dealers WHERE user_id = $1
	`, userID)
}

// ConfigByEmail — конфигурация по email аккаунта Marketplace; (nil, nil), если нет.
func (r *DealerRepository) ConfigByEmail(ctx context.Context, email string) (*domain.DealerConfig, error) {
	return r.config(ctx, `
		SELECT user_id, email, api_key, api_secret, advertiser_id
		FROM dealers WHERE email = $1
	`, email)
}

// TeamMemberByUserID — связь «член команды → владелец»; (nil, nil), если связи нет.
func (r *DealerRepository) TeamMemberByUserID(ctx context.Context, userID string) (*domain.TeamMember, error) {
	var tm domain.TeamMember
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, store_owner_id FROM team_members WHERE user_id = $1
	`, userID).Scan(&tm.UserID, &tm.StoreOwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select team member: %w", err)
	}
	return &tm, nil
}

func (r *DealerRepository) config(ctx context.Context, query, arg string) (*domain.DealerConfig, error) {
	var cfg domain.DealerConfig
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&cfg.UserID, &cfg.Email, &cfg.APIKey, &cfg.APISecret, &cfg.AdvertiserID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select dealer config: %w", err)
	}
	return &cfg, nil
}

// Проверка, что PurchaseRepository удовлетворяет интерфейсу PurchaseRepository.
var _ ports.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository — записи о закупке; сюда синхронизируется схема НДС.
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository - конструктор PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// SetVATScheme — идемпотентный upsert нормализованной схемы НДС.
func (r *PurchaseRepository) SetVATScheme(ctx context.Context, dealerID, stockID string, scheme domain.VATScheme) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO purchase_records (dealer_id, stock_id, vat_scheme, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (dealer_id, stock_id) DO UPDATE SET
			vat_scheme = EXCLUDED.vat_scheme,
			updated_at = now()
	`, dealerID, stockID, string(scheme)); err != nil {
		return fmt.Errorf("upsert purchase vat scheme: %w", err)
	}
	return nil
}
