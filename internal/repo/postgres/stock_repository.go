package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что StockRepository удовлетворяет интерфейсу StockRepository.
var _ ports.StockRepository = (*StockRepository)(nil)

const defaultListLimit = 100

// StockRepository — персистентный кэш записей stock на Postgres (pgxpool).
// Под-документы лежат в jsonb-колонках как есть, плоские производные —
// в обычных колонках для выборок по списку.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository - конструктор StockRepository.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository { return &StockRepository{pool: pool} }

const stockColumns = `
	vehicle_data, adverts_data, metadata_doc,
	forecourt_price_gbp, total_price_gbp, lifecycle_state,
	registration, make, model, last_fetched_at
`

// Get — запись по ключу (dealer_id, stock_id). Если не нашли, возвращает (nil, nil).
func (r *StockRepository) Get(ctx context.Context, dealerID, stockID string) (*domain.StockRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+stockColumns+`
		FROM stock_records
		WHERE dealer_id = $1 AND stock_id = $2
	`, dealerID, stockID)

	rec, err := scanStockRecord(row, dealerID, stockID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select stock record: %w", err)
	}
	return rec, nil
}

// UpsertFields — идемпотентный частичный upsert: nil-поля patch не трогают
// существующие колонки (COALESCE на стороне Postgres), заполненные —
// заменяют значение целиком. Глубокого слияния jsonb здесь нет: под-документ
// уже слит движком слияния и пишется как готовый объект.
func (r *StockRepository) UpsertFields(ctx context.Context, dealerID, stockID string, patch *domain.StockPatch) error {
	if dealerID == "" || stockID == "" {
		return errors.New("dealer_id and stock_id are required")
	}
	if patch == nil {
		return errors.New("patch is empty")
	}

	vehicle, err := jsonbDoc(patch.Vehicle)
	if err != nil {
		return fmt.Errorf("marshal vehicle: %w", err)
	}
	adverts, err := jsonbDoc(patch.Adverts)
	if err != nil {
		return fmt.Errorf("marshal adverts: %w", err)
	}
	metadata, err := jsonbDoc(patch.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO stock_records (
			dealer_id, stock_id, vehicle_data, adverts_data, metadata_doc,
			forecourt_price_gbp, total_price_gbp, lifecycle_state,
			registration, make, model, last_fetched_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, COALESCE($8, ''),
			COALESCE($9, ''), COALESCE($10, ''), COALESCE($11, ''), COALESCE($12, now())
		)
		ON CONFLICT (dealer_id, stock_id) DO UPDATE SET
			vehicle_data = COALESCE($3, stock_records.vehicle_data),
			adverts_data = COALESCE($4, stock_records.adverts_data),
			metadata_doc = COALESCE($5, stock_records.metadata_doc),
			forecourt_price_gbp = COALESCE($6, stock_records.forecourt_price_gbp),
			total_price_gbp = COALESCE($7, stock_records.total_price_gbp),
			lifecycle_state = COALESCE($8, stock_records.lifecycle_state),
			registration = COALESCE($9, stock_records.registration),
			make = COALESCE($10, stock_records.make),
			model = COALESCE($11, stock_records.model),
			last_fetched_at = COALESCE($12, stock_records.last_fetched_at)
	`,
		dealerID, stockID, vehicle, adverts, metadata,
		patch.ForecourtPriceGBP, patch.TotalPriceGBP, patch.LifecycleState,
		patch.Registration, patch.Make, patch.Model, patch.LastFetchedAt,
	); err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

// ListByDealer — постраничный список записей дилера, свежие первыми.
func (r *StockRepository) ListByDealer(ctx context.Context, dealerID string, limit, offset int) ([]*domain.StockRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT stock_id, `+stockColumns+`
		FROM stock_records
		WHERE dealer_id = $1
		ORDER BY last_fetched_at DESC, stock_id
		LIMIT $2 OFFSET $3
	`, dealerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select stock records: %w", err)
	}
	defer rows.Close()

	var out []*domain.StockRecord
	for rows.Next() {
		var stockID string
		var vehicleRaw, advertsRaw, metadataRaw []byte
		rec := &domain.StockRecord{DealerID: dealerID}

		if err := rows.Scan(
			&stockID, &vehicleRaw, &advertsRaw, &metadataRaw,
			&rec.ForecourtPriceGBP, &rec.TotalPriceGBP, &rec.LifecycleState,
			&rec.Registration, &rec.Make, &rec.Model, &rec.LastFetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		rec.StockID = stockID
		if err := decodeStockDocs(rec, vehicleRaw, advertsRaw, metadataRaw); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stock records rows: %w", err)
	}
	return out, nil
}

// Delete — удалить запись; отсутствие строки не считается ошибкой.
func (r *StockRepository) Delete(ctx context.Context, dealerID, stockID string) error {
	if _, err := r.pool.Exec(ctx, `
		DELETE FROM stock_records WHERE dealer_id = $1 AND stock_id = $2
	`, dealerID, stockID); err != nil {
		return fmt.Errorf("delete stock record: %w", err)
	}
	return nil
}

// ------вспомогательные функции------

func scanStockRecord(row pgx.Row, dealerID, stockID string) (*domain.StockRecord, error) {
	var vehicleRaw, advertsRaw, metadataRaw []byte
	rec := &domain.StockRecord{DealerID: dealerID, StockID: stockID}

	if err := row.Scan(
		&vehicleRaw, &advertsRaw, &metadataRaw,
		&rec.ForecourtPriceGBP, &rec.TotalPriceGBP, &rec.LifecycleState,
		&rec.Registration, &rec.Make, &rec.Model, &rec.LastFetchedAt,
	); err != nil {
		return nil, err
	}
	if err := decodeStockDocs(rec, vehicleRaw, advertsRaw, metadataRaw); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeStockDocs(rec *domain.StockRecord, vehicleRaw, advertsRaw, metadataRaw []byte) error {
	if len(vehicleRaw) > 0 {
		rec.Vehicle = &domain.VehicleData{}
		if err := json.Unmarshal(vehicleRaw, rec.Vehicle); err != nil {
			return fmt.Errorf("decode vehicle_data: %w", err)
		}
	}
	if len(advertsRaw) > 0 {
		rec.Adverts = &domain.AdvertsData{}
		if err := json.Unmarshal(advertsRaw, rec.Adverts); err != nil {
			return fmt.Errorf("decode adverts_data: %w", err)
		}
	}
	if len(metadataRaw) > 0 {
		rec.Metadata = &domain.StockMetadata{}
		if err := json.Unmarshal(metadataRaw, rec.Metadata); err != nil {
			return fmt.Errorf("decode metadata_doc: %w", err)
		}
	}
	return nil
}

// jsonbDoc — nil-указатель остаётся NULL в jsonb-колонке.
func jsonbDoc[T any](doc *T) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	return json.Marshal(doc)
}
