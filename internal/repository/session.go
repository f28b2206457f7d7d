package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/creator-rates/backend/internal/models"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository создает репозиторий расчетных сессий.
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, title, expenses, income_settings, creator_data, selected_rate_tier, markup, custom_services, created_at, updated_at`

func scanSession(row pgx.Row) (models.PricingSession, error) {
	var session models.PricingSession
	var expenses, incomeSettings, creatorData, customServices []byte

	err := row.Scan(&session.ID, &session.Title, &expenses, &incomeSettings, &creatorData,
		&session.RateTier, &session.Markup, &customServices, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session, ErrNotFound
		}
		return session, err
	}

	if err := json.Unmarshal(expenses, &session.Expenses); err != nil {
		return session, fmt.Errorf("decode expenses: %w", err)
	}
	if err := json.Unmarshal(incomeSettings, &session.IncomeSettings); err != nil {
		return session, fmt.Errorf("decode income settings: %w", err)
	}
	if err := json.Unmarshal(creatorData, &session.Creator); err != nil {
		return session, fmt.Errorf("decode creator data: %w", err)
	}
	if err := json.Unmarshal(customServices, &session.CustomServices); err != nil {
		return session, fmt.Errorf("decode custom services: %w", err)
	}

	return session, nil
}

// Create сохраняет новую сессию целиком.
func (r *SessionRepository) Create(ctx context.Context, session models.PricingSession) (models.PricingSession, error) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	expenses, err := json.Marshal(session.Expenses)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode expenses: %w", err)
	}
	incomeSettings, err := json.Marshal(session.IncomeSettings)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode income settings: %w", err)
	}
	creatorData, err := json.Marshal(session.Creator)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode creator data: %w", err)
	}
	customServices, err := json.Marshal(session.CustomServices)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode custom services: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO pricing_sessions (id, title, expenses, income_settings, creator_data, selected_rate_tier, markup, custom_services)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+sessionColumns,
		session.ID, session.Title, expenses, incomeSettings, creatorData, session.RateTier, session.Markup, customServices,
	)

	return scanSession(row)
}

// GetByID возвращает сессию по идентификатору.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (models.PricingSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+`
		 FROM pricing_sessions
		 WHERE id = $1`,
		id,
	)

	return scanSession(row)
}

// List возвращает сессии, самые свежие первыми.
func (r *SessionRepository) List(ctx context.Context) ([]models.PricingSession, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+`
		 FROM pricing_sessions
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.PricingSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Delete удаляет сессию.
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM pricing_sessions
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateExpenses заменяет список расходов сессии.
func (r *SessionRepository) UpdateExpenses(ctx context.Context, id uuid.UUID, expenses []models.Expense) (models.PricingSession, error) {
	payload, err := json.Marshal(expenses)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode expenses: %w", err)
	}

	return scanSession(r.db.QueryRow(ctx,
		`UPDATE pricing_sessions
		 SET expenses = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, payload,
	))
}

// UpdateIncomeSettings заменяет настройки дохода сессии.
func (r *SessionRepository) UpdateIncomeSettings(ctx context.Context, id uuid.UUID, settings models.IncomeSettings) (models.PricingSession, error) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode income settings: %w", err)
	}

	return scanSession(r.db.QueryRow(ctx,
		`UPDATE pricing_sessions
		 SET income_settings = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, payload,
	))
}

// UpdateCreator заменяет профиль креатора сессии.
func (r *SessionRepository) UpdateCreator(ctx context.Context, id uuid.UUID, creator models.CreatorProfile) (models.PricingSession, error) {
	payload, err := json.Marshal(creator)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode creator data: %w", err)
	}

	return scanSession(r.db.QueryRow(ctx,
		`UPDATE pricing_sessions
		 SET creator_data = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, payload,
	))
}

// UpdateTier устанавливает тариф и наценку сессии.
func (r *SessionRepository) UpdateTier(ctx context.Context, id uuid.UUID, tier models.RateTier, markup float64) (models.PricingSession, error) {
	return scanSession(r.db.QueryRow(ctx,
		`UPDATE pricing_sessions
		 SET selected_rate_tier = $2, markup = $3, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, tier, markup,
	))
}

// AddCustomService добавляет кастомную услугу в сессию.
func (r *SessionRepository) AddCustomService(ctx context.Context, id uuid.UUID, service models.CustomService) (models.PricingSession, error) {
	return r.mutateCustomServices(ctx, id, func(services []models.CustomService) ([]models.CustomService, error) {
		for _, existing := range services {
			if existing.ID == service.ID {
				return nil, ErrConflict
			}
		}
		return append(services, service), nil
	})
}

// RemoveCustomService удаляет кастомную услугу из сессии.
func (r *SessionRepository) RemoveCustomService(ctx context.Context, id uuid.UUID, serviceID uuid.UUID) (models.PricingSession, error) {
	return r.mutateCustomServices(ctx, id, func(services []models.CustomService) ([]models.CustomService, error) {
		kept := make([]models.CustomService, 0, len(services))
		for _, existing := range services {
			if existing.ID != serviceID {
				kept = append(kept, existing)
			}
		}
		if len(kept) == len(services) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}

func (r *SessionRepository) mutateCustomServices(ctx context.Context, id uuid.UUID, mutate func([]models.CustomService) ([]models.CustomService, error)) (models.PricingSession, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.PricingSession{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	session, err := scanSession(tx.QueryRow(ctx,
		`SELECT `+sessionColumns+`
		 FROM pricing_sessions
		 WHERE id = $1
		 FOR UPDATE`,
		id,
	))
	if err != nil {
		return models.PricingSession{}, err
	}

	services, err := mutate(session.CustomServices)
	if err != nil {
		return models.PricingSession{}, err
	}

	payload, err := json.Marshal(services)
	if err != nil {
		return models.PricingSession{}, fmt.Errorf("encode custom services: %w", err)
	}

	session, err = scanSession(tx.QueryRow(ctx,
		`UPDATE pricing_sessions
		 SET custom_services = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+sessionColumns,
		id, payload,
	))
	if err != nil {
		return models.PricingSession{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return models.PricingSession{}, err
	}

	return session, nil
}
