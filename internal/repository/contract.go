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

type ContractRepository struct {
	db *pgxpool.Pool
}

// NewContractRepository создает репозиторий договоров.
func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

func scanContract(row pgx.Row) (models.Contract, error) {
	var contract models.Contract
	var data []byte

	err := row.Scan(&contract.ID, &data, &contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract, ErrNotFound
		}
		return contract, err
	}

	if err := json.Unmarshal(data, &contract.Data); err != nil {
		return contract, fmt.Errorf("decode contract data: %w", err)
	}

	return contract, nil
}

// Create сохраняет новый договор.
func (r *ContractRepository) Create(ctx context.Context, contract models.Contract) (models.Contract, error) {
	if contract.ID == uuid.Nil {
		contract.ID = uuid.New()
	}

	payload, err := json.Marshal(contract.Data)
	if err != nil {
		return models.Contract{}, fmt.Errorf("encode contract data: %w", err)
	}

	return scanContract(r.db.QueryRow(ctx,
		`INSERT INTO contracts (id, data)
		 VALUES ($1, $2)
		 RETURNING id, data, created_at, updated_at`,
		contract.ID, payload,
	))
}

// GetByID возвращает договор по идентификатору.
func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Contract, error) {
	return scanContract(r.db.QueryRow(ctx,
		`SELECT id, data, created_at, updated_at
		 FROM contracts
		 WHERE id = $1`,
		id,
	))
}

// List возвращает договоры, самые свежие первыми.
func (r *ContractRepository) List(ctx context.Context) ([]models.Contract, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, data, created_at, updated_at
		 FROM contracts
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := make([]models.Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}

// Update заменяет данные договора.
func (r *ContractRepository) Update(ctx context.Context, id uuid.UUID, data models.ContractData) (models.Contract, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return models.Contract{}, fmt.Errorf("encode contract data: %w", err)
	}

	return scanContract(r.db.QueryRow(ctx,
		`UPDATE contracts
		 SET data = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, data, created_at, updated_at`,
		id, payload,
	))
}

// Delete удаляет договор.
func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM contracts
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
