// Package repository — CalculationRepository'nin SQLite implementasyonu.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/akinalp/calculator/database"
	"github.com/akinalp/calculator/models"
)

// timestampLayout sabit genişlikli UTC formatı: TEXT kolonunda
// leksikografik sıralama kronolojik sıralamayla aynı olur.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

type sqliteCalculationRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteCalculationRepo, constructor — interface döner.
func NewSQLiteCalculationRepo(db *sql.DB) CalculationRepository {
	return &sqliteCalculationRepo{db: db, now: time.Now}
}

func (r *sqliteCalculationRepo) Insert(ctx context.Context, record *models.CalculationRecord) error {
	params, err := json.Marshal(record.Parameters)
	if err != nil {
		return fmt.Errorf("failed to encode calculation parameters: %w", err)
	}

	id := uuid.NewString()
	ts := r.now().UTC()

	// SQLite NaN'ı REAL olarak saklayamaz; NULL yazılır, okurken NaN'a döner.
	var result sql.NullFloat64
	if f := float64(record.Result); !math.IsNaN(f) {
		result = sql.NullFloat64{Float64: f, Valid: true}
	}

	query := `
		INSERT INTO calculations (id, operation, parameters, result, timestamp)
		VALUES (?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		id, record.Operation, string(params), result, ts.Format(timestampLayout),
	); err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}

	record.ID = id
	record.Timestamp = ts
	return nil
}

func (r *sqliteCalculationRepo) ListLatest(ctx context.Context, limit int) ([]models.CalculationRecord, error) {
	query := `
		SELECT id, operation, parameters, result, timestamp
		FROM calculations
		ORDER BY timestamp DESC, seq DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	records := make([]models.CalculationRecord, 0, limit)
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculations: %w", err)
	}

	return records, nil
}

// DeleteAll, silme ve sayımı tek transaction'da yapar.
func (r *sqliteCalculationRepo) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		deleted, err = deleteCalculations(ctx, tx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// deleteCalculations hem *sql.DB hem *sql.Tx ile çalışır.
func deleteCalculations(ctx context.Context, q database.TxQuerier) (int64, error) {
	res, err := q.ExecContext(ctx, `DELETE FROM calculations`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete calculations: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get delete count: %w", err)
	}
	return n, nil
}

func scanCalculation(rows *sql.Rows) (models.CalculationRecord, error) {
	var (
		rec    models.CalculationRecord
		params string
		result sql.NullFloat64
		ts     string
	)

	if err := rows.Scan(&rec.ID, &rec.Operation, &params, &result, &ts); err != nil {
		return rec, fmt.Errorf("failed to scan calculation: %w", err)
	}

	if err := json.Unmarshal([]byte(params), &rec.Parameters); err != nil {
		return rec, fmt.Errorf("failed to decode parameters of %s: %w", rec.ID, err)
	}

	rec.Result = models.Number(math.NaN())
	if result.Valid {
		rec.Result = models.Number(result.Float64)
	}

	parsed, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return rec, fmt.Errorf("failed to parse timestamp of %s: %w", rec.ID, err)
	}
	rec.Timestamp = parsed

	return rec, nil
}
