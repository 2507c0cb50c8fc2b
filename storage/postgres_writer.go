package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"mlscomp/models"
	"mlscomp/utils"
)

// PostgresWriter persists processed datasets to PostgreSQL. Each call
// to Write stores the full dataset under a fresh batch id, so earlier
// analysis runs stay queryable.
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, maxRetries int, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: maxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, err
	}

	pw := &PostgresWriter{db: db, logger: logger}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id             SERIAL PRIMARY KEY,
			batch_id       UUID         NOT NULL,
			mls_number     VARCHAR(50)  NOT NULL,
			address        TEXT         NOT NULL DEFAULT '',
			city           TEXT         NOT NULL DEFAULT '',
			status         VARCHAR(20)  NOT NULL DEFAULT '',
			list_price     NUMERIC(14,2),
			close_price    NUMERIC(14,2),
			above_grade    NUMERIC(10,2),
			below_grade    NUMERIC(10,2),
			total_area     NUMERIC(10,2) NOT NULL DEFAULT 0,
			price_per_area NUMERIC(10,2) NOT NULL DEFAULT 0,
			lot_area_sqft  NUMERIC(12,2) NOT NULL DEFAULT 0,
			beds           NUMERIC(5,1),
			baths          NUMERIC(5,2),
			year_built     NUMERIC(6,0),
			dom            NUMERIC(8,1),
			rating         INT          NOT NULL DEFAULT 0,
			best_comp      VARCHAR(3)   NOT NULL DEFAULT 'NO',
			verdict        VARCHAR(20)  NOT NULL DEFAULT 'Not Set',
			listing_link   TEXT         NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
			UNIQUE (batch_id, mls_number)
		);

		CREATE INDEX IF NOT EXISTS idx_properties_batch  ON properties(batch_id);
		CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status);
		CREATE INDEX IF NOT EXISTS idx_properties_price  ON properties(list_price);
	`)
	return err
}

// Write batch-inserts the dataset under a new batch id.
func (pw *PostgresWriter) Write(records []*models.PropertyRecord) error {
	if len(records) == 0 {
		return nil
	}

	batchID := uuid.NewString()
	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := pw.insertBatch(batchID, records[i:end]); err != nil {
			return err
		}
	}

	if pw.logger != nil {
		pw.logger.Info("[postgres] Stored %d records under batch %s", len(records), batchID)
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batchID string, batch []*models.PropertyRecord) error {
	const cols = 20
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, rec := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			batchID, rec.MLSNumber, rec.Address, rec.City, rec.Status,
			rec.ListPrice, rec.ClosePrice, rec.AboveGradeArea, rec.BelowGradeArea,
			rec.TotalArea, rec.PricePerArea, rec.LotAreaSqFt,
			rec.Beds, rec.Baths, rec.YearBuilt, rec.DaysOnMarket,
			rec.Rating, rec.BestComp, rec.ComparisonVerdict, rec.ExternalListingLink)
	}

	query := fmt.Sprintf(`
		INSERT INTO properties (
			batch_id, mls_number, address, city, status,
			list_price, close_price, above_grade, below_grade,
			total_area, price_per_area, lot_area_sqft,
			beds, baths, year_built, dom,
			rating, best_comp, verdict, listing_link
		)
		VALUES %s
		ON CONFLICT (batch_id, mls_number) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
