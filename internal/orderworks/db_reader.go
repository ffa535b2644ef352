package orderworks

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/stockworks/stockworks-api/internal/data/pgxutil"
	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// DefaultRowLimit bounds how many job rows one fetch returns.
const DefaultRowLimit = 200

// DBReader reads OrderWorks jobs directly from the shared database. Every
// failure, whether at schema introspection, query build, or execution time,
// is reported as a single channel-unavailable condition so callers can decide
// on fallback without distinguishing sub-causes.
type DBReader struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewDBReader constructs a DBReader over the shared database pool.
func NewDBReader(db *sql.DB, logger *slog.Logger) *DBReader {
	if logger != nil {
		logger = logger.With("component", "orderworks_db_reader")
	}
	return &DBReader{db: db, logger: logger}
}

// Fetch returns up to limit job records, newest first by the best available
// timestamp column with identifier as tie-breaker.
func (r *DBReader) Fetch(ctx context.Context, limit int) ([]model.OrderWorksJob, error) {
	if limit <= 0 {
		limit = DefaultRowLimit
	}

	available, err := r.fetchAvailableColumns(ctx)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ErrCodeUnavailable,
			"Unable to query OrderWorks tables via the configured database")
	}

	query, err := buildJobsQuery(available)
	if err != nil {
		// Already an unavailable-class error naming the missing field.
		return nil, err
	}

	var raw []map[string]any
	if err := pgxutil.WithPgxConn(ctx, r.db, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, query, limit)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		raw, qerr = pgx.CollectRows(rows, pgx.RowToMap)
		return qerr
	}); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ErrCodeUnavailable,
			"Unable to query OrderWorks tables via the configured database")
	}

	jobs := make([]model.OrderWorksJob, 0, len(raw))
	for _, row := range raw {
		jobs = append(jobs, model.NormalizeOrderWorksJob(row))
	}

	if r.logger != nil {
		r.logger.DebugContext(ctx, "fetched jobs via shared database", "count", len(jobs))
	}
	return jobs, nil
}

// fetchAvailableColumns introspects the live column set of the jobs table.
func (r *DBReader) fetchAvailableColumns(ctx context.Context) ([]string, error) {
	schema, table := splitTableIdentifier(jobTable)

	query := `SELECT column_name FROM information_schema.columns WHERE table_name = $1`
	args := []any{table}
	if schema != "" {
		query += ` AND table_schema = $2`
		args = append(args, schema)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
