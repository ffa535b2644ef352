package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stockworks/stockworks-api/internal/data/pgxutil"
	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

const materialColumns = `id, name, brand, filament_type, category, color, supplier,
	price_per_gram, spool_weight_grams, barcode, notes, created_at, updated_at`

// MaterialRepo provides database operations for materials.
type MaterialRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMaterialRepo creates a new MaterialRepo with real time provider.
func NewMaterialRepo(db *sql.DB) *MaterialRepo {
	return &MaterialRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMaterialRepoWithTimeProvider creates a new MaterialRepo with a custom time provider (useful for tests).
func NewMaterialRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MaterialRepo {
	return &MaterialRepo{DB: db, timeProvider: tp}
}

// Create inserts a new material.
func (r *MaterialRepo) Create(ctx context.Context, req *model.CreateMaterialRequest) (*model.Material, error) {
	if req == nil {
		return nil, errorsx.Validation("create material request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Material
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO materials (
				id, name, brand, filament_type, category, color, supplier,
				price_per_gram, spool_weight_grams, barcode, notes, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12
			) RETURNING `+materialColumns,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			req.Brand,
			strings.TrimSpace(req.FilamentType),
			req.Category,
			strings.TrimSpace(req.Color),
			req.Supplier,
			req.PricePerGram,
			req.SpoolWeightGrams,
			req.Barcode,
			req.Notes,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Material])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a material by ID.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*model.Material, error) {
	var out model.Material
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Material])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all materials ordered by name.
func (r *MaterialRepo) List(ctx context.Context) ([]*model.Material, error) {
	var rowsOut []model.Material
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+materialColumns+` FROM materials ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Material])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}

	res := make([]*model.Material, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a material. Nil request fields are left unchanged.
func (r *MaterialRepo) Update(ctx context.Context, id string, req *model.UpdateMaterialRequest) (*model.Material, error) {
	if req == nil {
		return nil, errorsx.Validation("update material request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.Material
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE materials SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + materialColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Material])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

func (r *MaterialRepo) buildUpdateClause(req *model.UpdateMaterialRequest) (string, []any) {
	setParts := make([]string, 0, 11)
	args := make([]any, 0, 12)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Brand != nil {
		setParts = append(setParts, fmt.Sprintf("brand = $%d", nextIdx()))
		args = append(args, *req.Brand)
	}
	if req.FilamentType != nil {
		setParts = append(setParts, fmt.Sprintf("filament_type = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.FilamentType))
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", nextIdx()))
		args = append(args, *req.Category)
	}
	if req.Color != nil {
		setParts = append(setParts, fmt.Sprintf("color = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Color))
	}
	if req.Supplier != nil {
		setParts = append(setParts, fmt.Sprintf("supplier = $%d", nextIdx()))
		args = append(args, *req.Supplier)
	}
	if req.PricePerGram != nil {
		setParts = append(setParts, fmt.Sprintf("price_per_gram = $%d", nextIdx()))
		args = append(args, *req.PricePerGram)
	}
	if req.SpoolWeightGrams != nil {
		setParts = append(setParts, fmt.Sprintf("spool_weight_grams = $%d", nextIdx()))
		args = append(args, *req.SpoolWeightGrams)
	}
	if req.Barcode != nil {
		setParts = append(setParts, fmt.Sprintf("barcode = $%d", nextIdx()))
		args = append(args, *req.Barcode)
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
		args = append(args, *req.Notes)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes a material by ID.
func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return errorsx.MapDBError(err)
	}
	if rows == 0 {
		return errorsx.NotFound("Material not found")
	}
	return nil
}
