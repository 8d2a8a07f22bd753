package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/db"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/dberrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// AssetFilter narrows asset listings
type AssetFilter struct {
	Status   models.AssetStatus
	Category string
	Query    string // matches name or serial number, case-insensitive
}

// AssetRepository handles asset and assignment history database operations
type AssetRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const assetColumns = "id, name, serial_number, category, status, assigned_to_id, assigned_to_type, rental_start_date, rental_end_date, created_at, updated_at"

func scanAsset(row pgx.Row) (*models.Asset, error) {
	a := &models.Asset{}
	err := row.Scan(&a.ID, &a.Name, &a.SerialNumber, &a.Category, &a.Status,
		&a.AssignedToID, &a.AssignedToType, &a.RentalStartDate, &a.RentalEndDate,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAsset registers a new equipment unit
func (r *AssetRepository) CreateAsset(ctx context.Context, asset *models.Asset) (int64, error) {
	sql, args, err := r.sb.Insert("assets").
		Columns("name", "serial_number", "category", "status").
		Values(asset.Name, asset.SerialNumber, asset.Category, asset.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create asset query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrDuplicateSerialNumber
		}
		logger.Error().Err(err).Str("name", asset.Name).Msg("Error executing create asset query")
		return 0, fmt.Errorf("error creating asset: %w", err)
	}
	return id, nil
}

// GetAssetByID retrieves an asset by ID
func (r *AssetRepository) GetAssetByID(ctx context.Context, id int64) (*models.Asset, error) {
	sql, args, err := r.sb.Select(assetColumns).
		From("assets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get asset query: %w", err)
	}

	asset, err := scanAsset(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssetNotFound
		}
		logger.Error().Err(err).Int64("assetID", id).Msg("Error scanning asset row")
		return nil, fmt.Errorf("error getting asset by ID: %w", err)
	}
	return asset, nil
}

// GetAllAssets retrieves assets matching the filter, with pagination
func (r *AssetRepository) GetAllAssets(ctx context.Context, filter AssetFilter, offset uint64, limit int) ([]*models.Asset, int64, error) {
	base := r.sb.Select(assetColumns).From("assets")
	countQ := r.sb.Select("COUNT(*)").From("assets")

	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"status": filter.Status})
		countQ = countQ.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		base = base.Where(squirrel.Eq{"category": filter.Category})
		countQ = countQ.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"serial_number": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	countSql, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count assets query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting assets: %w", err)
	}

	sql, args, err := base.OrderBy("name ASC", "id ASC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list assets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assets query")
		return nil, 0, fmt.Errorf("error querying assets: %w", err)
	}
	defer rows.Close()

	assets := []*models.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return assets, total, nil
}

// UpdateAsset updates an asset's descriptive fields
func (r *AssetRepository) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	sql, args, err := r.sb.Update("assets").
		SetMap(map[string]interface{}{
			"name":          asset.Name,
			"serial_number": asset.SerialNumber,
			"category":      asset.Category,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": asset.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update asset query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateSerialNumber
		}
		logger.Error().Err(err).Int64("assetID", asset.ID).Msg("Error executing update asset query")
		return fmt.Errorf("error updating asset: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// AssignAsset rents the asset out to the assignee. The status transition is a
// conditional update guarded on the current status so two concurrent assigns
// of the same unit cannot both succeed; the loser sees zero rows affected.
// The assignment history record is inserted in the same transaction.
func (r *AssetRepository) AssignAsset(ctx context.Context, assetID int64, assignment *models.AssetAssignment) (*models.Asset, error) {
	var asset *models.Asset

	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		sql, args, err := r.sb.Update("assets").
			SetMap(map[string]interface{}{
				"status":            models.AssetRentalInProgress,
				"assigned_to_id":    assignment.AssignedToID,
				"assigned_to_type":  assignment.AssignedToType,
				"rental_start_date": now,
				"rental_end_date":   nil,
				"updated_at":        now,
			}).
			Where(squirrel.Eq{"id": assetID, "status": models.AssetAvailable}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build assign asset query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error assigning asset: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			// Distinguish a missing asset from one that is simply not
			// available right now.
			current, err := r.getAssetByIDTx(ctx, tx, assetID)
			if err != nil {
				return err
			}
			return apperrors.NewAssetNotAvailableError(string(current.Status))
		}

		sql, args, err = r.sb.Insert("asset_assignments").
			Columns("asset_id", "assigned_to_id", "assigned_to_type", "assignment_date", "schedule_id", "notes", "assigned_by").
			Values(assetID, assignment.AssignedToID, assignment.AssignedToType, now,
				assignment.ScheduleID, assignment.Notes, assignment.AssignedBy).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create assignment query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating assignment record: %w", err)
		}

		asset, err = r.getAssetByIDTx(ctx, tx, assetID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrAssetNotAvailable) && !errors.Is(err, apperrors.ErrAssetNotFound) {
			logger.Error().Err(err).Int64("assetID", assetID).Msg("Error in assign asset transaction")
		}
		return nil, err
	}

	return asset, nil
}

// MarkReadyToReturn flags an active rental as awaiting physical return
func (r *AssetRepository) MarkReadyToReturn(ctx context.Context, assetID int64) (*models.Asset, error) {
	return r.transitionStatus(ctx, assetID, models.AssetReadyToReturn, nil)
}

// ReturnAsset completes a rental. The asset moves to returned, the rental end
// date is stamped and the newest open assignment record is closed. An asset
// with no open record still transitions; the history gap is logged, not fatal.
func (r *AssetRepository) ReturnAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	var asset *models.Asset

	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		sql, args, err := r.sb.Update("assets").
			SetMap(map[string]interface{}{
				"status":          models.AssetReturned,
				"rental_end_date": now,
				"updated_at":      now,
			}).
			Where(squirrel.Eq{"id": assetID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build return asset query: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error returning asset: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrAssetNotFound
		}

		// Close the newest open assignment record, if any.
		closeSql := `UPDATE asset_assignments SET return_date = $1
			WHERE id = (
				SELECT id FROM asset_assignments
				WHERE asset_id = $2 AND return_date IS NULL
				ORDER BY assignment_date DESC, id DESC
				LIMIT 1
			)`
		closeTag, err := tx.Exec(ctx, closeSql, now, assetID)
		if err != nil {
			return fmt.Errorf("error closing assignment record: %w", err)
		}
		if closeTag.RowsAffected() == 0 {
			logger.Warn().Int64("assetID", assetID).Msg("Asset returned without an open assignment record")
		}

		asset, err = r.getAssetByIDTx(ctx, tx, assetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// ReactivateAsset puts a returned, maintained or recovered asset back into
// circulation, clearing the rental bookkeeping fields
func (r *AssetRepository) ReactivateAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	clear := map[string]interface{}{
		"assigned_to_id":    nil,
		"assigned_to_type":  nil,
		"rental_start_date": nil,
		"rental_end_date":   nil,
	}
	return r.transitionStatus(ctx, assetID, models.AssetAvailable, clear)
}

// UpdateAssetStatus sets an asset's status directly (maintenance, lost)
func (r *AssetRepository) UpdateAssetStatus(ctx context.Context, assetID int64, status models.AssetStatus) (*models.Asset, error) {
	return r.transitionStatus(ctx, assetID, status, nil)
}

func (r *AssetRepository) transitionStatus(ctx context.Context, assetID int64, status models.AssetStatus, extra map[string]interface{}) (*models.Asset, error) {
	set := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	for k, v := range extra {
		set[k] = v
	}

	sql, args, err := r.sb.Update("assets").
		SetMap(set).
		Where(squirrel.Eq{"id": assetID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build status transition query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assetID", assetID).Str("status", string(status)).Msg("Error executing status transition")
		return nil, fmt.Errorf("error transitioning asset status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrAssetNotFound
	}

	return r.GetAssetByID(ctx, assetID)
}

// BulkUpdateStatus sets the status of several assets at once, returning the
// number of rows actually changed
func (r *AssetRepository) BulkUpdateStatus(ctx context.Context, assetIDs []int64, status models.AssetStatus) (int64, error) {
	sql, args, err := r.sb.Update("assets").
		SetMap(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": assetIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("status", string(status)).Msg("Error executing bulk status update")
		return 0, fmt.Errorf("error bulk updating asset status: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListAssignments returns an asset's assignment history, newest first
func (r *AssetRepository) ListAssignments(ctx context.Context, assetID int64) ([]*models.AssetAssignment, error) {
	sql, args, err := r.sb.Select("id", "asset_id", "assigned_to_id", "assigned_to_type",
		"assignment_date", "return_date", "schedule_id", "notes", "assigned_by").
		From("asset_assignments").
		Where(squirrel.Eq{"asset_id": assetID}).
		OrderBy("assignment_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assetID", assetID).Msg("Error executing list assignments query")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.AssetAssignment{}
	for rows.Next() {
		a := &models.AssetAssignment{}
		err := rows.Scan(&a.ID, &a.AssetID, &a.AssignedToID, &a.AssignedToType,
			&a.AssignmentDate, &a.ReturnDate, &a.ScheduleID, &a.Notes, &a.AssignedBy)
		if err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}

// DeleteAsset deletes an asset and its assignment history
func (r *AssetRepository) DeleteAsset(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete asset query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assetID", id).Msg("Error executing delete asset query")
		return fmt.Errorf("error deleting asset: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) getAssetByIDTx(ctx context.Context, tx pgx.Tx, id int64) (*models.Asset, error) {
	sql, args, err := r.sb.Select(assetColumns).
		From("assets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get asset query: %w", err)
	}

	asset, err := scanAsset(tx.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("error getting asset by ID: %w", err)
	}
	return asset, nil
}
