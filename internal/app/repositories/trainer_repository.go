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
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/dberrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// TrainerRepository handles trainer database operations
type TrainerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTrainerRepository creates a new TrainerRepository
func NewTrainerRepository(db *pgxpool.Pool) *TrainerRepository {
	return &TrainerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const trainerColumns = "id, first_name, last_name, email, phone, specialization, bio, document_url, is_active, created_at, updated_at"

func scanTrainer(row pgx.Row) (*models.Trainer, error) {
	t := &models.Trainer{}
	err := row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Phone,
		&t.Specialization, &t.Bio, &t.DocumentURL, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTrainer inserts a new trainer record
func (r *TrainerRepository) CreateTrainer(ctx context.Context, trainer *models.Trainer) (int64, error) {
	sql, args, err := r.sb.Insert("trainers").
		Columns("first_name", "last_name", "email", "phone", "specialization", "bio", "is_active").
		Values(trainer.FirstName, trainer.LastName, trainer.Email, trainer.Phone,
			trainer.Specialization, trainer.Bio, trainer.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create trainer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", trainer.Email).Msg("Error executing create trainer query")
		return 0, fmt.Errorf("error creating trainer: %w", err)
	}
	return id, nil
}

// GetTrainerByID retrieves a trainer by ID
func (r *TrainerRepository) GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error) {
	sql, args, err := r.sb.Select(trainerColumns).
		From("trainers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get trainer query: %w", err)
	}

	trainer, err := scanTrainer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTrainerNotFound
		}
		logger.Error().Err(err).Int64("trainerID", id).Msg("Error scanning trainer row")
		return nil, fmt.Errorf("error getting trainer by ID: %w", err)
	}
	return trainer, nil
}

// GetAllTrainers retrieves trainers with pagination, optionally only active ones
func (r *TrainerRepository) GetAllTrainers(ctx context.Context, activeOnly bool, offset uint64, limit int) ([]*models.Trainer, int64, error) {
	base := r.sb.Select(trainerColumns).From("trainers")
	countQ := r.sb.Select("COUNT(*)").From("trainers")

	if activeOnly {
		base = base.Where(squirrel.Eq{"is_active": true})
		countQ = countQ.Where(squirrel.Eq{"is_active": true})
	}

	countSql, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count trainers query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting trainers: %w", err)
	}

	sql, args, err := base.OrderBy("last_name ASC", "first_name ASC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list trainers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list trainers query")
		return nil, 0, fmt.Errorf("error querying trainers: %w", err)
	}
	defer rows.Close()

	trainers := []*models.Trainer{}
	for rows.Next() {
		trainer, err := scanTrainer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning trainer row: %w", err)
		}
		trainers = append(trainers, trainer)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating trainer rows: %w", err)
	}

	return trainers, total, nil
}

// UpdateTrainer updates a trainer record
func (r *TrainerRepository) UpdateTrainer(ctx context.Context, trainer *models.Trainer) error {
	sql, args, err := r.sb.Update("trainers").
		SetMap(map[string]interface{}{
			"first_name":     trainer.FirstName,
			"last_name":      trainer.LastName,
			"email":          trainer.Email,
			"phone":          trainer.Phone,
			"specialization": trainer.Specialization,
			"bio":            trainer.Bio,
			"is_active":      trainer.IsActive,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": trainer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update trainer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("trainerID", trainer.ID).Msg("Error executing update trainer query")
		return fmt.Errorf("error updating trainer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTrainerNotFound
	}
	return nil
}

// SetDocumentURL stores the uploaded certification/contract document URL
func (r *TrainerRepository) SetDocumentURL(ctx context.Context, trainerID int64, url string) error {
	sql, args, err := r.sb.Update("trainers").
		SetMap(map[string]interface{}{
			"document_url": url,
			"updated_at":   time.Now(),
		}).
		Where(squirrel.Eq{"id": trainerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set document query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error setting document URL: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTrainerNotFound
	}
	return nil
}

// DeleteTrainer deletes a trainer record
func (r *TrainerRepository) DeleteTrainer(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("trainers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete trainer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("trainerID", id).Msg("Error executing delete trainer query")
		return fmt.Errorf("error deleting trainer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTrainerNotFound
	}
	return nil
}
