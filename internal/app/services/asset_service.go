package services

import (
	"context"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

// AssetStore is the persistence surface the asset service needs
type AssetStore interface {
	CreateAsset(ctx context.Context, asset *models.Asset) (int64, error)
	GetAssetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetAllAssets(ctx context.Context, filter repositories.AssetFilter, offset uint64, limit int) ([]*models.Asset, int64, error)
	UpdateAsset(ctx context.Context, asset *models.Asset) error
	DeleteAsset(ctx context.Context, id int64) error
	AssignAsset(ctx context.Context, assetID int64, assignment *models.AssetAssignment) (*models.Asset, error)
	MarkReadyToReturn(ctx context.Context, assetID int64) (*models.Asset, error)
	ReturnAsset(ctx context.Context, assetID int64) (*models.Asset, error)
	ReactivateAsset(ctx context.Context, assetID int64) (*models.Asset, error)
	UpdateAssetStatus(ctx context.Context, assetID int64, status models.AssetStatus) (*models.Asset, error)
	BulkUpdateStatus(ctx context.Context, assetIDs []int64, status models.AssetStatus) (int64, error)
	ListAssignments(ctx context.Context, assetID int64) ([]*models.AssetAssignment, error)
}

// AssetService defines asset rental lifecycle operations
type AssetService interface {
	CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*models.Asset, error)
	GetAssetByID(ctx context.Context, id int64) (*models.Asset, error)
	GetAllAssets(ctx context.Context, filter repositories.AssetFilter, page, size int) ([]*models.Asset, int64, error)
	UpdateAsset(ctx context.Context, id int64, req *dto.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error

	Assign(ctx context.Context, assetID int64, req *dto.AssignAssetRequest) (*models.Asset, error)
	MarkReadyToReturn(ctx context.Context, assetID int64) (*models.Asset, error)
	Return(ctx context.Context, assetID int64) (*models.Asset, error)
	Reactivate(ctx context.Context, assetID int64) (*models.Asset, error)
	MarkMaintenance(ctx context.Context, assetID int64) (*models.Asset, error)
	MarkLost(ctx context.Context, assetID int64) (*models.Asset, error)
	BulkSetStatus(ctx context.Context, req *dto.BulkStatusRequest) (int64, error)
	GetAssignmentHistory(ctx context.Context, assetID int64) ([]*models.AssetAssignment, error)
}

// AssetServiceImpl implements AssetService
type AssetServiceImpl struct {
	store AssetStore
}

// NewAssetService creates a new AssetService
func NewAssetService(store AssetStore) AssetService {
	return &AssetServiceImpl{store: store}
}

// CreateAsset registers a new equipment unit in available state
func (s *AssetServiceImpl) CreateAsset(ctx context.Context, req *dto.CreateAssetRequest) (*models.Asset, error) {
	asset := &models.Asset{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Category:     req.Category,
		Status:       models.AssetAvailable,
	}

	id, err := s.store.CreateAsset(ctx, asset)
	if err != nil {
		return nil, err
	}
	return s.store.GetAssetByID(ctx, id)
}

// GetAssetByID retrieves an asset
func (s *AssetServiceImpl) GetAssetByID(ctx context.Context, id int64) (*models.Asset, error) {
	return s.store.GetAssetByID(ctx, id)
}

// GetAllAssets lists assets matching the filter
func (s *AssetServiceImpl) GetAllAssets(ctx context.Context, filter repositories.AssetFilter, page, size int) ([]*models.Asset, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.store.GetAllAssets(ctx, filter, offset, limit)
}

// UpdateAsset updates descriptive fields; the lifecycle state is only reached
// through the transition operations
func (s *AssetServiceImpl) UpdateAsset(ctx context.Context, id int64, req *dto.UpdateAssetRequest) (*models.Asset, error) {
	asset, err := s.store.GetAssetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.Name = req.Name
	asset.SerialNumber = req.SerialNumber
	asset.Category = req.Category

	if err := s.store.UpdateAsset(ctx, asset); err != nil {
		return nil, err
	}
	return s.store.GetAssetByID(ctx, id)
}

// DeleteAsset removes an asset and its history
func (s *AssetServiceImpl) DeleteAsset(ctx context.Context, id int64) error {
	asset, err := s.store.GetAssetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset.Status == models.AssetRentalInProgress || asset.Status == models.AssetReadyToReturn {
		return apperrors.NewConflictError("asset is rented out and cannot be deleted")
	}
	return s.store.DeleteAsset(ctx, id)
}

// Assign rents the asset out. The store performs the available-to-rented
// transition atomically, so a concurrent second assign of the same unit fails
// with an unavailability error instead of double-booking.
func (s *AssetServiceImpl) Assign(ctx context.Context, assetID int64, req *dto.AssignAssetRequest) (*models.Asset, error) {
	assigneeType := models.AssigneeType(req.AssigneeType)
	if !models.ValidAssigneeType(assigneeType) {
		return nil, apperrors.ErrInvalidAssigneeType
	}

	assignment := &models.AssetAssignment{
		AssignedToID:   req.AssigneeID,
		AssignedToType: assigneeType,
		ScheduleID:     req.ScheduleID,
		Notes:          req.Notes,
		AssignedBy:     req.AssignedBy,
	}

	return s.store.AssignAsset(ctx, assetID, assignment)
}

// MarkReadyToReturn flags a rental as awaiting physical return. The flag is
// informational and deliberately not guarded on the current state, so staff
// can pre-mark a unit they know is coming back.
func (s *AssetServiceImpl) MarkReadyToReturn(ctx context.Context, assetID int64) (*models.Asset, error) {
	return s.store.MarkReadyToReturn(ctx, assetID)
}

// Return completes a rental, closing the open assignment record
func (s *AssetServiceImpl) Return(ctx context.Context, assetID int64) (*models.Asset, error) {
	return s.store.ReturnAsset(ctx, assetID)
}

// Reactivate puts an asset back into circulation. An asset still out on a
// rental must be returned first.
func (s *AssetServiceImpl) Reactivate(ctx context.Context, assetID int64) (*models.Asset, error) {
	asset, err := s.store.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.Status == models.AssetRentalInProgress || asset.Status == models.AssetReadyToReturn {
		return nil, apperrors.NewConflictError("asset is currently " + string(asset.Status) + " and must be returned before reactivation")
	}

	return s.store.ReactivateAsset(ctx, assetID)
}

// MarkMaintenance takes an asset out of circulation for repair. Allowed from
// any state; a unit can break while rented out.
func (s *AssetServiceImpl) MarkMaintenance(ctx context.Context, assetID int64) (*models.Asset, error) {
	return s.store.UpdateAssetStatus(ctx, assetID, models.AssetMaintenance)
}

// MarkLost records an asset as lost. Allowed from any state.
func (s *AssetServiceImpl) MarkLost(ctx context.Context, assetID int64) (*models.Asset, error) {
	return s.store.UpdateAssetStatus(ctx, assetID, models.AssetLost)
}

// BulkSetStatus sets the status of several assets at once
func (s *AssetServiceImpl) BulkSetStatus(ctx context.Context, req *dto.BulkStatusRequest) (int64, error) {
	status := models.AssetStatus(req.Status)
	if !models.ValidAssetStatus(status) {
		return 0, apperrors.ErrInvalidAssetStatus
	}
	return s.store.BulkUpdateStatus(ctx, req.AssetIDs, status)
}

// GetAssignmentHistory returns an asset's assignment records, newest first
func (s *AssetServiceImpl) GetAssignmentHistory(ctx context.Context, assetID int64) ([]*models.AssetAssignment, error) {
	if _, err := s.store.GetAssetByID(ctx, assetID); err != nil {
		return nil, err
	}
	return s.store.ListAssignments(ctx, assetID)
}
