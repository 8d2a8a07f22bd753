package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
)

// fakeAssetStore mirrors the repository's transition semantics in memory,
// including the status guard on assignment.
type fakeAssetStore struct {
	nextID      int64
	assets      map[int64]*models.Asset
	assignments []*models.AssetAssignment
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{nextID: 1, assets: map[int64]*models.Asset{}}
}

func (f *fakeAssetStore) CreateAsset(_ context.Context, asset *models.Asset) (int64, error) {
	id := f.nextID
	f.nextID++
	copied := *asset
	copied.ID = id
	f.assets[id] = &copied
	return id, nil
}

func (f *fakeAssetStore) GetAssetByID(_ context.Context, id int64) (*models.Asset, error) {
	asset, ok := f.assets[id]
	if !ok {
		return nil, apperrors.ErrAssetNotFound
	}
	copied := *asset
	return &copied, nil
}

func (f *fakeAssetStore) GetAllAssets(_ context.Context, _ repositories.AssetFilter, _ uint64, _ int) ([]*models.Asset, int64, error) {
	out := []*models.Asset{}
	for _, a := range f.assets {
		copied := *a
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAssetStore) UpdateAsset(_ context.Context, asset *models.Asset) error {
	stored, ok := f.assets[asset.ID]
	if !ok {
		return apperrors.ErrAssetNotFound
	}
	stored.Name = asset.Name
	stored.SerialNumber = asset.SerialNumber
	stored.Category = asset.Category
	return nil
}

func (f *fakeAssetStore) DeleteAsset(_ context.Context, id int64) error {
	if _, ok := f.assets[id]; !ok {
		return apperrors.ErrAssetNotFound
	}
	delete(f.assets, id)
	return nil
}

func (f *fakeAssetStore) AssignAsset(ctx context.Context, assetID int64, assignment *models.AssetAssignment) (*models.Asset, error) {
	asset, ok := f.assets[assetID]
	if !ok {
		return nil, apperrors.ErrAssetNotFound
	}
	if asset.Status != models.AssetAvailable {
		return nil, apperrors.NewAssetNotAvailableError(string(asset.Status))
	}
	now := time.Now()
	asset.Status = models.AssetRentalInProgress
	asset.AssignedToID = &assignment.AssignedToID
	asset.AssignedToType = &assignment.AssignedToType
	asset.RentalStartDate = &now
	asset.RentalEndDate = nil

	record := *assignment
	record.AssetID = assetID
	record.AssignmentDate = now
	f.assignments = append(f.assignments, &record)

	return f.GetAssetByID(ctx, assetID)
}

func (f *fakeAssetStore) MarkReadyToReturn(ctx context.Context, assetID int64) (*models.Asset, error) {
	return f.setStatus(ctx, assetID, models.AssetReadyToReturn)
}

func (f *fakeAssetStore) ReturnAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	asset, ok := f.assets[assetID]
	if !ok {
		return nil, apperrors.ErrAssetNotFound
	}
	now := time.Now()
	asset.Status = models.AssetReturned
	asset.RentalEndDate = &now
	for i := len(f.assignments) - 1; i >= 0; i-- {
		if f.assignments[i].AssetID == assetID && f.assignments[i].ReturnDate == nil {
			f.assignments[i].ReturnDate = &now
			break
		}
	}
	return f.GetAssetByID(ctx, assetID)
}

func (f *fakeAssetStore) ReactivateAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	asset, ok := f.assets[assetID]
	if !ok {
		return nil, apperrors.ErrAssetNotFound
	}
	asset.Status = models.AssetAvailable
	asset.AssignedToID = nil
	asset.AssignedToType = nil
	asset.RentalStartDate = nil
	asset.RentalEndDate = nil
	return f.GetAssetByID(ctx, assetID)
}

func (f *fakeAssetStore) UpdateAssetStatus(ctx context.Context, assetID int64, status models.AssetStatus) (*models.Asset, error) {
	return f.setStatus(ctx, assetID, status)
}

func (f *fakeAssetStore) setStatus(ctx context.Context, assetID int64, status models.AssetStatus) (*models.Asset, error) {
	asset, ok := f.assets[assetID]
	if !ok {
		return nil, apperrors.ErrAssetNotFound
	}
	asset.Status = status
	return f.GetAssetByID(ctx, assetID)
}

func (f *fakeAssetStore) BulkUpdateStatus(_ context.Context, assetIDs []int64, status models.AssetStatus) (int64, error) {
	var changed int64
	for _, id := range assetIDs {
		if asset, ok := f.assets[id]; ok {
			asset.Status = status
			changed++
		}
	}
	return changed, nil
}

func (f *fakeAssetStore) ListAssignments(_ context.Context, assetID int64) ([]*models.AssetAssignment, error) {
	out := []*models.AssetAssignment{}
	for i := len(f.assignments) - 1; i >= 0; i-- {
		if f.assignments[i].AssetID == assetID {
			copied := *f.assignments[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newAssetFixture(t *testing.T) (AssetService, *fakeAssetStore, int64) {
	t.Helper()
	store := newFakeAssetStore()
	svc := NewAssetService(store)

	asset, err := svc.CreateAsset(context.Background(), &dto.CreateAssetRequest{Name: "MacBook Pro 14"})
	require.NoError(t, err)
	return svc, store, asset.ID
}

func TestAssetService_CreateStartsAvailable(t *testing.T) {
	svc, _, id := newAssetFixture(t)

	asset, err := svc.GetAssetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, asset.Status)
	assert.Nil(t, asset.AssignedToID)
}

func TestAssetService_AssignAvailableAsset(t *testing.T) {
	svc, store, id := newAssetFixture(t)

	asset, err := svc.Assign(context.Background(), id, &dto.AssignAssetRequest{
		AssigneeID:   42,
		AssigneeType: "student",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AssetRentalInProgress, asset.Status)
	require.NotNil(t, asset.AssignedToID)
	assert.Equal(t, int64(42), *asset.AssignedToID)
	require.NotNil(t, asset.AssignedToType)
	assert.Equal(t, models.AssigneeStudent, *asset.AssignedToType)
	assert.NotNil(t, asset.RentalStartDate)

	history, err := svc.GetAssignmentHistory(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].IsOpen())
	_ = store
}

func TestAssetService_AssignRejectsNonAvailableAsset(t *testing.T) {
	svc, _, id := newAssetFixture(t)

	_, err := svc.Assign(context.Background(), id, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "student"})
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), id, &dto.AssignAssetRequest{AssigneeID: 2, AssigneeType: "trainer"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAssetNotAvailable))
	assert.Contains(t, err.Error(), "rental_in_progress")
}

func TestAssetService_AssignRejectsUnknownAssigneeType(t *testing.T) {
	svc, _, id := newAssetFixture(t)

	_, err := svc.Assign(context.Background(), id, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "guest"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAssigneeType)
}

func TestAssetService_AssignUnknownAsset(t *testing.T) {
	svc, _, _ := newAssetFixture(t)

	_, err := svc.Assign(context.Background(), 9999, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "student"})
	assert.ErrorIs(t, err, apperrors.ErrAssetNotFound)
}

func TestAssetService_FullRentalRoundTrip(t *testing.T) {
	svc, _, id := newAssetFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, id, &dto.AssignAssetRequest{AssigneeID: 7, AssigneeType: "trainer"})
	require.NoError(t, err)

	asset, err := svc.MarkReadyToReturn(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetReadyToReturn, asset.Status)

	asset, err = svc.Return(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetReturned, asset.Status)
	assert.NotNil(t, asset.RentalEndDate)

	history, err := svc.GetAssignmentHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsOpen())

	asset, err = svc.Reactivate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, asset.Status)
	assert.Nil(t, asset.AssignedToID)
	assert.Nil(t, asset.AssignedToType)
	assert.Nil(t, asset.RentalStartDate)
	assert.Nil(t, asset.RentalEndDate)

	// Unit is rentable again
	_, err = svc.Assign(ctx, id, &dto.AssignAssetRequest{AssigneeID: 8, AssigneeType: "student"})
	assert.NoError(t, err)
}

func TestAssetService_ReactivateBlockedDuringRental(t *testing.T) {
	svc, _, id := newAssetFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, id, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "student"})
	require.NoError(t, err)

	_, err = svc.Reactivate(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	_, err = svc.MarkReadyToReturn(ctx, id)
	require.NoError(t, err)

	_, err = svc.Reactivate(ctx, id)
	assert.Error(t, err)
}

func TestAssetService_MaintenanceAndLostFromAnyState(t *testing.T) {
	svc, _, id := newAssetFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, id, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "student"})
	require.NoError(t, err)

	asset, err := svc.MarkMaintenance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetMaintenance, asset.Status)

	asset, err = svc.MarkLost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetLost, asset.Status)

	// A recovered unit goes back into circulation
	asset, err = svc.Reactivate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.AssetAvailable, asset.Status)
}

func TestAssetService_DeleteBlockedDuringRental(t *testing.T) {
	svc, _, id := newAssetFixture(t)
	ctx := context.Background()

	_, err := svc.Assign(ctx, id, &dto.AssignAssetRequest{AssigneeID: 1, AssigneeType: "student"})
	require.NoError(t, err)

	err = svc.DeleteAsset(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	_, err = svc.Return(ctx, id)
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteAsset(ctx, id))
}

func TestAssetService_BulkSetStatus(t *testing.T) {
	store := newFakeAssetStore()
	svc := NewAssetService(store)
	ctx := context.Background()

	first, err := svc.CreateAsset(ctx, &dto.CreateAssetRequest{Name: "Projector A"})
	require.NoError(t, err)
	second, err := svc.CreateAsset(ctx, &dto.CreateAssetRequest{Name: "Projector B"})
	require.NoError(t, err)

	changed, err := svc.BulkSetStatus(ctx, &dto.BulkStatusRequest{
		AssetIDs: []int64{first.ID, second.ID, 9999},
		Status:   "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	asset, err := svc.GetAssetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AssetMaintenance, asset.Status)
}

func TestAssetService_BulkSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, id := newAssetFixture(t)

	_, err := svc.BulkSetStatus(context.Background(), &dto.BulkStatusRequest{
		AssetIDs: []int64{id},
		Status:   "broken",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAssetStatus)
}
