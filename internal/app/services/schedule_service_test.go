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
	"github.com/emre/trainhub/internal/pkg/workdays"
)

type fakeScheduleStore struct {
	nextID    int64
	schedules map[int64]*models.CourseSchedule
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{nextID: 1, schedules: map[int64]*models.CourseSchedule{}}
}

func (f *fakeScheduleStore) CreateSchedule(_ context.Context, schedule *models.CourseSchedule) (int64, error) {
	id := f.nextID
	f.nextID++
	copied := *schedule
	copied.ID = id
	f.schedules[id] = &copied
	return id, nil
}

func (f *fakeScheduleStore) GetScheduleByID(_ context.Context, id int64) (*models.CourseSchedule, error) {
	schedule, ok := f.schedules[id]
	if !ok {
		return nil, apperrors.ErrScheduleNotFound
	}
	copied := *schedule
	return &copied, nil
}

func (f *fakeScheduleStore) GetAllSchedules(_ context.Context, _ repositories.ScheduleFilter, _ uint64, _ int) ([]*models.CourseSchedule, int64, error) {
	out := []*models.CourseSchedule{}
	for _, s := range f.schedules {
		copied := *s
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (f *fakeScheduleStore) UpdateSchedule(_ context.Context, schedule *models.CourseSchedule) error {
	stored, ok := f.schedules[schedule.ID]
	if !ok {
		return apperrors.ErrScheduleNotFound
	}
	*stored = *schedule
	return nil
}

func (f *fakeScheduleStore) UpdateScheduleStatus(_ context.Context, id int64, status models.ScheduleStatus) error {
	stored, ok := f.schedules[id]
	if !ok {
		return apperrors.ErrScheduleNotFound
	}
	stored.Status = status
	return nil
}

func (f *fakeScheduleStore) ListForStatusRefresh(_ context.Context) ([]*models.CourseSchedule, error) {
	out := []*models.CourseSchedule{}
	for _, s := range f.schedules {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeScheduleStore) DeleteSchedule(_ context.Context, id int64) error {
	if _, ok := f.schedules[id]; !ok {
		return apperrors.ErrScheduleNotFound
	}
	delete(f.schedules, id)
	return nil
}

type fakeOfferingStore struct {
	offerings map[int64]*models.CourseOffering
}

func (f *fakeOfferingStore) GetOfferingByID(_ context.Context, id int64) (*models.CourseOffering, error) {
	offering, ok := f.offerings[id]
	if !ok {
		return nil, apperrors.ErrOfferingNotFound
	}
	copied := *offering
	return &copied, nil
}

type staticHolidayProvider struct {
	holidays map[int][]workdays.Holiday
}

func (p *staticHolidayProvider) HolidaysForYear(_ context.Context, year int) ([]workdays.Holiday, error) {
	return p.holidays[year], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newScheduleFixture(holidays map[int][]workdays.Holiday, now time.Time) (ScheduleService, *fakeScheduleStore) {
	store := newFakeScheduleStore()
	offerings := &fakeOfferingStore{offerings: map[int64]*models.CourseOffering{
		10: {ID: 10, CourseID: 3, DeliveryMode: models.DeliveryInPerson, Pace: models.PaceFullTime, DurationDays: 5, Fee: 1200},
	}}
	calculator := workdays.NewCalculator(&staticHolidayProvider{holidays: holidays})

	svc := NewScheduleService(store, offerings, calculator)
	svc.(*ScheduleServiceImpl).now = func() time.Time { return now }
	return svc, store
}

func TestScheduleService_CreateComputesEndDateAndStatus(t *testing.T) {
	// Five working days from Monday 2025-06-02, no holidays: Tue through Fri
	// plus the following Monday.
	svc, _ := newScheduleFixture(nil, date(2025, time.May, 1))

	resp, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 10,
		StartDate:        "2025-06-02",
		Capacity:         20,
	})
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.June, 9), resp.Schedule.EndDate)
	assert.Equal(t, models.ScheduleUpcoming, resp.Schedule.Status)
	assert.Equal(t, int64(3), resp.Schedule.CourseID)
	assert.Equal(t, int64(10), resp.Schedule.CourseOfferingID)

	require.NotNil(t, resp.Calculation)
	assert.Equal(t, 5, resp.Calculation.WorkingDays)
	assert.Equal(t, 2, resp.Calculation.WeekendsSkipped)
	assert.False(t, resp.Calculation.HolidayDataMissing)
}

func TestScheduleService_CreateSkipsHolidays(t *testing.T) {
	holidays := map[int][]workdays.Holiday{
		2025: {{Date: "2025-06-05", LocalName: "Founders Day", Name: "Founders Day"}},
	}
	svc, _ := newScheduleFixture(holidays, date(2025, time.May, 1))

	resp, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 10,
		StartDate:        "2025-06-02",
		Capacity:         20,
	})
	require.NoError(t, err)

	// The Thursday holiday pushes the end date one working day further.
	assert.Equal(t, date(2025, time.June, 10), resp.Schedule.EndDate)
	require.Len(t, resp.Calculation.HolidaysSkipped, 1)
	assert.Equal(t, "Founders Day", resp.Calculation.HolidaysSkipped[0].Name)
}

func TestScheduleService_CreateRejectsMalformedDate(t *testing.T) {
	svc, _ := newScheduleFixture(nil, date(2025, time.May, 1))

	_, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 10,
		StartDate:        "02/06/2025",
		Capacity:         20,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestScheduleService_CreateUnknownOffering(t *testing.T) {
	svc, _ := newScheduleFixture(nil, date(2025, time.May, 1))

	_, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 99,
		StartDate:        "2025-06-02",
		Capacity:         20,
	})
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestScheduleService_UpdateRecomputesEndDate(t *testing.T) {
	svc, _ := newScheduleFixture(nil, date(2025, time.June, 4))

	created, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 10,
		StartDate:        "2025-06-02",
		Capacity:         20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleOngoing, created.Schedule.Status)

	updated, err := svc.UpdateSchedule(context.Background(), created.Schedule.ID, &dto.UpdateScheduleRequest{
		StartDate: "2025-07-07", // a Monday
		Capacity:  25,
	})
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.July, 14), updated.Schedule.EndDate)
	assert.Equal(t, models.ScheduleUpcoming, updated.Schedule.Status)
	assert.Equal(t, 25, updated.Schedule.Capacity)
}

func TestScheduleService_RefreshStatusesIsIdempotent(t *testing.T) {
	now := date(2025, time.June, 15)
	svc, store := newFakeRefreshFixture(now)

	resp, err := svc.RefreshStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Examined)
	assert.Equal(t, 2, resp.Updated)

	assert.Equal(t, models.ScheduleCompleted, store.schedules[1].Status)
	assert.Equal(t, models.ScheduleOngoing, store.schedules[2].Status)
	assert.Equal(t, models.ScheduleUpcoming, store.schedules[3].Status)

	// Second sweep on the same day changes nothing.
	resp, err = svc.RefreshStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Examined)
	assert.Equal(t, 0, resp.Updated)
}

func newFakeRefreshFixture(now time.Time) (ScheduleService, *fakeScheduleStore) {
	store := newFakeScheduleStore()
	store.schedules[1] = &models.CourseSchedule{
		ID: 1, StartDate: date(2025, time.May, 5), EndDate: date(2025, time.May, 30),
		Status: models.ScheduleOngoing, // stale, batch finished two weeks ago
	}
	store.schedules[2] = &models.CourseSchedule{
		ID: 2, StartDate: date(2025, time.June, 9), EndDate: date(2025, time.June, 27),
		Status: models.ScheduleUpcoming, // stale, batch started last week
	}
	store.schedules[3] = &models.CourseSchedule{
		ID: 3, StartDate: date(2025, time.July, 1), EndDate: date(2025, time.July, 18),
		Status: models.ScheduleUpcoming, // already correct
	}
	store.nextID = 4

	calculator := workdays.NewCalculator(&staticHolidayProvider{})
	svc := NewScheduleService(store, &fakeOfferingStore{}, calculator)
	svc.(*ScheduleServiceImpl).now = func() time.Time { return now }
	return svc, store
}

func TestScheduleService_ReadsRederiveStaleStatus(t *testing.T) {
	svc, store := newScheduleFixture(nil, date(2025, time.June, 2))

	created, err := svc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		CourseOfferingID: 10,
		StartDate:        "2025-06-09",
		Capacity:         20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleUpcoming, created.Schedule.Status)

	// The batch starts while nobody runs the bulk refresh; a plain read must
	// still see it as ongoing.
	svc.(*ScheduleServiceImpl).now = func() time.Time { return date(2025, time.June, 10) }

	got, err := svc.GetScheduleByID(context.Background(), created.Schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleOngoing, got.Status)

	// The re-derived status is written back, not just reported.
	assert.Equal(t, models.ScheduleOngoing, store.schedules[created.Schedule.ID].Status)
}

func TestScheduleService_ListRederivesStaleStatuses(t *testing.T) {
	now := date(2025, time.June, 15)
	svc, store := newFakeRefreshFixture(now)

	schedules, total, err := svc.GetAllSchedules(context.Background(), repositories.ScheduleFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	byID := map[int64]models.ScheduleStatus{}
	for _, s := range schedules {
		byID[s.ID] = s.Status
	}
	assert.Equal(t, models.ScheduleCompleted, byID[1])
	assert.Equal(t, models.ScheduleOngoing, byID[2])
	assert.Equal(t, models.ScheduleUpcoming, byID[3])

	assert.Equal(t, models.ScheduleCompleted, store.schedules[1].Status)
	assert.Equal(t, models.ScheduleOngoing, store.schedules[2].Status)
}

func TestScheduleService_PreviewEndDate(t *testing.T) {
	svc, _ := newScheduleFixture(nil, date(2025, time.May, 1))

	resp, err := svc.PreviewEndDate(context.Background(), "2025-06-06", 1)
	require.NoError(t, err)

	// Friday start, one working day: the weekend is skipped and the batch
	// ends the following Monday.
	assert.Equal(t, date(2025, time.June, 9), resp.Calculation.EndDate)
	assert.Equal(t, "2025-06-06", resp.StartDate)
	assert.Equal(t, 1, resp.WorkingDays)
}

func TestScheduleService_PreviewRejectsBadInput(t *testing.T) {
	svc, _ := newScheduleFixture(nil, date(2025, time.May, 1))

	_, err := svc.PreviewEndDate(context.Background(), "bad-date", 5)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, err = svc.PreviewEndDate(context.Background(), "2025-06-06", 0)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}
