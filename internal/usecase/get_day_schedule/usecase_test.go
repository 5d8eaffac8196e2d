package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (f *fakeBlockRepo) GetByProviderAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, f.err
}

type fakeScheduleRepo struct {
	schedule *domain.ProviderSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderSchedule, error) {
	return f.schedule, f.err
}

type fakeStaffClient struct {
	provider *staffservice.Provider
	err      error
}

func (f *fakeStaffClient) GetProvider(_ context.Context, _ int64) (*staffservice.Provider, error) {
	return f.provider, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule() *domain.ProviderSchedule {
	return &domain.ProviderSchedule{
		ID:                  1,
		ProviderID:          7,
		WorkDaysFrom:        domain.Monday,
		WorkDaysTo:          domain.Friday,
		WorkTimeFrom:        "09:00",
		WorkTimeTo:          "12:00",
		SlotDurationMinutes: 30,
		AppointmentFee:      1500,
	}
}

func testProvider() *staffservice.Provider {
	return &staffservice.Provider{ID: 7, FullName: "Иванова А.П.", IsActive: true}
}

// 2025-06-04 — среда
var wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func newTestUseCase(ar *fakeAppointmentRepo, br *fakeBlockRepo, sr *fakeScheduleRepo, sc *fakeStaffClient) *UseCase {
	return NewUseCase(ar, br, sr, sc, nopLogger{})
}

func TestExecute_FreeDay(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{provider: testProvider()},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: wednesday})
	require.NoError(t, err)

	assert.True(t, resp.IsWorkingDay)
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[5].StartTime)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.Equal(t, 30, s.DurationMinutes)
	}
}

func TestExecute_BookedSlotUnavailable(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				ID:              10,
				ProviderID:      7,
				AppointmentDate: wednesday,
				StartTime:       "09:30",
				DurationMinutes: 30,
				Status:          domain.StatusScheduled,
			},
		}},
		&fakeBlockRepo{},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{provider: testProvider()},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: wednesday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_WholeDayBlock(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{blocks: []*domain.Block{
			{ID: 1, ProviderID: 7, BlockDate: wednesday, TimeFrom: domain.WholeDayFrom, TimeTo: domain.WholeDayTo},
		}},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{provider: testProvider()},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: wednesday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestExecute_DayOff(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{provider: testProvider()},
	)

	// 2025-06-08 — воскресенье, вне диапазона Monday..Friday
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: sunday})
	require.NoError(t, err)

	assert.False(t, resp.IsWorkingDay)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DegenerateSchedule(t *testing.T) {
	schedule := testSchedule()
	schedule.WorkTimeFrom = "18:00"
	schedule.WorkTimeTo = "09:00"

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{},
		&fakeScheduleRepo{schedule: schedule},
		&fakeStaffClient{provider: testProvider()},
	)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: wednesday})
	require.NoError(t, err)

	assert.True(t, resp.IsWorkingDay)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{err: staffservice.ErrProviderNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 404, Date: wednesday})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeBlockRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&fakeStaffClient{provider: testProvider()},
	)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: wednesday})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{}, &fakeScheduleRepo{}, &fakeStaffClient{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0, Date: wednesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
