package create_block

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeBlockRepo struct {
	blocks  []*domain.Block
	created *domain.Block
}

func (f *fakeBlockRepo) Create(_ context.Context, b *domain.Block) (*domain.Block, error) {
	stored := *b
	stored.ID = 50
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakeBlockRepo) GetByProviderAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, nil
}

type fakeStaffClient struct {
	provider *staffservice.Provider
	err      error
}

func (f *fakeStaffClient) GetProvider(_ context.Context, _ int64) (*staffservice.Provider, error) {
	return f.provider, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var blockDate = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func newTestUseCase(ar *fakeAppointmentRepo, br *fakeBlockRepo) *UseCase {
	return NewUseCase(
		ar,
		br,
		&fakeStaffClient{provider: &staffservice.Provider{ID: 7, FullName: "Иванова А.П.", IsActive: true}},
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_TimedBlock(t *testing.T) {
	repo := &fakeBlockRepo{}
	uc := newTestUseCase(&fakeAppointmentRepo{}, repo)

	reason := "Обед"
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("13:00")),
		TimeTo:     ptr.Ptr(types.TimeString("14:00")),
		Reason:     &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50), resp.ID)
	assert.EqualValues(t, "13:00", resp.TimeFrom)
	assert.EqualValues(t, "14:00", resp.TimeTo)
	assert.False(t, resp.WholeDay)
	require.NotNil(t, repo.created)
	assert.Equal(t, &reason, repo.created.Reason)
}

func TestExecute_WholeDayBlock(t *testing.T) {
	// Без времён блокируется весь день сентинелом [00:00, 23:59]
	repo := &fakeBlockRepo{}
	uc := newTestUseCase(&fakeAppointmentRepo{}, repo)

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: blockDate})
	require.NoError(t, err)

	assert.True(t, resp.WholeDay)
	assert.Equal(t, domain.WholeDayFrom, resp.TimeFrom)
	assert.Equal(t, domain.WholeDayTo, resp.TimeTo)
}

func TestExecute_ConflictWithAppointment(t *testing.T) {
	// Приём [10:30, 11:00) внутри предлагаемой блокировки [10:00, 11:00)
	uc := newTestUseCase(&fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:              5,
			ProviderID:      7,
			AppointmentDate: blockDate,
			StartTime:       "10:30",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("10:00")),
		TimeTo:     ptr.Ptr(types.TimeString("11:00")),
	})
	require.ErrorIs(t, err, ErrIntervalConflict)
	// Границы конфликтующего интервала попадают в сообщение
	assert.Contains(t, err.Error(), "10:30")
	assert.Contains(t, err.Error(), "11:00")
}

func TestExecute_ConflictWithBlock(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{blocks: []*domain.Block{
		{ID: 1, ProviderID: 7, BlockDate: blockDate, TimeFrom: "12:00", TimeTo: "15:00"},
	}})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("14:00")),
		TimeTo:     ptr.Ptr(types.TimeString("16:00")),
	})
	assert.ErrorIs(t, err, ErrIntervalConflict)
}

func TestExecute_WholeDayConflictsWithAnyAppointment(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			ID:              5,
			ProviderID:      7,
			AppointmentDate: blockDate,
			StartTime:       "17:00",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 7, Date: blockDate})
	assert.ErrorIs(t, err, ErrIntervalConflict)
}

func TestExecute_AbuttingBlockAccepted(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{blocks: []*domain.Block{
		{ID: 1, ProviderID: 7, BlockDate: blockDate, TimeFrom: "09:00", TimeTo: "10:00"},
	}})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("10:00")),
		TimeTo:     ptr.Ptr(types.TimeString("11:00")),
	})
	assert.NoError(t, err)
}

func TestExecute_InvalidInterval(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("14:00")),
		TimeTo:     ptr.Ptr(types.TimeString("13:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_OneBoundaryMissing(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       blockDate,
		TimeFrom:   ptr.Ptr(types.TimeString("14:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBlockRepo{})
	uc.staffClient = &fakeStaffClient{err: staffservice.ErrProviderNotFound}

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 404, Date: blockDate})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
