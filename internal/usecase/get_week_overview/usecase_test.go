package get_week_overview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
)

type fakeAppointmentRepo struct {
	counts map[string]int
}

func (f *fakeAppointmentRepo) CountByProviderBetweenDates(_ context.Context, _ int64, _, _ time.Time) (map[string]int, error) {
	return f.counts, nil
}

type fakeScheduleRepo struct {
	schedule *domain.ProviderSchedule
}

func (f *fakeScheduleRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderSchedule, error) {
	return f.schedule, nil
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
		WorkTimeTo:          "18:00",
		SlotDurationMinutes: 30,
	}
}

func newTestUseCase(counts map[string]int) *UseCase {
	return NewUseCase(
		&fakeAppointmentRepo{counts: counts},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakeStaffClient{provider: &staffservice.Provider{ID: 7, FullName: "Иванова А.П.", IsActive: true}},
		nopLogger{},
	)
}

func TestExecute_MondayAlignedWeek(t *testing.T) {
	uc := newTestUseCase(map[string]int{
		"2025-06-04": 3,
		"2025-06-06": 1,
	})

	// 2025-06-04 — среда; неделя 2..8 июня
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), resp.WeekStart)
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), resp.WeekEnd)
	assert.Equal(t, "2 – 8 June 2025", resp.Label)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)

	// Счётчики приёмов разложены по своим дням
	assert.Equal(t, 0, resp.Days[0].AppointmentCount)
	assert.Equal(t, 3, resp.Days[2].AppointmentCount)
	assert.Equal(t, 1, resp.Days[4].AppointmentCount)

	// Monday..Friday рабочие, выходные нет
	for i := 0; i < 5; i++ {
		assert.True(t, resp.Days[i].IsWorkingDay, "day %d", i)
	}
	assert.False(t, resp.Days[5].IsWorkingDay)
	assert.False(t, resp.Days[6].IsWorkingDay)
}

func TestExecute_AnyDateSameWeek(t *testing.T) {
	uc := newTestUseCase(nil)

	// Понедельник и воскресенье одной недели дают одинаковое окно
	monday, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	sunday, err := uc.Execute(context.Background(), &Request{
		ProviderID: 7,
		Date:       time.Date(2025, 6, 8, 23, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, monday.WeekStart, sunday.WeekStart)
	assert.Equal(t, monday.WeekEnd, sunday.WeekEnd)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(nil)
	uc.staffClient = &fakeStaffClient{err: staffservice.ErrProviderNotFound}

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 404,
		Date:       time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: -1, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
