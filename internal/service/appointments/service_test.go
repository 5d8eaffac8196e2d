package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	appointmentRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/appointment"
	"github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	"github.com/edmarkin/DCM-ScheduleService/internal/service/appointments/models"
	"github.com/edmarkin/DCM-ScheduleService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) GetByPatientID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if f.appointment == nil {
		return []*domain.Appointment{}, nil
	}
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.appointment == nil {
		return []*domain.Appointment{}, nil
	}
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
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

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              10,
		ProviderID:      7,
		PatientID:       42,
		AppointmentDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		PaymentStatus:   domain.PaymentUnpaid,
		PatientName:     "Петров П.П.",
		PatientPhone:    ptr.Ptr("+79990000000"),
	}
}

func activeStaff() *fakeStaffClient {
	return &fakeStaffClient{provider: &staffservice.Provider{ID: 1, FullName: "Иванова А.П.", IsActive: true}}
}

func notStaff() *fakeStaffClient {
	return &fakeStaffClient{err: staffservice.ErrProviderNotFound}
}

func TestGetByID_PatientSeesOwnAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, notStaff(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, int64(42), resp.PatientID)
	require.NotNil(t, resp.PatientPhone)
	assert.Equal(t, "+79990000000", *resp.PatientPhone)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	// Чужой пациент, не сотрудник - доступ запрещён
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, notStaff(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_StaffSeesAnyAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, activeStaff(), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, activeStaff(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_ByPatient(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, notStaff(), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
		UserID:             42,
		CancellationReason: "Не смогу прийти",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByPatient, repo.cancelledStatus)
	assert.Equal(t, "Не смогу прийти", repo.cancelledReason)
}

func TestCancel_ByStaff(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, activeStaff(), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{
		UserID:             1,
		CancellationReason: "Врач заболел",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByClinic, repo.cancelledStatus)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, notStaff(), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_CompletedAppointment(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCompleted
	repo := &fakeAppointmentRepo{appointment: appt}
	svc := NewService(repo, activeStaff(), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_Completed(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, activeStaff(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 1,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_CancellationRejected(t *testing.T) {
	// Отмена идёт отдельным маршрутом с причиной
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, activeStaff(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 1,
		Status: "cancelled_by_clinic",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotStaff(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, notStaff(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 42,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment()}
	svc := NewService(repo, activeStaff(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 1,
		Status: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
