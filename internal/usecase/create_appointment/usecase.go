package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	barberRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/barber"
	clientRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/client"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
)

// UseCase use case de creación de citas. Aplica las validaciones en orden
// fijo (la primera regla violada gana, para que el mensaje de error sea
// determinista): servicio, barbero activo, descanso, horario, choque.
type UseCase struct {
	appointments AppointmentRepository
	services     ServiceRepository
	barbers      BarberRepository
	clients      ClientRepository
	hours        domain.BusinessHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea el use case de creación de citas
func NewUseCase(
	appointments AppointmentRepository,
	services ServiceRepository,
	barbers BarberRepository,
	clients ClientRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		services:     services,
		barbers:      barbers,
		clients:      clients,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute crea una cita RESERVADA tras validar todas las reglas de agenda
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%d, service=%d, start=%s",
		req.BarberID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 1. El servicio debe existir y estar visible para agendar
	svc, err := uc.services.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 2. El barbero debe existir y estar activo
	barber, err := uc.barbers.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberInactive
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateAppointment: barber id=%d is inactive", req.BarberID)
		return nil, ErrBarberInactive
	}

	// 3. El barbero no debe descansar ese día
	off, err := uc.barbers.IsOff(ctx, req.BarberID, req.StartAt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check day off for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to check day off: %v", ErrInternal, err)
	}
	if off {
		uc.logger.Warn("CreateAppointment: barber id=%d is off on %s",
			req.BarberID, req.StartAt.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w el %s", ErrBarberDayOff, req.StartAt.Format(domain.DisplayDateFormat))
	}

	// 4. La cita derivada de la duración del servicio debe caber en el horario
	end := domain.AddMinutes(req.StartAt, svc.DurationMin)
	if !domain.IsWithinSchedule(uc.hours, req.StartAt, end) {
		uc.logger.Warn("CreateAppointment: slot %s - %s outside business hours",
			req.StartAt.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, ErrOutsideBusinessHours
	}
	if !end.After(req.StartAt) {
		uc.logger.Warn("CreateAppointment: degenerate interval for service id=%d", req.ServiceID)
		return nil, ErrInvalidInterval
	}

	// 5. Sin choques con citas RESERVED o SERVICED del mismo barbero
	conflict, err := uc.appointments.HasOverlap(ctx, req.BarberID, req.StartAt, end, nil)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
		return nil, fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
	}
	if conflict {
		uc.logger.Warn("CreateAppointment: schedule conflict for barber id=%d at %s",
			req.BarberID, req.StartAt.Format(time.RFC3339))
		return nil, ErrScheduleConflict
	}

	// Cliente: se resuelve o se crea solo si llegó un nombre. Este paso no
	// es transaccional con la inserción de la cita; una interrupción puede
	// dejar un cliente huérfano y se acepta en el contexto monousuario.
	clientID, err := uc.resolveClient(ctx, req)
	if err != nil {
		return nil, err
	}

	ap := &domain.Appointment{
		BarberID:         req.BarberID,
		PrimaryServiceID: &req.ServiceID,
		ClientID:         clientID,
		StartAt:          req.StartAt,
		EndAt:            end,
		Status:           domain.StatusReserved,
		Notes:            req.Notes,
		CreatedAt:        uc.timeProvider.Now().UTC(),
	}

	created, err := uc.appointments.Create(ctx, ap)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: appointment id=%d created for barber id=%d", created.ID, created.BarberID)

	return &Response{
		ID:               created.ID,
		BarberID:         created.BarberID,
		PrimaryServiceID: created.PrimaryServiceID,
		ClientID:         created.ClientID,
		StartAt:          created.StartAt,
		EndAt:            created.EndAt,
		Status:           string(created.Status),
		Notes:            created.Notes,
		CreatedAt:        created.CreatedAt,
	}, nil
}

// resolveClient busca el cliente por (nombre, teléfono) y lo crea si no
// existe. La deduplicación es por coincidencia exacta del par; un teléfono
// nulo solo coincide con otro nulo.
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*int64, error) {
	if req.ClientName == nil || strings.TrimSpace(*req.ClientName) == "" {
		return nil, nil
	}
	name := strings.TrimSpace(*req.ClientName)

	existing, err := uc.clients.FindByNameAndPhone(ctx, name, req.ClientPhone)
	if err == nil {
		uc.logger.Info("CreateAppointment: reusing client id=%d", existing.ID)
		return &existing.ID, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateAppointment: failed to look up client: %v", err)
		return nil, fmt.Errorf("%w: failed to look up client: %v", ErrInternal, err)
	}

	id, err := uc.clients.Create(ctx, name, req.ClientPhone)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: client id=%d created", id)
	return &id, nil
}

func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}
	return nil
}
