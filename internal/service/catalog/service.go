package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
	barberRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/barber"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
)

// Service servicio de catálogo: barberos, servicios y días libres
type Service struct {
	barbers      BarberRepository
	services     ServiceRepository
	appointments AppointmentRepository
	logger       Logger
}

// NewService crea el servicio de catálogo
func NewService(
	barbers BarberRepository,
	services ServiceRepository,
	appointments AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		barbers:      barbers,
		services:     services,
		appointments: appointments,
		logger:       logger,
	}
}

// ListBarbers devuelve los barberos, opcionalmente incluyendo inactivos
func (s *Service) ListBarbers(ctx context.Context, includeInactive bool) ([]*domain.Barber, error) {
	barbers, err := s.barbers.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListBarbers: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: failed to list barbers: %v", ErrInternal, err)
	}
	return barbers, nil
}

// CreateBarber registra un barbero nuevo, activo por defecto
func (s *Service) CreateBarber(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: el nombre es obligatorio", ErrInvalidInput)
	}

	id, err := s.barbers.Create(ctx, name, true)
	if err != nil {
		s.logger.Error("CreateBarber: failed to create barber: %v", err)
		return 0, fmt.Errorf("%w: failed to create barber: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBarber: barber id=%d name=%s created", id, name)
	return id, nil
}

// UpdateBarber renombra o activa/desactiva un barbero. Desactivar no toca
// sus citas existentes, solo bloquea agendamientos nuevos.
func (s *Service) UpdateBarber(ctx context.Context, id int64, name string, active bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", ErrInvalidInput)
	}

	if _, err := s.barbers.GetByID(ctx, id); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return ErrBarberNotFound
		}
		s.logger.Error("UpdateBarber: failed to get barber id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if err := s.barbers.Update(ctx, id, name, active); err != nil {
		s.logger.Error("UpdateBarber: failed to update barber id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to update barber: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBarber: barber id=%d updated, active=%t", id, active)
	return nil
}

// ListServices devuelve el catálogo de servicios
func (s *Service) ListServices(ctx context.Context, includeInactive bool) ([]*domain.Service, error) {
	services, err := s.services.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListServices: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	return services, nil
}

// CreateService registra un servicio nuevo en el catálogo
func (s *Service) CreateService(ctx context.Context, svc *domain.Service) (int64, error) {
	if err := s.validateService(svc); err != nil {
		return 0, err
	}

	id, err := s.services.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: failed to create service: %v", err)
		return 0, fmt.Errorf("%w: failed to create service: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%d name=%s created", id, svc.Name)
	return id, nil
}

// UpdateService edita un servicio del catálogo. Los cobros ya registrados no
// se ven afectados: sus líneas conservan el snapshot del momento del cobro.
func (s *Service) UpdateService(ctx context.Context, svc *domain.Service) error {
	if err := s.validateService(svc); err != nil {
		return err
	}

	if _, err := s.services.GetByID(ctx, svc.ID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("UpdateService: failed to get service id=%d: %v", svc.ID, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := s.services.Update(ctx, svc); err != nil {
		s.logger.Error("UpdateService: failed to update service id=%d: %v", svc.ID, err)
		return fmt.Errorf("%w: failed to update service: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%d updated", svc.ID)
	return nil
}

// ListDaysOff devuelve los días libres registrados de un barbero
func (s *Service) ListDaysOff(ctx context.Context, barberID int64) ([]*domain.BarberDayOff, error) {
	if _, err := s.barbers.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("ListDaysOff: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	daysOff, err := s.barbers.ListDaysOff(ctx, barberID)
	if err != nil {
		s.logger.Error("ListDaysOff: failed to list days off for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to list days off: %v", ErrInternal, err)
	}
	return daysOff, nil
}

// AddDayOff marca un día libre para un barbero. Se rechaza si el barbero ya
// tiene citas agendadas para ese día; primero hay que moverlas o cancelarlas.
func (s *Service) AddDayOff(ctx context.Context, barberID int64, date time.Time, note *string) error {
	s.logger.Info("AddDayOff: barber=%d, date=%s", barberID, date.Format(domain.DateFormat))

	if _, err := s.barbers.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return ErrBarberNotFound
		}
		s.logger.Error("AddDayOff: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	count, err := s.appointments.CountForBarberOnDate(ctx, barberID, date)
	if err != nil {
		s.logger.Error("AddDayOff: failed to count appointments for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("AddDayOff: barber id=%d has %d appointments on %s",
			barberID, count, date.Format(domain.DateFormat))
		return fmt.Errorf("%w (%d citas el %s)", ErrDayOffHasAppointments,
			count, date.Format(domain.DisplayDateFormat))
	}

	if err := s.barbers.AddDayOff(ctx, barberID, date, note); err != nil {
		s.logger.Error("AddDayOff: failed to add day off for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to add day off: %v", ErrInternal, err)
	}

	s.logger.Info("AddDayOff: barber id=%d off on %s", barberID, date.Format(domain.DateFormat))
	return nil
}

// RemoveDayOff quita un día libre de un barbero. Quitar un día que no estaba
// marcado no es un error.
func (s *Service) RemoveDayOff(ctx context.Context, barberID int64, date time.Time) error {
	if err := s.barbers.RemoveDayOff(ctx, barberID, date); err != nil {
		s.logger.Error("RemoveDayOff: failed to remove day off for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to remove day off: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveDayOff: barber id=%d available again on %s", barberID, date.Format(domain.DateFormat))
	return nil
}

// validateService valida los campos de un servicio. La partición entre
// ganancia del barbero y liquidación del local es informativa: no se exige
// que sume el precio, los reportes usan cada componente por separado.
func (s *Service) validateService(svc *domain.Service) error {
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", ErrInvalidInput)
	}
	if svc.Price < 0 || svc.BarberEarning < 0 || svc.ShopLiquidation < 0 {
		return fmt.Errorf("%w: los montos no pueden ser negativos", ErrInvalidInput)
	}
	if svc.DurationMin <= 0 {
		return fmt.Errorf("%w: la duración debe ser positiva", ErrInvalidInput)
	}
	return nil
}
