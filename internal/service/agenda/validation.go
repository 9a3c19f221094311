package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// validateSlot aplica las reglas de agenda compartidas por edición y
// reprogramación, en orden fijo: descanso del barbero, horario de atención,
// intervalo válido y choque con otras citas. La primera regla violada gana.
func (s *Service) validateSlot(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) error {
	off, err := s.barbers.IsOff(ctx, barberID, start)
	if err != nil {
		s.logger.Error("validateSlot: failed to check day off for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: validateSlot - check day off: %v", ErrInternal, err)
	}
	if off {
		s.logger.Warn("validateSlot: barber id=%d is off on %s", barberID, start.Format(domain.DateFormat))
		return fmt.Errorf("%w el %s", ErrBarberDayOff, start.Format(domain.DisplayDateFormat))
	}

	if !domain.IsWithinSchedule(s.hours, start, end) {
		s.logger.Warn("validateSlot: slot %s - %s outside business hours",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
		return ErrOutsideBusinessHours
	}

	if !end.After(start) {
		s.logger.Warn("validateSlot: degenerate interval %s - %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
		return ErrInvalidInterval
	}

	conflict, err := s.appointments.HasOverlap(ctx, barberID, start, end, excludeID)
	if err != nil {
		s.logger.Error("validateSlot: failed to check overlap for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: validateSlot - check overlap: %v", ErrInternal, err)
	}
	if conflict {
		s.logger.Warn("validateSlot: schedule conflict for barber id=%d at %s",
			barberID, start.Format(time.RFC3339))
		return ErrScheduleConflict
	}

	return nil
}
