package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/reservations/models"
)

// Service сервис для работы с бронями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает карточку брони по ID - путь клика по блоку на сетке
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}
