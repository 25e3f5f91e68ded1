package domain

// HousekeepingState models the optimistic housekeeping value of a room as a
// small tagged union: Confirmed(status) or PendingUpdate(previous, attempted).
// While an update is in flight the attempted value is displayed; when the
// external call settles the state resolves to Confirmed(attempted) or
// reverts to Confirmed(previous).
type HousekeepingState struct {
	pending   bool
	status    HousekeepingStatus // подтверждённое значение
	attempted HousekeepingStatus // значение в полёте (валидно при pending)
}

// ConfirmedHousekeeping создает состояние Confirmed(status)
func ConfirmedHousekeeping(status HousekeepingStatus) HousekeepingState {
	return HousekeepingState{status: status}
}

// BeginUpdate переводит состояние в PendingUpdate(previous, attempted)
// Повторный вызов поверх незавершённого обновления перезаписывает attempted,
// previous сохраняется (last write wins)
func (s HousekeepingState) BeginUpdate(attempted HousekeepingStatus) HousekeepingState {
	previous := s.status
	return HousekeepingState{pending: true, status: previous, attempted: attempted}
}

// Resolve фиксирует успешное обновление: Confirmed(attempted)
func (s HousekeepingState) Resolve() HousekeepingState {
	if !s.pending {
		return s
	}
	return HousekeepingState{status: s.attempted}
}

// Revert откатывает отклонённое обновление: Confirmed(previous)
func (s HousekeepingState) Revert() HousekeepingState {
	if !s.pending {
		return s
	}
	return HousekeepingState{status: s.status}
}

// IsPending returns true while an update is in flight
func (s HousekeepingState) IsPending() bool {
	return s.pending
}

// Display returns the value to show: the attempted one while pending,
// otherwise the confirmed one
func (s HousekeepingState) Display() HousekeepingStatus {
	if s.pending {
		return s.attempted
	}
	return s.status
}

// Confirmed returns the last confirmed value regardless of pending state
func (s HousekeepingState) Confirmed() HousekeepingStatus {
	return s.status
}
