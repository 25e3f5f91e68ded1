package commit_selection

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("commit_selection: room not found")

	// ErrSelectionConflict возвращается, когда диапазон пересёкся с бронью
	// при повторной проверке занятости
	ErrSelectionConflict = errors.New("commit_selection: selection overlaps an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_selection: internal error")
)
