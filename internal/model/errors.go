package model

import "errors"

var (
	// ErrNoPrizesLeft доступных призов нет — игра остановлена до пополнения
	ErrNoPrizesLeft = errors.New("no prizes left")
	// ErrRoundNotStarted вторая крышка без первой
	ErrRoundNotStarted = errors.New("round not started")
	// ErrRoundInProgress первая крышка уже вскрыта в этом раунде
	ErrRoundInProgress = errors.New("round already in progress")
	// ErrSameSlot вторая крышка должна отличаться от первой
	ErrSameSlot = errors.New("second pick must differ from the first")
	// ErrNoLoseSegments на колесе не размечено ни одного проигрышного сегмента
	ErrNoLoseSegments = errors.New("wheel has no lose segments configured")
	// ErrSettingsNotFound сохраненных настроек нет
	ErrSettingsNotFound = errors.New("settings not found")
)
