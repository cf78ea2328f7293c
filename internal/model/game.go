package model

// RoundPhase фаза раунда игры с крышками
type RoundPhase string

const (
	RoundIdle        RoundPhase = "idle"
	RoundFirstPicked RoundPhase = "first_picked"
)

// Round эфемерное состояние раунда "две крышки" одного устройства.
// Через раунд проносится id приза, а не отображаемая строка —
// сравнение исходов идет по идентификаторам
type Round struct {
	FirstSlot    int
	FirstPrizeID string
	FirstLabel   string
}

// FirstPickResult итог вскрытия первой крышки
type FirstPickResult struct {
	PrizeID string
	Label   string
}

// ShuffleOutcome итог завершенного раунда. PrizeID заполнен только при
// совпадении; SecondPrizeID пуст когда вторая этикетка — общая заглушка
type ShuffleOutcome struct {
	Matched       bool
	PrizeID       string
	FirstLabel    string
	SecondLabel   string
	SecondPrizeID string
}

// ShuffleState снимок каталога для сессии игры с крышками
type ShuffleState struct {
	Prizes   []Prize
	Depleted bool
	Phase    RoundPhase
}

// SpinOutcome итог одного вращения. Degree — угол остановки для клиентской
// анимации (сегменты на картинке колеса идут в обратном порядке)
type SpinOutcome struct {
	Won          bool
	Prize        *Prize
	SegmentIndex int
	Degree       float64
}

// SpinState снимок каталога колеса
type SpinState struct {
	Prizes   []Prize
	Depleted bool
}

// PlayStats накопленная статистика сыгранных раундов одной игры
type PlayStats struct {
	TotalRounds   int
	TotalWins     int
	WinRate       float64
	WindowWinRate float64
	WindowSize    int
}
