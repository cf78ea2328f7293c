package spin

type SpinResponse struct {
	Won          bool    `json:"won"`           // Выигрышный ли сегмент выпал
	Prize        *Prize  `json:"prize"`         // Выбранная позиция каталога
	SegmentIndex int     `json:"segment_index"` // Позиция в каталоге
	Degree       float64 `json:"degree"`        // Угол остановки для анимации
}

type StateResponse struct {
	Prizes       []Prize `json:"prizes"`         // Снимок каталога колеса
	NoPrizesLeft bool    `json:"no_prizes_left"` // Выигрышных сегментов с остатком нет
}

type Prize struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Amount   int     `json:"amount"`
	IsActive bool    `json:"is_active"`
	Image    *string `json:"image,omitempty"`
	Kind     string  `json:"kind"` // prize / lose
}

type StatsResponse struct {
	TotalRounds   int     `json:"total_rounds"`
	TotalWins     int     `json:"total_wins"`
	WinRate       float64 `json:"win_rate"`
	WindowWinRate float64 `json:"window_win_rate"`
	WindowSize    int     `json:"window_size"`
}
