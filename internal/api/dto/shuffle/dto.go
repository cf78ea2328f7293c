package shuffle

type PickRequest struct {
	Slot int `json:"slot"` // Индекс вскрываемой крышки (0-8)
}

type FirstPickResponse struct {
	PrizeID string `json:"prize_id"` // ID приза под первой крышкой
	Label   string `json:"label"`    // Отображаемая этикетка
}

type SecondPickResponse struct {
	Matched     bool   `json:"matched"`            // Совпали ли две крышки
	PrizeID     string `json:"prize_id,omitempty"` // ID выигранного приза (только при совпадении)
	FirstLabel  string `json:"first_label"`        // Этикетка первой крышки
	SecondLabel string `json:"second_label"`       // Этикетка второй крышки
}

type StateResponse struct {
	Prizes       []Prize `json:"prizes"`         // Снимок каталога
	NoPrizesLeft bool    `json:"no_prizes_left"` // Каталог истощен, игра остановлена
	Phase        string  `json:"phase"`          // idle / first_picked
}

type Prize struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Amount   int     `json:"amount"`
	IsActive bool    `json:"is_active"`
	Image    *string `json:"image,omitempty"`
}

type StatsResponse struct {
	TotalRounds   int     `json:"total_rounds"`
	TotalWins     int     `json:"total_wins"`
	WinRate       float64 `json:"win_rate"`
	WindowWinRate float64 `json:"window_win_rate"`
	WindowSize    int     `json:"window_size"`
}
