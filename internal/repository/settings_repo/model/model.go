package model

// json-представление блоба настроек в колонке data.
// Имена полей повторяют формат клиента (camelCase)

type Settings struct {
	ShufflePrizes             []Prize `json:"shufflePrizes"`
	SpinPrizes                []Prize `json:"spinPrizes"`
	ShuffleWinningProbability float64 `json:"shuffleWinningProbability"`
	SpinWinningProbability    float64 `json:"spinWinningProbability"`
	LoseLabel                 string  `json:"loseLabel,omitempty"`
	Colors                    Colors  `json:"colors"`
	Images                    Images  `json:"images"`
	Texts                     Texts   `json:"texts"`
}

type Prize struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Amount   int     `json:"amount"`
	IsActive bool    `json:"isActive"`
	Image    *string `json:"image,omitempty"`
	Kind     string  `json:"kind,omitempty"`
}

type Colors struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
}

type Images struct {
	Cap    *string `json:"cap"`
	Header *string `json:"header"`
	Banner *string `json:"banner"`
	Wheel  *string `json:"wheel"`
	Lose   *string `json:"lose"`
}

type LocalizedTexts struct {
	Win  *string `json:"win"`
	Lose *string `json:"lose"`
}

type Texts struct {
	Am LocalizedTexts `json:"am"`
	En LocalizedTexts `json:"en"`
}
