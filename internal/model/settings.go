package model

// Colors, Images и Texts — оформление клиента, для ядра это
// непрозрачные данные которые просто переживают load/save

type Colors struct {
	Primary   *string
	Secondary *string
}

type Images struct {
	Cap    *string
	Header *string
	Banner *string
	Wheel  *string
	Lose   *string
}

type LocalizedTexts struct {
	Win  *string
	Lose *string
}

type Texts struct {
	Am LocalizedTexts
	En LocalizedTexts
}

// Settings вся конфигурация обеих игр. Хранится и читается целиком,
// единственная долговременная копия состояния остатков
type Settings struct {
	ShufflePrizes             []Prize
	SpinPrizes                []Prize
	ShuffleWinningProbability float64
	SpinWinningProbability    float64
	LoseLabel                 string
	Colors                    Colors
	Images                    Images
	Texts                     Texts
}

// Clone копия настроек с собственными слайсами призов. Остатки мутируются
// по месту, поэтому общий экземпляр (например дефолты) наружу не отдается
func (s *Settings) Clone() *Settings {
	out := *s
	out.ShufflePrizes = append([]Prize(nil), s.ShufflePrizes...)
	out.SpinPrizes = append([]Prize(nil), s.SpinPrizes...)
	return &out
}

// Normalize приводит конфигурацию к инвариантам ядра: вероятности в [0,1],
// остатки не ниже нуля, у каждого сегмента колеса есть явная разметка.
// Старые конфигурации без kind размечаются по историческому набору
// проигрышных позиций
func (s *Settings) Normalize() {
	s.ShuffleWinningProbability = clampProbability(s.ShuffleWinningProbability)
	s.SpinWinningProbability = clampProbability(s.SpinWinningProbability)

	if s.LoseLabel == "" {
		s.LoseLabel = DefaultLoseLabel
	}

	for i := range s.ShufflePrizes {
		if s.ShufflePrizes[i].Amount < 0 {
			s.ShufflePrizes[i].Amount = 0
		}
		// в игре с крышками проигрышных сегментов нет
		s.ShufflePrizes[i].Kind = SegmentPrize
	}

	for i := range s.SpinPrizes {
		if s.SpinPrizes[i].Amount < 0 {
			s.SpinPrizes[i].Amount = 0
		}
		if s.SpinPrizes[i].Kind == "" {
			if IsLegacyLoseID(s.SpinPrizes[i].ID) {
				s.SpinPrizes[i].Kind = SegmentLose
			} else {
				s.SpinPrizes[i].Kind = SegmentPrize
			}
		}
	}
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

const (
	DefaultWinningProbability = 0.5
	DefaultLoseLabel          = "Try Again"

	defaultPrimaryColor   = "#D60007"
	defaultSecondaryColor = "#FFF9EC"
	defaultWinText        = "YOU WIN"
	defaultLoseText       = "YOU LOSE"
)

// Унаследованный набор проигрышных позиций колеса. Используется только
// при нормализации старых конфигураций без явной разметки сегментов
var legacyLoseIDs = map[string]struct{}{
	"2": {}, "4": {}, "6": {}, "8": {},
}

// IsLegacyLoseID входит ли id в исторический набор проигрышных сегментов
func IsLegacyLoseID(id string) bool {
	_, ok := legacyLoseIDs[id]
	return ok
}

// DefaultSettings встроенная конфигурация на случай отсутствия или
// нечитаемости сохраненных настроек. Селекторы с ней работают как с обычной
func DefaultSettings() *Settings {
	primary := defaultPrimaryColor
	secondary := defaultSecondaryColor
	win := defaultWinText
	lose := defaultLoseText

	s := &Settings{
		ShufflePrizes:             defaultPrizes(SegmentPrize),
		SpinPrizes:                defaultPrizes(""),
		ShuffleWinningProbability: DefaultWinningProbability,
		SpinWinningProbability:    DefaultWinningProbability,
		LoseLabel:                 DefaultLoseLabel,
		Colors:                    Colors{Primary: &primary, Secondary: &secondary},
		Texts: Texts{
			Am: LocalizedTexts{Win: &win, Lose: &lose},
			En: LocalizedTexts{Win: &win, Lose: &lose},
		},
	}
	s.Normalize()
	return s
}

// defaultPrizes восемь позиций как в исходной кампании. Для колеса kind
// оставляется пустым и размечается нормализацией по legacyLoseIDs
func defaultPrizes(kind SegmentKind) []Prize {
	amounts := []int{100, 200, 300, 100, 100, 100, 100, 100}
	prizes := make([]Prize, 0, len(amounts))
	for i, amount := range amounts {
		id := string(rune('1' + i))
		prizes = append(prizes, Prize{
			ID:       id,
			Name:     "Prize " + id,
			Amount:   amount,
			IsActive: i < 2,
			Kind:     kind,
		})
	}
	return prizes
}
