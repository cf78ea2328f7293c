package catalog

import (
	"promo_backend/internal/model"
)

// Операции над каталогом призов. Все функции чистые и синхронные,
// каталог передается владельцем (сервисом) явно

// Available призы доступные для нового розыгрыша: isActive и остаток > 0
func Available(prizes []model.Prize) []model.Prize {
	var out []model.Prize
	for _, p := range prizes {
		if p.Available() {
			out = append(out, p)
		}
	}
	return out
}

// AvailableWinning доступные призы без проигрышных сегментов. Для колеса:
// выигрыш никогда не выпадает на позицию размеченную как lose
func AvailableWinning(prizes []model.Prize) []model.Prize {
	var out []model.Prize
	for _, p := range prizes {
		if p.Available() && !p.IsLoseSegment() {
			out = append(out, p)
		}
	}
	return out
}

// LoseSegments все проигрышные сегменты, независимо от активности и
// остатка — проигрыш не расходует запас
func LoseSegments(prizes []model.Prize) []model.Prize {
	var out []model.Prize
	for _, p := range prizes {
		if p.IsLoseSegment() {
			out = append(out, p)
		}
	}
	return out
}

// Decrement списывает единицу остатка названного приза, не опускаясь ниже
// нуля. Неизвестный id — no-op
func Decrement(prizes []model.Prize, id string) []model.Prize {
	for i := range prizes {
		if prizes[i].ID == id {
			if prizes[i].Amount > 0 {
				prizes[i].Amount--
			}
			break
		}
	}
	return prizes
}

// IsDepleted доступных призов не осталось — играть больше нечем
func IsDepleted(prizes []model.Prize) bool {
	return len(Available(prizes)) == 0
}

// IndexOf позиция приза в каталоге, -1 если нет. Порядок каталога
// значим для колеса: индекс определяет сегмент
func IndexOf(prizes []model.Prize, id string) int {
	for i := range prizes {
		if prizes[i].ID == id {
			return i
		}
	}
	return -1
}
