package model

// SegmentKind роль позиции каталога на колесе фортуны:
// призовой сегмент или статически проигрышный
type SegmentKind string

const (
	SegmentPrize SegmentKind = "prize"
	SegmentLose  SegmentKind = "lose"
)

// Prize приз кампании с остатком и флагом активности.
// Image — непрозрачная ссылка на картинку, ядром не интерпретируется
type Prize struct {
	ID       string
	Name     string
	Amount   int
	IsActive bool
	Image    *string
	Kind     SegmentKind
}

// Label отображаемый ключ приза: имя, либо id если имени нет
func (p Prize) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Available приз доступен для нового розыгрыша
func (p Prize) Available() bool {
	return p.IsActive && p.Amount > 0
}

// IsLoseSegment позиция размечена как проигрышная
func (p Prize) IsLoseSegment() bool {
	return p.Kind == SegmentLose
}
