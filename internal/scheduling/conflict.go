package scheduling

// Conflict describes why a proposed interval was rejected: the boundaries of
// the first committed interval it overlaps, so the caller can render a
// meaningful message
type Conflict struct {
	Existing Interval
}

// FindConflict проверяет предложенный интервал (запись или блокировку)
// против закоммиченных интервалов. nil означает принятие; не-nil несёт
// границы конфликтующего интервала.
//
// Ответ действителен только для переданного снимка. Два независимых
// вызывающих могут пройти эту проверку по устаревшим снимкам и оба
// попытаться закоммитить пересекающиеся интервалы, поэтому авторитетная
// проверка обязана повторяться в момент коммита по свежему снимку
// (в сериализуемой транзакции с блокировкой строк дня), а не доверять
// предварительной.
func FindConflict(proposed Interval, committed []Interval) *Conflict {
	if proposed.IsEmpty() {
		return nil
	}

	for _, interval := range committed {
		if proposed.Overlaps(interval) {
			return &Conflict{Existing: interval}
		}
	}

	return nil
}
