package entity

import (
	"cmp"
	"slices"
	"time"
)

// Report: результаты расчёта каталога, отсортированные по эффективности.
// Для пакетов варианты на одну и на десять покупок идут отдельными строками.
type Report struct {
	GeneratedAt time.Time
	Rows        []Efficiency
}

func NewReport(results map[string]EfficiencyPair, generatedAt time.Time) Report {
	rows := make([]Efficiency, 0, len(results)*2)

	for _, pair := range results {
		rows = append(rows, pair.Single)

		if pair.Package10 != nil {
			rows = append(rows, *pair.Package10)
		}
	}

	slices.SortFunc(rows, func(a, b Efficiency) int {
		if c := cmp.Compare(b.Efficiency, a.Efficiency); c != 0 {
			return c
		}
		return cmp.Compare(a.ItemName, b.ItemName)
	})

	return Report{
		GeneratedAt: generatedAt,
		Rows:        rows,
	}
}

// Top возвращает не больше n лучших строк; при n <= 0 все строки.
func (r Report) Top(n int) []Efficiency {
	if n <= 0 || n >= len(r.Rows) {
		return r.Rows
	}
	return r.Rows[:n]
}
