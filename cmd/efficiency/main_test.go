package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain/entity"
)

func TestPrintReport(t *testing.T) {
	rq := require.New(t)

	report := entity.NewReport(map[string]entity.EfficiencyPair{
		"Box": {Single: entity.Efficiency{
			ItemName: "Box", CashPrice: 3900, TradeableValue: 1000, TotalValue: 1000, Efficiency: 0.2564,
		}},
		"Pack": {
			Single: entity.Efficiency{ItemName: "Pack (1 purchase)", CashPrice: 15000, TotalValue: 6000, Efficiency: 0.4},
			Package10: &entity.Efficiency{
				ItemName: "Pack (10 purchases)", CashPrice: 150000, TotalValue: 60300, Efficiency: 0.402,
				SelectedBonusItems: []string{"B"},
			},
		},
	}, time.Now())

	var buf bytes.Buffer

	rq.NoError(printReport(&buf, report, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	rq.Len(lines, 3)
	rq.Contains(lines[0], "Gold/cash")
	rq.Contains(lines[1], "Pack (10 purchases)")
	rq.Contains(lines[1], "0.4020")
	rq.Contains(lines[1], "[B]")
	rq.Contains(lines[2], "Pack (1 purchase)")
	rq.NotContains(buf.String(), "Box")
}
