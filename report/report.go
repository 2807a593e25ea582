// Package report renders Monte Carlo valuation results for display.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/montecarlo"
)

// Report is a valuation report for one Monte Carlo run.
type Report struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Runs        int          `json:"runs"`
	Scenario    string       `json:"scenario,omitempty"`
	Tranches    []TrancheRow `json:"tranches"`
}

// TrancheRow is one tranche's averaged present value, listed in seniority
// order.
type TrancheRow struct {
	Name      string  `json:"name"`
	AveragePV float64 `json:"average_pv"`
}

// Build assembles a report from a Monte Carlo result. Tranche rows follow
// the result's seniority order.
func Build(res montecarlo.Result, sc montecarlo.Scenario) Report {
	rows := make([]TrancheRow, 0, len(res.Order))
	for _, name := range res.Order {
		rows = append(rows, TrancheRow{Name: name, AveragePV: res.AvgPV[name]})
	}
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Runs:        res.Runs,
		Scenario:    sc.Name,
		Tranches:    rows,
	}
}

// Text renders the report as a currency-formatted table, one tranche per
// line in seniority order (e.g. "Senior: $48,123,456").
func (r Report) Text() string {
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Average tranche PV over %d paths", r.Runs))
	if r.Scenario != "" {
		sb.WriteString(" (" + r.Scenario + ")")
	}
	sb.WriteString("\n")
	for _, row := range r.Tranches {
		sb.WriteString(p.Sprintf("%s: $%.0f\n", row.Name, row.AveragePV))
	}
	return sb.String()
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("Report.JSON: %w", err)
	}
	return b, nil
}

// PoolLine formats a pool summary for display alongside the report.
func PoolLine(s collateral.PoolSummary) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Pool: %d loans, $%.0f balance, WAC %.2f%%, WAM %.0f months",
		s.AliveCount, s.TotalBalance, s.WAC*100, s.WAM)
}
