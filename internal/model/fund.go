package model

import "time"

// Risk levels a fund may be labelled with. An unlabelled fund has an empty level.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Fund represents a fund from the database
type Fund struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	NameAr            string `json:"nameAr"`
	Description       string `json:"description"`
	DescriptionAr     string `json:"descriptionAr"`
	Isin              string `json:"isin"`
	Symbol            string `json:"symbol"`
	Currency          string `json:"currency"`
	RiskLevel         string `json:"riskLevel,omitempty"`
	IsShariaCompliant bool   `json:"isShariaCompliant"`
}

// NavObservation is the net asset value of a fund on a single day.
type NavObservation struct {
	Date time.Time `json:"date"`
	NAV  float64   `json:"nav"`
}

// DividendObservation is a single distribution paid by a fund.
// Several distributions may share a date.
type DividendObservation struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// FundSeries bundles the historical data the calculator needs for one fund.
// Both slices are sorted ascending by date and must not be modified once
// the series has been published to readers.
type FundSeries struct {
	Fund      Fund
	Navs      []NavObservation
	Dividends []DividendObservation
}
