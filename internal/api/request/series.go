package request

// NavRecord is one NAV observation in a data file.
type NavRecord struct {
	Date string  `json:"date" yaml:"date"`
	Nav  float64 `json:"nav" yaml:"nav"`
}

// DividendRecord is one dividend in a data file.
type DividendRecord struct {
	Date   string  `json:"date" yaml:"date"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// SeedFund describes the fund that imported series belong to.
type SeedFund struct {
	Name     string
	Isin     string
	Symbol   string
	Currency string

	NameAr            string
	Description       string
	DescriptionAr     string
	RiskLevel         string
	IsShariaCompliant bool
}
