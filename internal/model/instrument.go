package model

// Instrument is one tradable ETF (or cash-equivalent) in the configured basket.
type Instrument struct {
	Symbol string // internal name, e.g. "NIFTYBEES"
	Ticker string // data-source ticker, e.g. "NIFTYBEES.NS"
	Bucket string // allocation bucket, e.g. "India"
}
