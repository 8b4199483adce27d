package model

// Config is the persisted settings document. Anchor fields (BaseDate,
// BaseAmount) seed the savings projection; nil means "no explicit anchor".
type Config struct {
	IsFirstLaunch  bool     `json:"isFirstLaunch"`
	Currency       string   `json:"currency"`
	TitheEnabled   bool     `json:"tithe_enabled"`
	DailyDefault   float64  `json:"daily_default"`
	InitialBalance float64  `json:"initial_balance"`
	BaseDate       *string  `json:"base_date"`
	BaseAmount     *float64 `json:"base_amount"`
	Period         *string  `json:"period,omitempty"`
}

// DefaultConfig returns the settings used before any setup has run.
func DefaultConfig() Config {
	return Config{
		IsFirstLaunch:  true,
		Currency:       "RUB",
		TitheEnabled:   true,
		DailyDefault:   1000.0,
		InitialBalance: 0.0,
	}
}

// Goal is a (date, amount) pair: a known balance at a known date.
type Goal struct {
	Date   string  `json:"date"` // ISO date, YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// State is the persisted data document: the append-only transaction log
// plus recorded goals. Transactions are kept in insertion order.
type State struct {
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
}

// DefaultState returns an empty state document.
func DefaultState() State {
	return State{
		Transactions: []Transaction{},
		Goals:        []Goal{},
	}
}
