package domain

type Direction string

const (
	ExactInput  Direction = "EXACT_INPUT"
	ExactOutput Direction = "EXACT_OUTPUT"
)

func (d Direction) Valid() bool {
	return d == ExactInput || d == ExactOutput
}

type SwapQuoteRequest struct {
	TokenIn   string
	TokenOut  string
	Amount    string
	Direction Direction
}

type SwapRequest struct {
	TokenIn  string
	TokenOut string
	Amount   string
	IP       string
}

// ProviderSwapOrder is the body submitted to the external provider. Amount is in minor units.
type ProviderSwapOrder struct {
	UserID               string `json:"userId"`
	SourceAccountID      string `json:"sourceAccountId"`
	DestinationAccountID string `json:"destinationAccountId"`
	Amount               string `json:"amount"`
	IP                   string `json:"ip"`
}

type OrderLeg struct {
	Currency    string `json:"currency,omitempty"`
	Amount      string `json:"amount,omitempty"`
	AmountFloat string `json:"amountFloat,omitempty"`
}

type SwapOrder struct {
	ID     string   `json:"id,omitempty"`
	Debit  OrderLeg `json:"debit"`
	Credit OrderLeg `json:"credit"`
}
