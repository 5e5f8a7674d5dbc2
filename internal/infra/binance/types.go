package binance

// combinedStreamMessage is the envelope of the combined-stream endpoint
// (/stream?streams=...). The payload sits under "data".
type combinedStreamMessage struct {
	Stream string       `json:"stream"`
	Data   aggTradeData `json:"data"`
}

// aggTradeData mirrors the aggTrade payload. Price and quantity arrive as
// decimal strings; M ("buyer is the market maker") marks an aggressor sell.
type aggTradeData struct {
	EventType    string `json:"e"`
	EventTime    int64  `json:"E"`
	Symbol       string `json:"s"`
	AggTradeID   int64  `json:"a"`
	Price        string `json:"p"`
	Quantity     string `json:"q"`
	FirstTradeID int64  `json:"f"`
	LastTradeID  int64  `json:"l"`
	TradeTime    int64  `json:"T"`
	MakerSell    bool   `json:"m"`
	Ignore       bool   `json:"M"`
}

// apiError is the venue's REST error envelope.
type apiError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
