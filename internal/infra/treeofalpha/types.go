package treeofalpha

// The upstream feed emits several message shapes and drifts between them.
// All of them reduce to: display text, a unique identifier, and a list of
// symbol suggestions tagged with an exchange.

// symbolRef ties a suggested symbol to the venue it trades on.
type symbolRef struct {
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`
}

// suggestion maps a detected coin to its venue symbols.
type suggestion struct {
	Found   []string    `json:"found"`
	Coin    string      `json:"coin"`
	Symbols []symbolRef `json:"symbols"`
}

// newsMessage is the primary article shape.
type newsMessage struct {
	Title       string       `json:"title"`
	Source      string       `json:"source"`
	URL         string       `json:"url"`
	Time        int64        `json:"time"`
	ID          string       `json:"_id"`
	Suggestions []suggestion `json:"suggestions"`
}

// newsVariationMessage is the alternate article shape the feed sometimes
// sends; same payload under slightly different framing.
type newsVariationMessage struct {
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Link        string         `json:"link"`
	Time        int64          `json:"time"`
	ID          string         `json:"_id"`
	Info        map[string]any `json:"info"`
	Suggestions []suggestion   `json:"suggestions"`
}

// tweetMessage is the social shape; the display text lives in the body.
type tweetMessage struct {
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	Icon        string       `json:"icon"`
	Image       string       `json:"image"`
	Type        string       `json:"type"`
	Link        string       `json:"link"`
	Time        int64        `json:"time"`
	ID          string       `json:"_id"`
	Suggestions []suggestion `json:"suggestions"`
}
