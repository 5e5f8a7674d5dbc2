package treeofalpha

import (
	"encoding/json"
	"errors"
)

// futuresExchange tags the suggestions that are tradable on the venue the
// engine executes against.
const futuresExchange = "binance-futures"

// Mention is the decoded result of one feed message: the display text, the
// feed's unique identifier, and every suggested symbol tradable on the
// futures venue.
type Mention struct {
	Title   string
	NewsID  string
	Symbols []string
}

var errUnknownShape = errors.New("message matches no known shape")

// decoders are tried in fixed priority order; first success wins. The order
// matters: the tweet shape is the loosest and must come last.
var decoders = []func([]byte) (Mention, bool){
	decodeNews,
	decodeNewsVariation,
	decodeTweet,
}

// DecodeMention reduces a raw feed message to a Mention. A message matching
// no shape is a dropped-message event for the caller, not a fatal error.
func DecodeMention(msg []byte) (Mention, error) {
	for _, decode := range decoders {
		if m, ok := decode(msg); ok {
			return m, nil
		}
	}
	return Mention{}, errUnknownShape
}

func decodeNews(msg []byte) (Mention, bool) {
	var parsed newsMessage
	if err := json.Unmarshal(msg, &parsed); err != nil {
		return Mention{}, false
	}
	if parsed.Title == "" || parsed.Source == "" {
		return Mention{}, false
	}
	return Mention{
		Title:   parsed.Title,
		NewsID:  parsed.ID,
		Symbols: futuresSymbols(parsed.Suggestions),
	}, true
}

func decodeNewsVariation(msg []byte) (Mention, bool) {
	var parsed newsVariationMessage
	if err := json.Unmarshal(msg, &parsed); err != nil {
		return Mention{}, false
	}
	if parsed.Title == "" {
		return Mention{}, false
	}
	return Mention{
		Title:   parsed.Title,
		NewsID:  parsed.ID,
		Symbols: futuresSymbols(parsed.Suggestions),
	}, true
}

func decodeTweet(msg []byte) (Mention, bool) {
	var parsed tweetMessage
	if err := json.Unmarshal(msg, &parsed); err != nil {
		return Mention{}, false
	}
	if parsed.Body == "" {
		return Mention{}, false
	}
	// Tweets carry the display text in the body.
	return Mention{
		Title:   parsed.Body,
		NewsID:  parsed.ID,
		Symbols: futuresSymbols(parsed.Suggestions),
	}, true
}

// futuresSymbols extracts the symbols tagged for the futures venue,
// de-duplicated in order of first appearance.
func futuresSymbols(suggestions []suggestion) []string {
	var symbols []string
	seen := make(map[string]struct{})
	for _, s := range suggestions {
		for _, ref := range s.Symbols {
			if ref.Exchange != futuresExchange || ref.Symbol == "" {
				continue
			}
			if _, dup := seen[ref.Symbol]; dup {
				continue
			}
			seen[ref.Symbol] = struct{}{}
			symbols = append(symbols, ref.Symbol)
		}
	}
	return symbols
}
