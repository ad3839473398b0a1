// Package symbols defines the fixed set of supported cryptocurrency tickers
// and their mapping to the market-data source's canonical coin identifiers.
// Adding a symbol means extending the Supported map.
package symbols

import "sort"

// Supported maps each supported ticker to its CoinGecko coin id.
var Supported = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"SOL":   "solana",
	"XRP":   "ripple",
	"BNB":   "binancecoin",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"MATIC": "matic-network",
	"DOT":   "polkadot",
	"LTC":   "litecoin",
	"AVAX":  "avalanche-2",
	"TRX":   "tron",
	"LINK":  "chainlink",
	"XLM":   "stellar",
	"XMR":   "monero",
	"ZEC":   "zcash",
	"BCH":   "bitcoin-cash",
}

// Reverse map and sorted views, built once at startup so response parsing
// never scans the whole table per entry.
var (
	tickerByCoinID map[string]string
	sortedTickers  []string
	sortedCoinIDs  []string
)

func init() {
	tickerByCoinID = make(map[string]string, len(Supported))
	sortedTickers = make([]string, 0, len(Supported))
	for ticker, coinID := range Supported {
		tickerByCoinID[coinID] = ticker
		sortedTickers = append(sortedTickers, ticker)
	}
	sort.Strings(sortedTickers)

	sortedCoinIDs = make([]string, len(sortedTickers))
	for i, ticker := range sortedTickers {
		sortedCoinIDs[i] = Supported[ticker]
	}
}

// IsSupported reports whether the given uppercase ticker is supported.
func IsSupported(ticker string) bool {
	_, ok := Supported[ticker]
	return ok
}

// CoinID returns the canonical coin id for a ticker.
func CoinID(ticker string) (string, bool) {
	id, ok := Supported[ticker]
	return id, ok
}

// Ticker returns the ticker for a canonical coin id.
func Ticker(coinID string) (string, bool) {
	ticker, ok := tickerByCoinID[coinID]
	return ticker, ok
}

// Tickers returns all supported tickers in alphabetical order.
// The returned slice is shared; callers must not modify it.
func Tickers() []string {
	return sortedTickers
}

// CoinIDs returns the coin ids of all supported tickers, ordered by ticker.
// The stable order keeps batch request URLs deterministic.
func CoinIDs() []string {
	return sortedCoinIDs
}
