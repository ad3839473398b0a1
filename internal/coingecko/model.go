package coingecko

// SimplePriceResponse mirrors the CoinGecko /simple/price payload: a map
// keyed by coin id, each entry mapping "<currency>" to the current price and
// "<currency>_24h_change" to the 24h percentage change.
type SimplePriceResponse map[string]map[string]float64
