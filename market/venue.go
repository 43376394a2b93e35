package market

// Venue identifies a trading venue. The numbering is stable: venues with
// derivative listings come first (Apex..Zebpay), spot-only venues after
// (Alpaca..Zonda). VenueCount is a sentinel used only to size arrays.
type Venue uint8

const (
	Apex Venue = iota
	Arkham
	Ascendex
	Backpack
	Bigone
	Binance
	Binancecoinm
	Binanceusdm
	Bingx
	Bitfinex
	Bitflyer
	Bitget
	Bitmart
	Bitmex
	Bitrue
	Blofin
	Bullish
	Bybit
	Coinbase
	Coinbaseadvanced
	Coinbaseinternational
	Coincatch
	Coinex
	Cryptocom
	Deepcoin
	Defx
	Delta
	Deribit
	Derive
	Digifinex
	Dydx
	Fmfwio
	Gate
	Gateio
	Gemini
	Hashkey
	Hibachi
	Hitbtc
	Htx
	Huobi
	Hyperliquid
	Krakenfutures
	Kucoinfutures
	Lbank
	Mexc
	Modetrade
	Myokx
	Okx
	Okxus
	Onetrading
	Paradex
	Phemex
	Poloniex
	Toobit
	Whitebit
	Woofipro
	Xt
	Zebpay

	Alpaca
	Bequant
	Binanceus
	Bit2c
	Bitbank
	Bitbns
	Bithumb
	Bitopro
	Bitso
	Bitstamp
	Bitteam
	Bittrade
	Bitvavo
	Blockchaincom
	Btcalpha
	Btcbox
	Btcmarkets
	Btcturk
	Cex
	Coinbaseexchange
	Coincheck
	Coinmate
	Coinmetro
	Coinone
	Coinsph
	Coinspot
	Cryptomus
	Exmo
	Foxbit
	Hollaex
	Independentreserve
	Indodax
	Kraken
	Kucoin
	Latoken
	Luno
	Mercado
	Ndax
	Novadax
	Oceanex
	Oxfun
	P2b
	Paymium
	Probit
	Timex
	Tokocrypto
	Upbit
	Wavesexchange
	Woo
	Yobit
	Zaif
	Zonda

	VenueCount
)

// DerivativeVenueCount is the number of venues with derivative listings;
// they occupy the low end of the enum.
const DerivativeVenueCount = int(Zebpay) + 1

var venueNames = [VenueCount]string{
	"apex", "arkham", "ascendex", "backpack", "bigone",
	"binance", "binancecoinm", "binanceusdm", "bingx", "bitfinex",
	"bitflyer", "bitget", "bitmart", "bitmex", "bitrue",
	"blofin", "bullish", "bybit", "coinbase", "coinbaseadvanced",
	"coinbaseinternational", "coincatch", "coinex", "cryptocom", "deepcoin",
	"defx", "delta", "deribit", "derive", "digifinex",
	"dydx", "fmfwio", "gate", "gateio", "gemini",
	"hashkey", "hibachi", "hitbtc", "htx", "huobi",
	"hyperliquid", "krakenfutures", "kucoinfutures", "lbank", "mexc",
	"modetrade", "myokx", "okx", "okxus", "onetrading",
	"paradex", "phemex", "poloniex", "toobit", "whitebit",
	"woofipro", "xt", "zebpay",
	"alpaca", "bequant", "binanceus", "bit2c", "bitbank",
	"bitbns", "bithumb", "bitopro", "bitso", "bitstamp",
	"bitteam", "bittrade", "bitvavo", "blockchaincom", "btcalpha",
	"btcbox", "btcmarkets", "btcturk", "cex", "coinbaseexchange",
	"coincheck", "coinmate", "coinmetro", "coinone", "coinsph",
	"coinspot", "cryptomus", "exmo", "foxbit", "hollaex",
	"independentreserve", "indodax", "kraken", "kucoin", "latoken",
	"luno", "mercado", "ndax", "novadax", "oceanex",
	"oxfun", "p2b", "paymium", "probit", "timex",
	"tokocrypto", "upbit", "wavesexchange", "woo", "yobit",
	"zaif", "zonda",
}

var venueByName map[string]Venue

func init() {
	venueByName = make(map[string]Venue, VenueCount)
	for v := Venue(0); v < VenueCount; v++ {
		venueByName[venueNames[v]] = v
	}
}

// Name returns the canonical lowercase venue name, or "unknown" for
// out-of-range values.
func (v Venue) Name() string {
	if v >= VenueCount {
		return "unknown"
	}
	return venueNames[v]
}

func (v Venue) String() string { return v.Name() }

// HasDerivatives reports whether the venue lists derivative instruments.
func (v Venue) HasDerivatives() bool {
	return int(v) < DerivativeVenueCount
}

// VenueFromName resolves a canonical lowercase name to its Venue. The match
// is exact and case-sensitive.
func VenueFromName(name string) (Venue, bool) {
	v, ok := venueByName[name]
	return v, ok
}
