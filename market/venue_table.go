package market

// VenueConfig is the static, immutable configuration for one venue. The
// fee is the taker fee as a fraction (0.001 = 10 bps). Streaming reports
// whether the venue exposes a public websocket book feed; venues without
// one are polled over REST only.
type VenueConfig struct {
	Name        string
	WSURL       string
	RestURL     string
	Symbol      string // derivatives market symbol, empty for spot-only venues
	SpotSymbol  string
	Streaming   bool
	MaxLeverage int
	TakerFee    float64
	Supported   InstrumentMask
	Symbols     [InstrumentCount]string
}

// VenueConfigFor returns the static config for a venue. Out-of-range
// values yield a zero config with name "unknown".
func VenueConfigFor(v Venue) VenueConfig {
	if v >= VenueCount {
		return VenueConfig{Name: "unknown", MaxLeverage: 1}
	}
	return venueTable[v]
}

// Venue data sourced from CCXT and the venues' public API docs.
var venueTable = [VenueCount]VenueConfig{
	Apex:                  {WSURL: "wss://ws.apex.exchange/ws", RestURL: "https://api.apex.exchange/api/v1/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Arkham:                {RestURL: "https://api.arkhamintelligence.com/orderbook", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", MaxLeverage: 50, TakerFee: 0.003},
	Ascendex:              {WSURL: "wss://ascendex.com/1/api/pro/v1/stream", RestURL: "https://ascendex.com/api/pro/v2/futures/order-book", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Backpack:              {WSURL: "wss://ws.backpack.exchange", RestURL: "https://api.backpack.exchange/api/v1/depth", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDC", Streaming: true, MaxLeverage: 50, TakerFee: 0.002},
	Bigone:                {WSURL: "wss://big.one/ws/v2", RestURL: "https://big.one/api/v3/asset_pairs/BTC-USD/depth", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Binance:               {WSURL: "wss://fstream.binance.com/ws", RestURL: "https://fapi.binance.com/fapi/v1/depth?symbol=BTCUSDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Binancecoinm:          {WSURL: "wss://dstream.binance.com/ws", RestURL: "https://dapi.binance.com/dapi/v1/depth?symbol=BTCUSD_PERP&limit=50", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Binanceusdm:           {WSURL: "wss://fstream.binance.com/ws", RestURL: "https://fapi.binance.com/fapi/v1/depth?symbol=BTCUSDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Bingx:                 {WSURL: "wss://open-api-swap.bingx.com/swap-market", RestURL: "https://open-api.bingx.com/openApi/swap/v2/quote/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 150, TakerFee: 0.002},
	Bitfinex:              {WSURL: "wss://api-pub.bitfinex.com/ws/2", RestURL: "https://api-pub.bitfinex.com/v2/book/tBTCF0:USTF0/P0", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Bitflyer:              {WSURL: "wss://ws.lightstream.bitflyer.com/json-rpc", RestURL: "https://api.bitflyer.com/v1/board?product_code=FX_BTC_JPY", Symbol: "BTC/JPY:JPY", SpotSymbol: "BTC/JPY", Streaming: true, MaxLeverage: 4, TakerFee: 0.002},
	Bitget:                {WSURL: "wss://ws.bitget.com/mix/v1/stream", RestURL: "https://api.bitget.com/api/mix/v1/market/depth?symbol=BTCUSDT_UMCBL&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Bitmart:               {WSURL: "wss://ws-manager-compress.bitmart.com/api?protocol=1.1", RestURL: "https://api-cloud.bitmart.com/contract/public/depth?symbol=BTCUSDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Bitmex:                {WSURL: "wss://ws.bitmex.com/realtime", RestURL: "https://www.bitmex.com/api/v1/orderBook/L2?symbol=XBTUSD&depth=50", Symbol: "BTC/USD:BTC", SpotSymbol: "XBTUSD", Streaming: true, MaxLeverage: 100, TakerFee: 0.001},
	Bitrue:                {WSURL: "wss://futures.bitrue.com/kline-api/ws", RestURL: "https://futures.bitrue.com/fapi/v1/depth?symbol=BTCUSDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Blofin:                {WSURL: "wss://openapi.blofin.com/ws/public", RestURL: "https://openapi.blofin.com/api/v1/market/books?instId=BTC-USDT", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 150, TakerFee: 0.002},
	Bullish:               {WSURL: "wss://api.bullish.com/ws", RestURL: "https://api.bullish.com/trading/orderbooks", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDC", Streaming: true, MaxLeverage: 20, TakerFee: 0.002},
	Bybit:                 {WSURL: "wss://stream.bybit.com/v5/public/linear", RestURL: "https://api.bybit.com/v5/market/orderbook?category=linear&symbol=BTCUSDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.001},
	Coinbase:              {WSURL: "wss://ws-feed.exchange.coinbase.com", RestURL: "https://api.exchange.coinbase.com/products/BTC-USD/book?level=2", Symbol: "BTC/USD:USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 10, TakerFee: 0.005},
	Coinbaseadvanced:      {WSURL: "wss://ws-feed.exchange.coinbase.com", RestURL: "https://api.coinbase.com/api/v3/brokerage/product_book", Symbol: "BTC/USD:USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 10, TakerFee: 0.005},
	Coinbaseinternational: {WSURL: "wss://ws-md.international.coinbase.com", RestURL: "https://api.international.coinbase.com/api/v1/orderbook", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDC", Streaming: true, MaxLeverage: 10, TakerFee: 0.002},
	Coincatch:             {WSURL: "wss://ws.coincatch.com/public", RestURL: "https://api.coincatch.com/api/mix/v1/market/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Coinex:                {WSURL: "wss://socket.coinex.com/v2/futures", RestURL: "https://api.coinex.com/perpetual/v1/market/depth?market=BTCUSDT&merge=0&limit=50", Symbol: "BTC/USDC:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Cryptocom:             {WSURL: "wss://stream.crypto.com/v2/market", RestURL: "https://api.crypto.com/v2/public/get-book", Symbol: "BTC/USD:USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 50, TakerFee: 0.002},
	Deepcoin:              {WSURL: "wss://ws.deepcoin.com/ws", RestURL: "https://api.deepcoin.com/deepcoin/market/orderbook", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Defx:                  {RestURL: "https://api.defx.com/orderbook", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDC", MaxLeverage: 50, TakerFee: 0.002},
	Delta:                 {WSURL: "wss://socket.delta.exchange", RestURL: "https://api.delta.exchange/v2/l2orderbook/BTCUSDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Deribit:               {WSURL: "wss://www.deribit.com/ws/api/v2", RestURL: "https://www.deribit.com/api/v2/public/get_order_book?instrument_name=BTC-PERPETUAL&depth=50", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC-PERPETUAL", Streaming: true, MaxLeverage: 50, TakerFee: 0.001},
	Derive:                {RestURL: "https://api.derive.xyz/orderbook", Symbol: "BTC/USD:USD", SpotSymbol: "BTC/USD", MaxLeverage: 20, TakerFee: 0.002},
	Digifinex:             {WSURL: "wss://openapi.digifinex.com/ws/v1/", RestURL: "https://openapi.digifinex.com/v3/order_book?symbol=btc_usdt&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Dydx:                  {WSURL: "wss://api.dydx.exchange/v3/ws", RestURL: "https://api.dydx.exchange/v3/orderbook/BTC-USD", Symbol: "BTC/USD:USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 20, TakerFee: 0.001},
	Fmfwio:                {WSURL: "wss://api.fmfw.io/ws", RestURL: "https://api.fmfw.io/api/3/public/orderbook/BTCUSDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Gate:                  {WSURL: "wss://fx-ws.gateio.ws/v4/ws/usdt", RestURL: "https://api.gateio.ws/api/v4/futures/usdt/order_book?contract=BTC_USDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Gateio:                {WSURL: "wss://fx-ws.gateio.ws/v4/ws/usdt", RestURL: "https://api.gateio.ws/api/v4/futures/usdt/order_book?contract=BTC_USDT&limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Gemini:                {WSURL: "wss://api.gemini.com/v1/marketdata/btcusd", RestURL: "https://api.gemini.com/v1/book/btcusd", Symbol: "BTC/GUSD:GUSD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 100, TakerFee: 0.004},
	Hashkey:               {WSURL: "wss://stream-pro.hashkey.com/quote/ws/v1", RestURL: "https://api-pro.hashkey.com/quote/v1/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 50, TakerFee: 0.002},
	Hibachi:               {WSURL: "wss://ws.hibachi.xyz", RestURL: "https://api.hibachi.xyz/orderbook", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 50, TakerFee: 0.002},
	Hitbtc:                {WSURL: "wss://api.hitbtc.com/api/3/ws/public", RestURL: "https://api.hitbtc.com/api/3/public/orderbook/BTCUSDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 75, TakerFee: 0.002},
	Htx:                   {WSURL: "wss://api.hbdm.com/linear-swap-ws", RestURL: "https://api.hbdm.com/linear-swap-ex/market/depth?contract_code=BTC-USDT&type=step0", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 200, TakerFee: 0.002},
	Huobi:                 {WSURL: "wss://api.hbdm.com/linear-swap-ws", RestURL: "https://api.hbdm.com/linear-swap-ex/market/depth?contract_code=BTC-USDT&type=step0", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 200, TakerFee: 0.002},
	Hyperliquid:           {WSURL: "wss://api.hyperliquid.xyz/ws", RestURL: "https://api.hyperliquid.xyz/info", Symbol: "BTC/USDC:USDC", SpotSymbol: "BTC/USDC", Streaming: true, MaxLeverage: 50, TakerFee: 0.001},
	Krakenfutures:         {WSURL: "wss://futures.kraken.com/ws/v1", RestURL: "https://futures.kraken.com/derivatives/api/v3/orderbook?symbol=PI_XBTUSD", Symbol: "BTC/USD:BTC", SpotSymbol: "PI_XBTUSD", Streaming: true, MaxLeverage: 50, TakerFee: 0.002},
	Kucoinfutures:         {WSURL: "wss://ws-api-futures.kucoin.com", RestURL: "https://api-futures.kucoin.com/api/v1/level2/snapshot?symbol=XBTUSDTM", Symbol: "BTC/USDT:USDT", SpotSymbol: "XBTUSDTM", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Lbank:                 {WSURL: "wss://www.lbkex.net/ws/V2/", RestURL: "https://api.lbank.info/v2/depth.do?symbol=btc_usdt&size=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Mexc:                  {WSURL: "wss://contract.mexc.com/ws", RestURL: "https://contract.mexc.com/api/v1/contract/depth/BTC_USDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 200, TakerFee: 0.002},
	Modetrade:             {RestURL: "https://api.modetrade.com/orderbook", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", MaxLeverage: 50, TakerFee: 0.002},
	Myokx:                 {WSURL: "wss://ws.okx.com:8443/ws/v5/public", RestURL: "https://www.okx.com/api/v5/market/books?instId=BTC-USDT-SWAP&sz=50", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Okx:                   {WSURL: "wss://ws.okx.com:8443/ws/v5/public", RestURL: "https://www.okx.com/api/v5/market/books?instId=BTC-USDT-SWAP&sz=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Okxus:                 {WSURL: "wss://ws.okx.com:8443/ws/v5/public", RestURL: "https://www.okx.com/api/v5/market/books?instId=BTC-USDT-SWAP&sz=50", Symbol: "BTC/USD:BTC", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.001},
	Onetrading:            {WSURL: "wss://ws.onetrading.com", RestURL: "https://api.onetrading.com/public/v1/order-book/BTC_EUR", Symbol: "BTC/EUR:EUR", SpotSymbol: "BTC/EUR", Streaming: true, MaxLeverage: 5, TakerFee: 0.002},
	Paradex:               {WSURL: "wss://ws.api.paradex.trade/v1", RestURL: "https://api.paradex.trade/v1/orderbook", Symbol: "BTC/USD:USDC", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 20, TakerFee: 0.002},
	Phemex:                {WSURL: "wss://phemex.com/ws", RestURL: "https://api.phemex.com/md/orderbook?symbol=BTCUSD", Symbol: "BTC/USD:BTC", SpotSymbol: "BTCUSD", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Poloniex:              {WSURL: "wss://ws.poloniex.com/ws/public", RestURL: "https://api.poloniex.com/markets/BTC_USDT/orderBook?limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC_USDT", Streaming: true, MaxLeverage: 75, TakerFee: 0.003},
	Toobit:                {WSURL: "wss://ws.toobit.com/ws", RestURL: "https://api.toobit.com/quote/v1/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 150, TakerFee: 0.002},
	Whitebit:              {WSURL: "wss://api.whitebit.com/ws", RestURL: "https://whitebit.com/api/v4/public/orderbook/BTC_USDT?limit=50", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 100, TakerFee: 0.002},
	Woofipro:              {WSURL: "wss://ws.woo.org/ws/stream", RestURL: "https://api.woo.org/v1/orderbook/PERP_BTC_USDT", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 20, TakerFee: 0.002},
	Xt:                    {WSURL: "wss://stream.xt.com/public", RestURL: "https://api.xt.com/future/market/v1/public/q/depth", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 125, TakerFee: 0.002},
	Zebpay:                {RestURL: "https://www.zebapi.com/pro/v1/market/BTC-USDT/orderbook", Symbol: "BTC/USDT:USDT", SpotSymbol: "BTC/USDT", MaxLeverage: 75, TakerFee: 0.005},

	Alpaca:             {WSURL: "wss://stream.data.alpaca.markets/v2/crypto", RestURL: "https://data.alpaca.markets/v1beta3/crypto/us/orderbooks", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Bequant:            {WSURL: "wss://api.bequant.io/api/3/ws/public", RestURL: "https://api.bequant.io/api/3/public/orderbook", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Binanceus:          {WSURL: "wss://stream.binance.us:9443/ws", RestURL: "https://api.binance.us/api/v3/depth?symbol=BTCUSD&limit=50", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.001},
	Bit2c:              {RestURL: "https://bit2c.co.il/Exchanges/BtcNis/orderbook.json", SpotSymbol: "BTC/NIS", MaxLeverage: 1, TakerFee: 0.005},
	Bitbank:            {WSURL: "wss://stream.bitbank.cc/socket.io", RestURL: "https://public.bitbank.cc/btc_jpy/depth", SpotSymbol: "BTC/JPY", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Bitbns:             {RestURL: "https://bitbns.com/order/fetchOrderbook", SpotSymbol: "BTC/INR", MaxLeverage: 1, TakerFee: 0.005},
	Bithumb:            {WSURL: "wss://pubwss.bithumb.com/pub/ws", RestURL: "https://api.bithumb.com/public/orderbook/BTC_KRW", SpotSymbol: "BTC/KRW", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Bitopro:            {WSURL: "wss://stream.bitopro.com:443/ws/v1/pub", RestURL: "https://api.bitopro.com/v3/order-book/BTC_TWD", SpotSymbol: "BTC/TWD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Bitso:              {WSURL: "wss://ws.bitso.com", RestURL: "https://api.bitso.com/v3/order_book?book=btc_mxn", SpotSymbol: "BTC/MXN", Streaming: true, MaxLeverage: 1, TakerFee: 0.005},
	Bitstamp:           {WSURL: "wss://ws.bitstamp.net", RestURL: "https://www.bitstamp.net/api/v2/order_book/btcusd", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.005},
	Bitteam:            {RestURL: "https://bit.team/api/orderbook", SpotSymbol: "BTC/USDT", MaxLeverage: 1, TakerFee: 0.002},
	Bittrade:           {RestURL: "https://api-cloud.bittrade.co.jp/v1/orderbook", SpotSymbol: "BTC/JPY", MaxLeverage: 1, TakerFee: 0.002},
	Bitvavo:            {WSURL: "wss://ws.bitvavo.com/v2", RestURL: "https://api.bitvavo.com/v2/BTC-EUR/book", SpotSymbol: "BTC/EUR", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Blockchaincom:      {WSURL: "wss://ws.blockchain.com/mercury-gateway/v1/ws", RestURL: "https://api.blockchain.com/v3/exchange/l2/BTC-USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Btcalpha:           {RestURL: "https://btc-alpha.com/api/v1/orderbook/BTC_USDT", SpotSymbol: "BTC/USDT", MaxLeverage: 1, TakerFee: 0.002},
	Btcbox:             {RestURL: "https://www.btcbox.co.jp/api/v1/depth", SpotSymbol: "BTC/JPY", MaxLeverage: 1, TakerFee: 0.002},
	Btcmarkets:         {WSURL: "wss://socket.btcmarkets.net/v2", RestURL: "https://api.btcmarkets.net/v3/markets/BTC-AUD/orderbook", SpotSymbol: "BTC/AUD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Btcturk:            {WSURL: "wss://ws-feed-pro.btcturk.com", RestURL: "https://api.btcturk.com/api/v2/orderbook?pairSymbol=BTCTRY", SpotSymbol: "BTC/TRY", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Cex:                {WSURL: "wss://ws.cex.io/ws", RestURL: "https://cex.io/api/order_book/BTC/USD", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Coinbaseexchange:   {WSURL: "wss://ws-feed.exchange.coinbase.com", RestURL: "https://api.exchange.coinbase.com/products/BTC-USD/book?level=2", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.005},
	Coincheck:          {WSURL: "wss://ws-api.coincheck.com", RestURL: "https://coincheck.com/api/order_books", SpotSymbol: "BTC/JPY", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Coinmate:           {WSURL: "wss://coinmate.io/api/websocket", RestURL: "https://coinmate.io/api/orderBook?currencyPair=BTC_EUR", SpotSymbol: "BTC/EUR", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Coinmetro:          {WSURL: "wss://api.coinmetro.com/ws", RestURL: "https://api.coinmetro.com/exchange/book/BTCEUR", SpotSymbol: "BTC/EUR", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Coinone:            {RestURL: "https://api.coinone.co.kr/orderbook?currency=btc", SpotSymbol: "BTC/KRW", MaxLeverage: 1, TakerFee: 0.002},
	Coinsph:            {RestURL: "https://api.coins.ph/openapi/quote/v1/depth", SpotSymbol: "BTC/PHP", MaxLeverage: 1, TakerFee: 0.002},
	Coinspot:           {RestURL: "https://www.coinspot.com.au/pubapi/v2/orders/open/btc", SpotSymbol: "BTC/AUD", MaxLeverage: 1, TakerFee: 0.005},
	Cryptomus:          {RestURL: "https://api.cryptomus.com/v1/exchange/market/assets", SpotSymbol: "BTC/USDT", MaxLeverage: 1, TakerFee: 0.002},
	Exmo:               {WSURL: "wss://ws-api.exmo.com:443/v1/public", RestURL: "https://api.exmo.com/v1.1/order_book?pair=BTC_USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Foxbit:             {RestURL: "https://api.foxbit.com.br/rest/v3/markets/btc-brl/orderbook", SpotSymbol: "BTC/BRL", MaxLeverage: 1, TakerFee: 0.002},
	Hollaex:            {WSURL: "wss://api.hollaex.com/stream", RestURL: "https://api.hollaex.com/v2/orderbook?symbol=btc-usdt", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Independentreserve: {RestURL: "https://api.independentreserve.com/Public/GetOrderBook?primaryCurrencyCode=xbt&secondaryCurrencyCode=aud", SpotSymbol: "BTC/AUD", MaxLeverage: 1, TakerFee: 0.005},
	Indodax:            {WSURL: "wss://ws3.indodax.com/ws/", RestURL: "https://indodax.com/api/btc_idr/depth", SpotSymbol: "BTC/IDR", Streaming: true, MaxLeverage: 1, TakerFee: 0.003},
	Kraken:             {WSURL: "wss://ws.kraken.com", RestURL: "https://api.kraken.com/0/public/Depth?pair=XBTUSD&count=50", SpotSymbol: "BTC/USD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Kucoin:             {WSURL: "wss://ws-api-spot.kucoin.com", RestURL: "https://api.kucoin.com/api/v1/market/orderbook/level2_100?symbol=BTC-USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Latoken:            {WSURL: "wss://api.latoken.com/stomp", RestURL: "https://api.latoken.com/v2/book/BTC/USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Luno:               {WSURL: "wss://ws.luno.com/api/1/stream/XBTZAR", RestURL: "https://api.luno.com/api/1/orderbook_top?pair=XBTZAR", SpotSymbol: "BTC/ZAR", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Mercado:            {RestURL: "https://api.mercadobitcoin.net/api/v4/btc/orderbook", SpotSymbol: "BTC/BRL", MaxLeverage: 1, TakerFee: 0.003},
	Ndax:               {WSURL: "wss://api.ndax.io/ws", RestURL: "https://api.ndax.io/api/getl2snapshot/1", SpotSymbol: "BTC/CAD", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Novadax:            {WSURL: "wss://api.novadax.com/websocket", RestURL: "https://api.novadax.com/v1/market/depth?symbol=BTC_BRL&limit=50", SpotSymbol: "BTC/BRL", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Oceanex:            {WSURL: "wss://ws.oceanex.pro/ws", RestURL: "https://api.oceanex.pro/v1/order_book?market=btcusdt", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Oxfun:              {WSURL: "wss://api.ox.fun/v1/ws", RestURL: "https://api.ox.fun/v1/depth", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	P2b:                {WSURL: "wss://wsapi.p2pb2b.com", RestURL: "https://api.p2pb2b.com/api/v2/public/book?market=BTC_USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Paymium:            {RestURL: "https://paymium.com/api/v1/data/eur/depth", SpotSymbol: "BTC/EUR", MaxLeverage: 1, TakerFee: 0.005},
	Probit:             {WSURL: "wss://api.probit.com/api/exchange/v1/ws", RestURL: "https://api.probit.com/api/exchange/v1/order_book?market_id=BTC-USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Timex:              {WSURL: "wss://plasma-relay.timex.io", RestURL: "https://plasma-relay.timex.io/public/book/BTCUSDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Tokocrypto:         {WSURL: "wss://stream.tokocrypto.com/ws", RestURL: "https://www.tokocrypto.com/open/v1/market/depth", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Upbit:              {WSURL: "wss://api.upbit.com/websocket/v1", RestURL: "https://api.upbit.com/v1/orderbook?markets=KRW-BTC", SpotSymbol: "BTC/KRW", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Wavesexchange:      {WSURL: "wss://matcher.waves.exchange/api/ws", RestURL: "https://matcher.waves.exchange/api/v1/orderbook/WAVES/BTC", SpotSymbol: "BTC/WAVES", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Woo:                {WSURL: "wss://wss.woo.org/ws/stream", RestURL: "https://api.woo.org/v1/orderbook/SPOT_BTC_USDT", SpotSymbol: "BTC/USDT", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Yobit:              {RestURL: "https://yobit.net/api/3/depth/btc_usdt", SpotSymbol: "BTC/USDT", MaxLeverage: 1, TakerFee: 0.002},
	Zaif:               {WSURL: "wss://ws.zaif.jp/stream", RestURL: "https://api.zaif.jp/api/1/depth/btc_jpy", SpotSymbol: "BTC/JPY", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
	Zonda:              {WSURL: "wss://api.zonda.exchange/websocket/", RestURL: "https://api.zonda.exchange/rest/trading/orderbook/BTC-PLN", SpotSymbol: "BTC/PLN", Streaming: true, MaxLeverage: 1, TakerFee: 0.002},
}

// instrumentListing is the per-instrument market symbol set for venues with
// derivative listings beyond the spot default.
type instrumentListing struct {
	mask    InstrumentMask
	symbols [InstrumentCount]string
}

var instrumentListings = map[Venue]instrumentListing{
	Okx: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskOption | MaskInverse,
		symbols: [InstrumentCount]string{"BTC-USDT", "BTC-USDT", "BTC-USDT-SWAP", "BTC-USDT-250328", "BTC-USD-250328-100000-C", "BTC-USD-SWAP", ""},
	},
	Bybit: {
		mask:    MaskSpot | MaskPerpetual | MaskFuture | MaskOption | MaskInverse,
		symbols: [InstrumentCount]string{"BTCUSDT", "", "BTCUSDT", "BTCUSDT-28MAR25", "BTC-28MAR25-100000-C", "BTCUSD", ""},
	},
	Deribit: {
		mask:    MaskPerpetual | MaskFuture | MaskOption | MaskInverse,
		symbols: [InstrumentCount]string{"", "", "BTC-PERPETUAL", "BTC-28MAR25", "BTC-28MAR25-100000-C", "BTC-PERPETUAL", ""},
	},
	Gate: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskOption | MaskLeveragedToken,
		symbols: [InstrumentCount]string{"BTC_USDT", "BTC_USDT", "BTC_USDT", "BTC_USDT_20250328", "BTC_USDT-20250328-100000-C", "", "BTC3L_USDT"},
	},
	Gateio: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskOption | MaskLeveragedToken,
		symbols: [InstrumentCount]string{"BTC_USDT", "BTC_USDT", "BTC_USDT", "BTC_USDT_20250328", "BTC_USDT-20250328-100000-C", "", "BTC3L_USDT"},
	},
	Binance: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskInverse | MaskLeveragedToken,
		symbols: [InstrumentCount]string{"BTCUSDT", "BTCUSDT", "BTCUSDT", "BTCUSDT_250328", "", "BTCUSD_PERP", "BTCUP"},
	},
	Binancecoinm: {
		mask:    MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"", "", "BTCUSD_PERP", "BTCUSD_250328", "", "BTCUSD_PERP", ""},
	},
	Binanceusdm: {
		mask:    MaskPerpetual | MaskFuture,
		symbols: [InstrumentCount]string{"", "", "BTCUSDT", "BTCUSDT_250328", "", "", ""},
	},
	Bitget: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture,
		symbols: [InstrumentCount]string{"BTCUSDT", "BTCUSDT", "BTCUSDT_UMCBL", "BTCUSDT_DMCBL", "", "", ""},
	},
	Mexc: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskLeveragedToken,
		symbols: [InstrumentCount]string{"BTCUSDT", "BTCUSDT", "BTC_USDT", "BTC_USDT", "", "", "BTC3L_USDT"},
	},
	Htx: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"btcusdt", "btcusdt", "BTC-USDT", "BTC_CQ", "", "BTC-USD", ""},
	},
	Huobi: {
		mask:    MaskSpot | MaskMargin | MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"btcusdt", "btcusdt", "BTC-USDT", "BTC_CQ", "", "BTC-USD", ""},
	},
	Bitmex: {
		mask:    MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"", "", "XBTUSD", "XBTM25", "", "XBTUSD", ""},
	},
	Krakenfutures: {
		mask:    MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"", "", "PI_XBTUSD", "FI_XBTUSD_250328", "", "PI_XBTUSD", ""},
	},
	Kucoinfutures: {
		mask:    MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"", "", "XBTUSDTM", "XBTUSDTM", "", "XBTUSDM", ""},
	},
	Phemex: {
		mask:    MaskSpot | MaskPerpetual | MaskFuture | MaskInverse,
		symbols: [InstrumentCount]string{"sBTCUSDT", "", "BTCUSD", "BTCUSD", "", "BTCUSD", ""},
	},
	Hyperliquid: {
		mask:    MaskPerpetual,
		symbols: [InstrumentCount]string{"", "", "BTC", "", "", "", ""},
	},
	Dydx: {
		mask:    MaskPerpetual,
		symbols: [InstrumentCount]string{"", "", "BTC-USD", "", "", "", ""},
	},
	Kraken: {
		mask:    MaskSpot | MaskMargin,
		symbols: [InstrumentCount]string{"XXBTZUSD", "XXBTZUSD", "", "", "", "", ""},
	},
	Kucoin: {
		mask:    MaskSpot | MaskMargin | MaskLeveragedToken,
		symbols: [InstrumentCount]string{"BTC-USDT", "BTC-USDT", "", "", "", "", "BTC3L-USDT"},
	},
}

func init() {
	for v := Venue(0); v < VenueCount; v++ {
		c := &venueTable[v]
		c.Name = venueNames[v]
		if l, ok := instrumentListings[v]; ok {
			c.Supported = l.mask
			c.Symbols = l.symbols
			continue
		}
		// Everything else trades the spot book only.
		c.Supported = MaskSpot
		c.Symbols[Spot] = c.SpotSymbol
	}
}
