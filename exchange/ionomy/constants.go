package ionomy

import "time"

const (
	DefaultAPI     = "https://ionomy.com/api/v1/"
	DefaultTimeout = 30 * time.Second

	AuthTimeHeader  = "api-auth-time"
	AuthKeyHeader   = "api-auth-key"
	AuthTokenHeader = "api-auth-token"

	GenericErrorMessage = "request failed without a message"
)

// Order book sides accepted by the public/orderbook endpoint.
const (
	OrderBookAsk  = "ask"
	OrderBookBid  = "bid"
	OrderBookBoth = "both"
)

const (
	MarketsPath          = "public/markets"
	CurrenciesPath       = "public/currencies"
	OrderBookPath        = "public/orderbook"
	MarketsSummariesPath = "public/markets-summaries"
	MarketSummaryPath    = "public/market-summary"
	MarketHistoryPath    = "public/market-history"

	BuyLimitPath    = "market/buy-limit"
	SellLimitPath   = "market/sell-limit"
	CancelOrderPath = "market/cancel-order"
	OpenOrdersPath  = "market/open-orders"

	BalancesPath          = "account/balances"
	BalancePath           = "account/balance"
	DepositAddressPath    = "account/deposit-address"
	DepositHistoryPath    = "account/deposit-history"
	WithdrawPath          = "account/withdraw"
	WithdrawalHistoryPath = "account/withdrawal-history"
	OrderPath             = "account/order"
	OrderHistoryPath      = "account/order-history"
)
