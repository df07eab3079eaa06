package lookup

// Market is a wager type code as it appears inside odds column names.
type Market string

const (
	Market1X2  Market = "1x2"  // 3-way win
	MarketAH   Market = "AH"   // asian handicap
	MarketBTTS Market = "BTTS" // both teams to score
	MarketCS   Market = "CS"   // correct score
	MarketDC   Market = "DC"   // double chance
	MarketDNB  Market = "DNB"  // draw no bet
	MarketHTFT Market = "HTFT" // half time / full time
	MarketOU   Market = "OU"   // over under
)

var markets = []string{
	string(Market1X2),
	string(MarketAH),
	string(MarketBTTS),
	string(MarketCS),
	string(MarketDC),
	string(MarketDNB),
	string(MarketHTFT),
	string(MarketOU),
}

var marketSet = toSet(markets)

// IsValid checks if the market code is supported
func (m Market) IsValid() bool {
	_, ok := marketSet[string(m)]
	return ok
}

// String returns string representation
func (m Market) String() string {
	return string(m)
}

// Markets returns a copy of the market enumeration.
func Markets() []string {
	return clone(markets)
}

// IsMarket reports whether code is a known market.
func IsMarket(code string) bool {
	return Market(code).IsValid()
}

// OddsTime tags odds taken at market open or at kick-off.
type OddsTime string

const (
	Open   OddsTime = "open"
	Closed OddsTime = "closed"
)

var oddsTimes = []string{string(Open), string(Closed)}

// OddsTimes returns the open/closed enumeration.
func OddsTimes() []string {
	return clone(oddsTimes)
}

// IsOddsTime reports whether tag is "open" or "closed".
func IsOddsTime(tag string) bool {
	return tag == string(Open) || tag == string(Closed)
}

// ActiveSuffix marks the companion column holding the bet availability flag.
const ActiveSuffix = "active"
