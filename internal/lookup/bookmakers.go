package lookup

import "sort"

// bookmakers lists the bookmaker tokens used as odds column prefixes.
var bookmakers = []string{
	"10Bet",
	"10x10bet",
	"188BET",
	"1xBet",
	"1xStavka.ru",
	"888sport",
	"bet-at-home",
	"bet365",
	"bet365.it",
	"Betclic.fr",
	"Betfair",
	"Betfair Exchange",
	"Betfred",
	"Betsafe",
	"Betsson",
	"BetVictor",
	"Betway",
	"bwin",
	"bwin.es",
	"bwin.fr",
	"bwin.it",
	"Chance.cz",
	"ComeOn",
	"Coolbet",
	"Curebet",
	"Dafabet",
	"eFortuna.pl",
	"Eurobet.it",
	"France Pari",
	"GGBET",
	"GGBET.ru",
	"iFortuna.cz",
	"iFortuna.sk",
	"Interwetten",
	"Lasbet",
	"Marathonbet",
	"Marsbet",
	"Matchbook",
	"N1 Bet",
	"NordicBet",
	"Pinnacle",
	"Planetwin365",
	"Smarkets",
	"Sportium.es",
	"STS.pl",
	"Tipsport.cz",
	"Tipsport.sk",
	"Totolotek.pl",
	"Unibet",
	"Unibet.it",
	"VOBET",
	"Vulkan Bet",
	"William Hill",
	"WilliamHill.it",
	"Winline.ru",
}

var (
	bookmakerSet = toSet(bookmakers)
	// longest first, so "Betfair Exchange_" wins over "Betfair_"
	bookmakersByLength = func() []string {
		out := make([]string, len(bookmakers))
		copy(out, bookmakers)
		sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
		return out
	}()
)

// Bookmakers returns a copy of the bookmaker enumeration.
func Bookmakers() []string {
	return clone(bookmakers)
}

// IsBookmaker reports whether name is a known bookmaker token.
func IsBookmaker(name string) bool {
	_, ok := bookmakerSet[name]
	return ok
}

// BookmakerPrefix returns the bookmaker whose token followed by "_" starts column.
func BookmakerPrefix(column string) (string, bool) {
	for _, b := range bookmakersByLength {
		if len(column) > len(b) && column[:len(b)] == b && column[len(b)] == '_' {
			return b, true
		}
	}
	return "", false
}
