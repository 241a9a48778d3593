// Package ranges maps the categorical range tokens collected by the intake
// form onto representative numeric midpoints, and numeric values back onto
// tokens. The inverse bands share their boundaries with the forward table,
// so bucketing a resolved midpoint returns the original token.
package ranges

// Documented defaults for absent or unrecognized tokens.
const (
	DefaultAnnualIncome = 60000.0
	DefaultTargetPrice  = 500000.0
	DefaultCashSaved    = 0.0
	DefaultMonthlyDebts = 0.0
)

// CreditNotSure is the token users pick when they do not know their score.
const CreditNotSure = "not-sure"

// band is one half-open [Min, Max) numeric band with its token and midpoint.
type band struct {
	Token    string
	Min      float64
	Max      float64
	Midpoint float64
}

var creditBands = []band{
	{"under-580", 0, 580, 540},
	{"580-619", 580, 620, 600},
	{"620-659", 620, 660, 640},
	{"660-699", 660, 700, 680},
	{"700-739", 700, 740, 720},
	{"740-plus", 740, 851, 760},
}

var incomeBands = []band{
	{"under-40k", 0, 40000, 30000},
	{"40k-60k", 40000, 60000, 50000},
	{"60k-80k", 60000, 80000, 70000},
	{"80k-100k", 80000, 100000, 90000},
	{"100k-150k", 100000, 150000, 125000},
	{"150k-plus", 150000, 0, 175000},
}

var priceBands = []band{
	{"under-300k", 0, 300000, 250000},
	{"300k-400k", 300000, 400000, 350000},
	{"400k-500k", 400000, 500000, 450000},
	{"500k-600k", 500000, 600000, 550000},
	{"600k-750k", 600000, 750000, 675000},
	{"750k-1m", 750000, 1000000, 875000},
	{"1m-plus", 1000000, 0, 1250000},
}

var savingsBands = []band{
	{"under-10k", 0, 10000, 5000},
	{"10k-25k", 10000, 25000, 17500},
	{"25k-50k", 25000, 50000, 37500},
	{"50k-75k", 50000, 75000, 62500},
	{"75k-100k", 75000, 100000, 87500},
	{"100k-plus", 100000, 0, 125000},
}

var debtBands = []band{
	{"none", 0, 1, 0},
	{"under-500", 1, 500, 250},
	{"500-1000", 500, 1000, 750},
	{"1000-2000", 1000, 2000, 1500},
	{"2000-plus", 2000, 0, 2500},
}

func lookup(bands []band, token string) (float64, bool) {
	for _, b := range bands {
		if b.Token == token {
			return b.Midpoint, true
		}
	}
	return 0, false
}

// bucket finds the band containing value. A zero Max marks the open-ended
// top band.
func bucket(bands []band, value float64) band {
	for _, b := range bands {
		if b.Max == 0 || value < b.Max {
			return b
		}
	}
	return bands[len(bands)-1]
}

// ResolveCredit maps a credit range token to a representative score. The
// second return is false when the score is unknown ("not-sure", empty, or
// unrecognized), which downstream scoring treats as a neutral estimate
// rather than zero.
func ResolveCredit(token string) (int, bool) {
	if token == "" || token == CreditNotSure {
		return 0, false
	}
	mid, ok := lookup(creditBands, token)
	if !ok {
		return 0, false
	}
	return int(mid), true
}

// ResolveAnnualIncome maps an income range token to annual dollars.
func ResolveAnnualIncome(token string) float64 {
	if mid, ok := lookup(incomeBands, token); ok {
		return mid
	}
	return DefaultAnnualIncome
}

// ResolvePrice maps a price range token to a target price.
func ResolvePrice(token string) float64 {
	if mid, ok := lookup(priceBands, token); ok {
		return mid
	}
	return DefaultTargetPrice
}

// ResolveSavings maps a savings range token to cash saved.
func ResolveSavings(token string) float64 {
	if mid, ok := lookup(savingsBands, token); ok {
		return mid
	}
	return DefaultCashSaved
}

// ResolveMonthlyDebts maps a debt range token to monthly dollars.
func ResolveMonthlyDebts(token string) float64 {
	if mid, ok := lookup(debtBands, token); ok {
		return mid
	}
	return DefaultMonthlyDebts
}

// CreditRangeFromScore returns the token whose band contains score.
func CreditRangeFromScore(score int) string {
	return bucket(creditBands, float64(score)).Token
}

// IncomeRangeFromAmount returns the token whose band contains the annual amount.
func IncomeRangeFromAmount(amount float64) string {
	return bucket(incomeBands, amount).Token
}

// PriceRangeFromAmount returns the token whose band contains the price.
func PriceRangeFromAmount(amount float64) string {
	return bucket(priceBands, amount).Token
}

// SavingsRangeFromAmount returns the token whose band contains the amount.
func SavingsRangeFromAmount(amount float64) string {
	return bucket(savingsBands, amount).Token
}

// DebtRangeFromAmount returns the token whose band contains the monthly amount.
func DebtRangeFromAmount(amount float64) string {
	return bucket(debtBands, amount).Token
}
