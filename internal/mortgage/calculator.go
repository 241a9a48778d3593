// Package mortgage implements the monthly payment model and the inverse
// affordability search. All lending assumptions are injected via Terms so
// rates can vary per deployment without touching call sites.
package mortgage

import (
	"math"

	"nestready/server/config"
)

// Price bounds for the affordability search. Intermediate guesses are
// clamped here to keep the fixed-point iteration from diverging.
const (
	MinSearchPrice = 100000.0
	MaxSearchPrice = 2000000.0
)

// priceStep is the granularity affordability results are rounded down to.
const priceStep = 5000.0

// inverterIterations is the fixed iteration count of the affordability
// search. The payment formula is near-linear in price over the clamped
// range, so this converges well below a dollar.
const inverterIterations = 20

// Terms holds the lending assumptions behind every payment estimate.
type Terms struct {
	AnnualRate            float64
	TermMonths            int
	PropertyTaxRate       float64
	InsuranceMonthly      float64
	MortgageInsuranceRate float64
	DefaultDownPaymentPct float64
}

// TermsFromConfig builds Terms from the loaded configuration.
func TermsFromConfig(cfg *config.Config) Terms {
	return Terms{
		AnnualRate:            cfg.Lending.AnnualRate,
		TermMonths:            cfg.Lending.TermMonths,
		PropertyTaxRate:       cfg.Lending.PropertyTaxRate,
		InsuranceMonthly:      cfg.Lending.InsuranceMonthly,
		MortgageInsuranceRate: cfg.Lending.MortgageInsuranceRate,
		DefaultDownPaymentPct: cfg.Lending.DefaultDownPaymentPct,
	}
}

// DefaultTerms returns the standard assumptions: 6.0% 30-year fixed,
// 1.2%/yr property tax, $100/mo insurance, 0.8%/yr mortgage insurance,
// 3.5% down.
func DefaultTerms() Terms {
	return Terms{
		AnnualRate:            0.06,
		TermMonths:            360,
		PropertyTaxRate:       0.012,
		InsuranceMonthly:      100,
		MortgageInsuranceRate: 0.008,
		DefaultDownPaymentPct: 0.035,
	}
}

// Calculator evaluates the payment model for one set of Terms.
type Calculator struct {
	terms Terms
}

// NewCalculator creates a Calculator for the given terms.
func NewCalculator(terms Terms) *Calculator {
	return &Calculator{terms: terms}
}

// Terms returns the lending assumptions in effect.
func (c *Calculator) Terms() Terms {
	return c.terms
}

// MonthlyPayment estimates the total monthly housing payment (principal,
// interest, property tax, insurance, and mortgage insurance) for a purchase
// at the given price. A non-positive downPaymentPct falls back to the
// default. Mortgage insurance is charged regardless of down payment size;
// the model accepts that simplification.
func (c *Calculator) MonthlyPayment(price, downPaymentPct float64) float64 {
	if price <= 0 {
		return 0
	}
	if downPaymentPct <= 0 {
		downPaymentPct = c.terms.DefaultDownPaymentPct
	}

	loan := price * (1 - downPaymentPct)
	monthlyRate := c.terms.AnnualRate / 12
	n := float64(c.terms.TermMonths)

	var principalAndInterest float64
	if monthlyRate == 0 {
		principalAndInterest = loan / n
	} else {
		growth := math.Pow(1+monthlyRate, n)
		principalAndInterest = loan * monthlyRate * growth / (growth - 1)
	}

	propertyTax := price * c.terms.PropertyTaxRate / 12
	mortgageInsurance := loan * c.terms.MortgageInsuranceRate / 12

	return principalAndInterest + propertyTax + c.terms.InsuranceMonthly + mortgageInsurance
}

// MaxPriceForDTI finds the largest price whose payment keeps total monthly
// obligations within targetDTIPercent of income. Returns 0 when no price
// is affordable: income is zero, or debts alone already exceed the ceiling.
// Any other result is a multiple of $5,000 in [MinSearchPrice, MaxSearchPrice].
func (c *Calculator) MaxPriceForDTI(monthlyIncome, monthlyDebts, targetDTIPercent, downPaymentPct float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	maxHousing := monthlyIncome*targetDTIPercent/100 - monthlyDebts
	if maxHousing <= 0 {
		return 0
	}

	// Fixed-point iteration: scale the guess by how far its payment sits
	// from the housing budget. Converges because the payment is strictly
	// increasing and near-linear in price over the clamped range.
	price := 300000.0
	for i := 0; i < inverterIterations; i++ {
		payment := c.MonthlyPayment(price, downPaymentPct)
		if payment <= 0 {
			break
		}
		price = clamp(price*maxHousing/payment, MinSearchPrice, MaxSearchPrice)
	}

	return math.Floor(price/priceStep) * priceStep
}

// DTIPercent computes total obligations at the given price as a percentage
// of monthly income. Zero income reports the ceiling-busting sentinel 999
// so every threshold comparison treats it as unaffordable.
func (c *Calculator) DTIPercent(price, monthlyIncome, monthlyDebts float64) float64 {
	if monthlyIncome <= 0 {
		return 999
	}
	payment := c.MonthlyPayment(price, 0)
	return (payment + monthlyDebts) / monthlyIncome * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
