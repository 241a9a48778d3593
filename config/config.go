package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Lending assumptions behind the payment model
	Lending struct {
		// Annual interest rate on a 30-year fixed mortgage (fraction, not percent)
		AnnualRate float64 `env:"LENDING_ANNUAL_RATE" envDefault:"0.06"`

		// Amortization term in monthly periods
		TermMonths int `env:"LENDING_TERM_MONTHS" envDefault:"360"`

		// Annual property tax as a fraction of the purchase price
		PropertyTaxRate float64 `env:"LENDING_PROPERTY_TAX_RATE" envDefault:"0.012"`

		// Flat homeowner's insurance per month
		InsuranceMonthly float64 `env:"LENDING_INSURANCE_MONTHLY" envDefault:"100"`

		// Annual mortgage insurance as a fraction of the loan amount
		MortgageInsuranceRate float64 `env:"LENDING_MI_RATE" envDefault:"0.008"`

		// Default down payment when the caller does not supply one
		DefaultDownPaymentPct float64 `env:"LENDING_DEFAULT_DOWN_PCT" envDefault:"0.035"`
	}

	// DTI ceilings used by the affordability inverter and the planner
	DTI struct {
		// Comfortable ceiling most lenders prefer
		ComfortablePct float64 `env:"DTI_COMFORTABLE_PCT" envDefault:"36"`

		// Hard qualification ceiling for conventional underwriting
		StretchPct float64 `env:"DTI_STRETCH_PCT" envDefault:"43"`
	}

	// Assistance program limits
	Programs struct {
		// Household income ceiling for the state DPA programs
		DPAIncomeLimit float64 `env:"PROGRAMS_DPA_INCOME_LIMIT" envDefault:"141400"`

		// Minimum credit score for the state DPA programs
		DPAMinCredit int `env:"PROGRAMS_DPA_MIN_CREDIT" envDefault:"660"`
	}

	// Planner heuristics
	Planner struct {
		// Assumed monthly savings rate when estimating savings timelines
		MonthlySavingsRate float64 `env:"PLANNER_MONTHLY_SAVINGS_RATE" envDefault:"500"`

		// Gap between target and recommended price below which no path is produced
		PathThreshold float64 `env:"PLANNER_PATH_THRESHOLD" envDefault:"10000"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
