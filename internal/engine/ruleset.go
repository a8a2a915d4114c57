package engine

import "fmt"

// Ruleset holds every cost, yield and threshold the engine applies. The
// defaults follow the role-aware variant of the rules; house rules are loaded
// from YAML and overlaid onto DefaultRuleset.
type Ruleset struct {
	MinPlayers    int `yaml:"min_players" json:"min_players"`
	MaxPlayers    int `yaml:"max_players" json:"max_players"`
	TreasuryStart int `yaml:"treasury_start" json:"treasury_start"`
	StartingCoins int `yaml:"starting_coins" json:"starting_coins"`
	MustCoupAt    int `yaml:"must_coup_at" json:"must_coup_at"`

	GatherYield      int `yaml:"gather_yield" json:"gather_yield"`
	TaxYield         int `yaml:"tax_yield" json:"tax_yield"`
	GovernorTaxYield int `yaml:"governor_tax_yield" json:"governor_tax_yield"`

	BribeCost      int `yaml:"bribe_cost" json:"bribe_cost"`
	BaronBribeCost int `yaml:"baron_bribe_cost" json:"baron_bribe_cost"`

	ArrestTake            int `yaml:"arrest_take" json:"arrest_take"`
	MerchantArrestPenalty int `yaml:"merchant_arrest_penalty" json:"merchant_arrest_penalty"`

	SanctionCost              int `yaml:"sanction_cost" json:"sanction_cost"`
	JudgeSanctionSurcharge    int `yaml:"judge_sanction_surcharge" json:"judge_sanction_surcharge"`
	BaronSanctionCompensation int `yaml:"baron_sanction_compensation" json:"baron_sanction_compensation"`

	CoupCost        int `yaml:"coup_cost" json:"coup_cost"`
	CoupDefenseCost int `yaml:"coup_defense_cost" json:"coup_defense_cost"`

	InvestCost   int `yaml:"invest_cost" json:"invest_cost"`
	InvestReturn int `yaml:"invest_return" json:"invest_return"`

	MerchantBonusThreshold int `yaml:"merchant_bonus_threshold" json:"merchant_bonus_threshold"`
	MerchantBonus          int `yaml:"merchant_bonus" json:"merchant_bonus"`
}

// DefaultRuleset returns the standard rules.
func DefaultRuleset() Ruleset {
	return Ruleset{
		MinPlayers:    2,
		MaxPlayers:    6,
		TreasuryStart: 50,
		StartingCoins: 0,
		MustCoupAt:    10,

		GatherYield:      1,
		TaxYield:         2,
		GovernorTaxYield: 3,

		BribeCost:      4,
		BaronBribeCost: 3,

		ArrestTake:            1,
		MerchantArrestPenalty: 2,

		SanctionCost:              3,
		JudgeSanctionSurcharge:    1,
		BaronSanctionCompensation: 1,

		CoupCost:        7,
		CoupDefenseCost: 5,

		InvestCost:   3,
		InvestReturn: 6,

		MerchantBonusThreshold: 3,
		MerchantBonus:          1,
	}
}

// Validate rejects rulesets the engine cannot run.
func (r Ruleset) Validate() error {
	if r.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", r.MinPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("max_players (%d) must not be below min_players (%d)", r.MaxPlayers, r.MinPlayers)
	}
	if r.MustCoupAt <= r.CoupCost {
		return fmt.Errorf("must_coup_at (%d) must exceed coup_cost (%d)", r.MustCoupAt, r.CoupCost)
	}
	fields := []struct {
		name  string
		value int
	}{
		{"treasury_start", r.TreasuryStart},
		{"starting_coins", r.StartingCoins},
		{"gather_yield", r.GatherYield},
		{"tax_yield", r.TaxYield},
		{"governor_tax_yield", r.GovernorTaxYield},
		{"bribe_cost", r.BribeCost},
		{"baron_bribe_cost", r.BaronBribeCost},
		{"arrest_take", r.ArrestTake},
		{"merchant_arrest_penalty", r.MerchantArrestPenalty},
		{"sanction_cost", r.SanctionCost},
		{"judge_sanction_surcharge", r.JudgeSanctionSurcharge},
		{"baron_sanction_compensation", r.BaronSanctionCompensation},
		{"coup_cost", r.CoupCost},
		{"coup_defense_cost", r.CoupDefenseCost},
		{"invest_cost", r.InvestCost},
		{"invest_return", r.InvestReturn},
		{"merchant_bonus_threshold", r.MerchantBonusThreshold},
		{"merchant_bonus", r.MerchantBonus},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.name, f.value)
		}
	}
	if r.CoupCost == 0 {
		return fmt.Errorf("coup_cost must be positive")
	}
	return nil
}
