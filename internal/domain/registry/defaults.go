package registry

import "github.com/solosevn/trainingrun/internal/domain/normalize"

// Default returns the five production boards. Weights and thresholds follow
// each board's published formula version; any change to either bumps the
// version string so consumers can tell series apart.
func Default() *Registry {
	r, err := New([]Board{
		trsBoard(),
		truscoreBoard(),
		trscodeBoard(),
		trfcastBoard(),
		tragentsBoard(),
	})
	if err != nil {
		// The built-in boards are validated by tests; reaching this means a
		// broken build, not a runtime condition.
		panic(err)
	}
	return r
}

// trsBoard is the main overall capability score: 7 pillars, one source each.
func trsBoard() Board {
	return Board{
		Key:              "trs",
		Name:             "TRSbench",
		FormulaVersion:   "2.4",
		QualificationMin: 5,
		Pillars: []Pillar{
			{Key: "reasoning", Weight: 0.20, Sources: []Source{
				{Key: "arc_agi2_pct", SubWeight: 0.20, Rule: normalize.Proportional},
			}},
			{Key: "coding", Weight: 0.20, Sources: []Source{
				{Key: "swebench_pct", SubWeight: 0.20, Rule: normalize.Proportional},
			}},
			{Key: "human_preference", Weight: 0.20, Sources: []Source{
				{Key: "arena_elo", SubWeight: 0.20, Rule: normalize.Proportional},
			}},
			{Key: "knowledge", Weight: 0.15, Sources: []Source{
				{Key: "mmlu_pro_pct", SubWeight: 0.15, Rule: normalize.Proportional},
			}},
			{Key: "efficiency", Weight: 0.10, Sources: []Source{
				{Key: "aa_efficiency_index", SubWeight: 0.10, Rule: normalize.Proportional},
			}},
			{Key: "safety", Weight: 0.10, Sources: []Source{
				{Key: "safebench_score", SubWeight: 0.10, Rule: normalize.Proportional},
			}},
			{Key: "usage", Weight: 0.05, Sources: []Source{
				{Key: "openrouter_rank_inv", SubWeight: 0.05, Rule: normalize.Proportional},
			}},
		},
	}
}

// truscoreBoard scores truthfulness and neutrality.
func truscoreBoard() Board {
	return Board{
		Key:              "truscore",
		Name:             "TRUscore",
		FormulaVersion:   "1.2",
		QualificationMin: 3,
		Pillars: []Pillar{
			{Key: "factuality", Weight: 0.30, Sources: []Source{
				{Key: "simpleqa_correct_pct", SubWeight: 0.30, Rule: normalize.Identity},
			}},
			{Key: "neutrality", Weight: 0.25, Sources: []Source{
				{Key: "trackingai_neutrality", SubWeight: 0.25, Rule: normalize.Proportional},
			}},
			{Key: "hallucination", Weight: 0.25, Sources: []Source{
				{Key: "vectara_halluc_rate", SubWeight: 0.25, Rule: normalize.Inverted},
			}},
			{Key: "calibration", Weight: 0.20, Sources: []Source{
				{Key: "simpleqa_not_attempted_pct", SubWeight: 0.20, Rule: normalize.Identity},
			}},
		},
	}
}

// trscodeBoard is the coding board: 8 sources grouped into 3 pillars.
func trscodeBoard() Board {
	return Board{
		Key:              "trscode",
		Name:             "TRScode",
		FormulaVersion:   "1.1",
		QualificationMin: 2,
		Pillars: []Pillar{
			{Key: "repo_engineering", Weight: 0.50, Sources: []Source{
				{Key: "swebench_verified_pct", SubWeight: 0.17, Rule: normalize.Proportional},
				{Key: "swe_rebench_pass1", SubWeight: 0.13, Rule: normalize.Proportional},
				{Key: "terminalbench_hard_pct", SubWeight: 0.12, Rule: normalize.Proportional},
				{Key: "swebench_pro_pct", SubWeight: 0.08, Rule: normalize.Proportional},
			}},
			{Key: "code_generation", Weight: 0.40, Sources: []Source{
				{Key: "livecodebench_pct", SubWeight: 0.15, Rule: normalize.Proportional},
				{Key: "scicode_pct", SubWeight: 0.15, Rule: normalize.Proportional},
				{Key: "bigcodebench_pct", SubWeight: 0.10, Rule: normalize.Proportional},
			}},
			{Key: "human_preference", Weight: 0.10, Sources: []Source{
				{Key: "arena_code_elo", SubWeight: 0.10, Rule: normalize.Proportional},
			}},
		},
	}
}

// trfcastBoard scores forecasting and trading. Brier-style metrics are
// lower-is-better and use the inverted rule.
func trfcastBoard() Board {
	return Board{
		Key:              "trfcast",
		Name:             "TRFcast",
		FormulaVersion:   "1.1",
		QualificationMin: 3,
		Pillars: []Pillar{
			{Key: "forecasting", Weight: 0.30, Sources: []Source{
				{Key: "forecastbench_baseline_brier", SubWeight: 0.20, Rule: normalize.Inverted},
				{Key: "forecastbench_tournament_brier", SubWeight: 0.10, Rule: normalize.Inverted},
			}},
			{Key: "trading", Weight: 0.25, Sources: []Source{
				{Key: "rallies_return_pct", SubWeight: 0.15, Rule: normalize.Proportional},
				{Key: "alpha_arena_return_pct", SubWeight: 0.10, Rule: normalize.Proportional},
			}},
			{Key: "calibration", Weight: 0.20, Sources: []Source{
				{Key: "forecastbench_calibration", SubWeight: 0.20, Rule: normalize.Inverted},
			}},
			{Key: "financial_reasoning", Weight: 0.15, Sources: []Source{
				{Key: "financearena_qa_pct", SubWeight: 0.08, Rule: normalize.Proportional},
				{Key: "financearena_elo", SubWeight: 0.07, Rule: normalize.Proportional},
			}},
			{Key: "market_intelligence", Weight: 0.10, Sources: []Source{
				{Key: "alpha_arena_sharpe", SubWeight: 0.05, Rule: normalize.Proportional},
				{Key: "rallies_win_rate", SubWeight: 0.05, Rule: normalize.Proportional},
			}},
		},
	}
}

// tragentsBoard scores autonomous-agent capability across 6 pillars. Cost
// and hardware metrics are lower-is-better.
func tragentsBoard() Board {
	return Board{
		Key:              "tragents",
		Name:             "TRAgents",
		FormulaVersion:   "1.0",
		QualificationMin: 3,
		Pillars: []Pillar{
			{Key: "task_completion", Weight: 0.25, Sources: []Source{
				{Key: "gaia_pct", SubWeight: 0.08, Rule: normalize.Proportional},
				{Key: "swebench_pct", SubWeight: 0.07, Rule: normalize.Proportional},
				{Key: "osworld_pct", SubWeight: 0.05, Rule: normalize.Proportional},
				{Key: "taubench_pct", SubWeight: 0.05, Rule: normalize.Proportional},
			}},
			{Key: "cost_efficiency", Weight: 0.20, Sources: []Source{
				{Key: "hal_cost_usd", SubWeight: 0.08, Rule: normalize.Inverted},
				{Key: "arcagi_cost_usd", SubWeight: 0.05, Rule: normalize.Inverted},
				{Key: "galileo_cost_usd", SubWeight: 0.04, Rule: normalize.Inverted},
				{Key: "aa_price_per_mtok", SubWeight: 0.03, Rule: normalize.Inverted},
			}},
			{Key: "tool_reliability", Weight: 0.20, Sources: []Source{
				{Key: "seal_tool_pct", SubWeight: 0.08, Rule: normalize.Proportional},
				{Key: "mcp_tool_pct", SubWeight: 0.05, Rule: normalize.Proportional},
				{Key: "docker_tool_pct", SubWeight: 0.04, Rule: normalize.Proportional},
				{Key: "toolcomp_pct", SubWeight: 0.03, Rule: normalize.Proportional},
			}},
			{Key: "safety_security", Weight: 0.15, Sources: []Source{
				{Key: "toolemu_pct", SubWeight: 0.05, Rule: normalize.Proportional},
				{Key: "st_webagent_pct", SubWeight: 0.04, Rule: normalize.Proportional},
				{Key: "osharm_pct", SubWeight: 0.03, Rule: normalize.Proportional},
				{Key: "pasb_pct", SubWeight: 0.03, Rule: normalize.Proportional},
			}},
			{Key: "accessibility", Weight: 0.10, Sources: []Source{
				{Key: "openweight_score", SubWeight: 0.04, Rule: normalize.Proportional},
				{Key: "hardware_vram_gb", SubWeight: 0.03, Rule: normalize.Inverted},
				{Key: "framework_score", SubWeight: 0.03, Rule: normalize.Proportional},
			}},
			{Key: "multi_model", Weight: 0.10, Sources: []Source{
				{Key: "router_perf", SubWeight: 0.05, Rule: normalize.Proportional},
				{Key: "hal_scaffold_pct", SubWeight: 0.03, Rule: normalize.Proportional},
				{Key: "token_eff_tok_per_task", SubWeight: 0.02, Rule: normalize.Inverted},
			}},
		},
	}
}
