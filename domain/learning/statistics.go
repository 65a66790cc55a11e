package learning

import "math"

// ComputeStatistics derives the guessing-corrected learning statistics of one trial.
//
//	mu    = ((nl+rl)-1)/(k-1) + nl + rl
//	gamma = k(nl + k*pl + rl - 1) / (k-1)^2
//	alpha = k(k*nl + pl + rl - 1) / (k-1)^2
//	flow  = k(pl - nl) / (k-1)
//	gain  = gamma / (1 - mu), +Inf when mu == 1
//
// where k is the number of answer options.
func ComputeStatistics(r TrialResult, numOptions int) (TrialStatistics, error) {
	if err := ValidateNumOptions(numOptions); err != nil {
		return TrialStatistics{}, err
	}

	k := float64(numOptions)
	km1 := k - 1
	known := r.NL + r.RL

	muHat := (known-1)/km1 + known
	gamma := k * (r.NL + r.PL*k + r.RL - 1) / (km1 * km1)
	alpha := k * (r.NL*k + r.PL + r.RL - 1) / (km1 * km1)
	flow := k * (r.PL - r.NL) / km1

	gain := math.Inf(1)
	if muHat != 1 {
		gain = gamma / (1 - muHat)
	}

	return TrialStatistics{
		TrialResult: r,
		Gamma:       gamma,
		Alpha:       alpha,
		MuHat:       muHat,
		Flow:        flow,
		Gain:        gain,
	}, nil
}
