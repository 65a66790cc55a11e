package learning

import (
	"fmt"
	"math"

	"smithwagnercv/domain/core"
)

// ============================================================================
// STUDENT MODEL
// ============================================================================

// Classification is the pretest -> posttest transition of one student
type Classification int

const (
	PositiveLearning Classification = iota // post=1, pre=0
	NegativeLearning                       // post=0, pre=1
	ZeroLearning                           // post=0, pre=0
	RetainedLearning                       // post=1, pre=1
)

// String returns the short column label of the classification
func (c Classification) String() string {
	switch c {
	case PositiveLearning:
		return "pl"
	case NegativeLearning:
		return "nl"
	case ZeroLearning:
		return "zl"
	case RetainedLearning:
		return "rl"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Classify maps a corrected pretest/posttest pair to its learning type
func Classify(pretest, posttest int) Classification {
	switch {
	case posttest == 1 && pretest == 0:
		return PositiveLearning
	case posttest == 0 && pretest == 1:
		return NegativeLearning
	case posttest == 1 && pretest == 1:
		return RetainedLearning
	default:
		return ZeroLearning
	}
}

// Student is one synthetic test taker. It only lives for the duration of a trial.
type Student struct {
	Draw      float64 `json:"draw"`       // true-knowledge threshold draw
	GuessPre  float64 `json:"guess_pre"`  // guessing draw on the pretest
	GuessPost float64 `json:"guess_post"` // guessing draw on the posttest
	Known     int     `json:"known"`      // 1 when Draw <= mu
	Pretest   int     `json:"pretest"`    // 0 or 1 after guessing correction
	Posttest  int     `json:"posttest"`   // 0 or 1 after guessing correction

	Classification Classification `json:"classification"`
}

// NewStudent builds a student from its three uniform draws.
// Both tests start from the same true-knowledge value and are corrected
// for guessing independently of each other.
func NewStudent(draw, guessPre, guessPost, mu float64, numOptions int) Student {
	known := 0
	if draw <= mu {
		known = 1
	}

	s := Student{
		Draw:      draw,
		GuessPre:  guessPre,
		GuessPost: guessPost,
		Known:     known,
	}
	s.Pretest = applyGuess(known, guessPre, numOptions)
	s.Posttest = applyGuess(known, guessPost, numOptions)
	s.Classification = Classify(s.Pretest, s.Posttest)
	return s
}

func applyGuess(score int, guess float64, numOptions int) int {
	if score == 1 {
		return 1
	}
	if guess <= 1.0/float64(numOptions) {
		return 1
	}
	return 0
}

// Flags returns the one-hot pl, nl, zl, rl indicators of the student
func (s Student) Flags() (pl, nl, zl, rl int) {
	switch s.Classification {
	case PositiveLearning:
		pl = 1
	case NegativeLearning:
		nl = 1
	case ZeroLearning:
		zl = 1
	case RetainedLearning:
		rl = 1
	}
	return pl, nl, zl, rl
}

// ============================================================================
// TRIAL OUTPUT
// ============================================================================

// TrialResult holds the class-wide fractions of each learning type
type TrialResult struct {
	PL float64 `json:"pl"`
	NL float64 `json:"nl"`
	ZL float64 `json:"zl"`
	RL float64 `json:"rl"`
}

// Total is the sum of the four fractions, 1 up to rounding
func (r TrialResult) Total() float64 {
	return r.PL + r.NL + r.ZL + r.RL
}

// TrialStatistics is one row of a result table.
// Gain is +Inf when MuHat is exactly 1.
type TrialStatistics struct {
	TrialResult
	Gamma float64 `json:"gamma"`
	Alpha float64 `json:"alpha"`
	MuHat float64 `json:"mu"`
	Flow  float64 `json:"flow"`
	Gain  float64 `json:"gain"`
}

// StatisticName names a column of the result table
type StatisticName string

const (
	ColumnPL    StatisticName = "pl"
	ColumnNL    StatisticName = "nl"
	ColumnZL    StatisticName = "zl"
	ColumnRL    StatisticName = "rl"
	Gamma       StatisticName = "gamma"
	Alpha       StatisticName = "alpha"
	ColumnMuHat StatisticName = "mu"
	Flow        StatisticName = "flow"
	Gain        StatisticName = "gain"
)

// Columns lists the result table columns in table order
var Columns = []StatisticName{ColumnPL, ColumnNL, ColumnZL, ColumnRL, Gamma, Alpha, ColumnMuHat, Flow, Gain}

// ReportedStatistics are the statistics that receive critical values, in report order
var ReportedStatistics = []StatisticName{Gamma, Alpha, Flow, Gain}

// IsReported reports whether critical values are extracted for the statistic
func (n StatisticName) IsReported() bool {
	for _, s := range ReportedStatistics {
		if s == n {
			return true
		}
	}
	return false
}

// Value returns the named column of the row
func (s TrialStatistics) Value(name StatisticName) (float64, error) {
	switch name {
	case ColumnPL:
		return s.PL, nil
	case ColumnNL:
		return s.NL, nil
	case ColumnZL:
		return s.ZL, nil
	case ColumnRL:
		return s.RL, nil
	case Gamma:
		return s.Gamma, nil
	case Alpha:
		return s.Alpha, nil
	case ColumnMuHat:
		return s.MuHat, nil
	case Flow:
		return s.Flow, nil
	case Gain:
		return s.Gain, nil
	default:
		return math.NaN(), fmt.Errorf("%w: %q", core.ErrUnknownStatistic, string(name))
	}
}
