package simulation

import (
	"math/rand/v2"

	"smithwagnercv/domain/learning"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateClass simulates one class of classSize students and returns the
// fraction of the class in each learning category.
func GenerateClass(src rand.Source, classSize int, mu float64, numOptions int) (learning.TrialResult, error) {
	if err := learning.ValidateTrial(classSize, mu, numOptions); err != nil {
		return learning.TrialResult{}, err
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}

	draw := make([]float64, classSize)
	guessPre := make([]float64, classSize)
	guessPost := make([]float64, classSize)
	for i := range draw {
		draw[i] = uniform.Rand()
	}
	for i := range guessPre {
		guessPre[i] = uniform.Rand()
	}
	for i := range guessPost {
		guessPost[i] = uniform.Rand()
	}

	pl := make([]float64, classSize)
	nl := make([]float64, classSize)
	zl := make([]float64, classSize)
	rl := make([]float64, classSize)
	for i := 0; i < classSize; i++ {
		student := learning.NewStudent(draw[i], guessPre[i], guessPost[i], mu, numOptions)
		p, n, z, r := student.Flags()
		pl[i], nl[i], zl[i], rl[i] = float64(p), float64(n), float64(z), float64(r)
	}

	return learning.TrialResult{
		PL: stat.Mean(pl, nil),
		NL: stat.Mean(nl, nil),
		ZL: stat.Mean(zl, nil),
		RL: stat.Mean(rl, nil),
	}, nil
}

// RunTrial generates one class and derives its statistics
func RunTrial(src rand.Source, classSize int, mu float64, numOptions int) (learning.TrialStatistics, error) {
	result, err := GenerateClass(src, classSize, mu, numOptions)
	if err != nil {
		return learning.TrialStatistics{}, err
	}
	return learning.ComputeStatistics(result, numOptions)
}
