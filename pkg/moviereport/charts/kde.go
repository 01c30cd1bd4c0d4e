package charts

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// gaussianKDE is a Gaussian kernel density estimate with Scott's bandwidth.
type gaussianKDE struct {
	samples   []float64
	bandwidth float64
	kernel    distuv.Normal
}

// newGaussianKDE returns nil when values have fewer than two samples or no
// spread, since no bandwidth can be estimated.
func newGaussianKDE(values []float64) *gaussianKDE {
	if len(values) < 2 {
		return nil
	}
	sd := stat.StdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}
	return &gaussianKDE{
		samples:   values,
		bandwidth: sd * math.Pow(float64(len(values)), -1.0/5.0),
		kernel:    distuv.Normal{Mu: 0, Sigma: 1},
	}
}

// Density returns the estimated probability density at x.
func (k *gaussianKDE) Density(x float64) float64 {
	sum := 0.0
	for _, s := range k.samples {
		sum += k.kernel.Prob((x - s) / k.bandwidth)
	}
	return sum / (float64(len(k.samples)) * k.bandwidth)
}
