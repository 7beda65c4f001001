// Package sample generates random curve collections and summarizes their
// circles. It is demonstration glue around the curve3 library.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/MariaBashkeva/curve3"
)

// Options controls random curve generation. The seed is explicit so that
// generated collections are reproducible.
type Options struct {
	Count int
	Seed  int64
	Min   float64 // inclusive lower bound for every generated parameter
	Max   float64 // exclusive upper bound
}

// Defaults returns the standard generation options: 100 curves with
// parameters in [1, 100).
func Defaults() Options {
	return Options{Count: 100, Seed: 1, Min: 1, Max: 100}
}

// Curves generates opts.Count curves with uniformly random parameters,
// cycling through ellipse, circle and helix. Ellipses and circles are
// anchored in the z=0 plane; helixes get a random 3D anchor and are
// circular with phase zero.
func Curves(opts Options) []curve3.Curve {
	rng := rand.New(rand.NewSource(opts.Seed))
	param := func() float64 {
		return opts.Min + rng.Float64()*(opts.Max-opts.Min)
	}

	curves := make([]curve3.Curve, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		switch i % 3 {
		case 0:
			curves = append(curves, curve3.NewEllipse(curve3.XY(param(), param()), param(), param()))
		case 1:
			curves = append(curves, curve3.NewCircle(curve3.XY(param(), param()), param()))
		case 2:
			curves = append(curves, curve3.NewHelix(curve3.V(param(), param(), param()), param(), param()))
		}
	}
	return curves
}

// Summary aggregates the circles of a curve collection.
type Summary struct {
	Count int
	First float64 // smallest radius
	Last  float64 // largest radius
	Sum   float64 // total of all radii
}

// Summarize filters the circles out of curves and aggregates their radii.
// It fails with [curve3.ErrEmptyCollection] when the collection contains no
// circles, since First and Last are undefined then.
func Summarize(curves []curve3.Curve) (Summary, error) {
	circles := curve3.Circles(curves)
	first, last, err := curve3.RadiusBounds(circles)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize circles: %w", err)
	}
	return Summary{
		Count: len(circles),
		First: first,
		Last:  last,
		Sum:   curve3.RadiusSum(circles),
	}, nil
}
