// Package calibration measures how well an Engine's predicted
// retrievability matches observed recall across a replayed review
// history. It is read-only diagnostics, not training — it never adjusts
// an Engine's weights.
package calibration

import (
	"math"

	"github.com/paperdeck/fsrs"
)

const bceClamp = 1e-7

// bceLoss computes the binary cross-entropy loss: -[y*ln(p) + (1-y)*ln(1-p)].
// rPred is clamped to [bceClamp, 1-bceClamp] to avoid log(0).
func bceLoss(rPred, y float64) float64 {
	p := math.Max(bceClamp, math.Min(rPred, 1-bceClamp))
	return -(y*math.Log(p) + (1-y)*math.Log(1-p))
}

// Bin is one equal-width retrievability bucket of a calibration curve.
type Bin struct {
	Lower, Upper  float64
	PredictedMean float64
	ObservedMean  float64
	Count         int
}

// Report summarizes the agreement between predicted and observed recall
// over a review history.
type Report struct {
	MeanLoss float64
	Count    int
	Bins     []Bin
}

const numBins = 10

// Evaluate replays logs starting from card, scoring the engine's
// RetrievabilityOf prediction against each log's actual grade before
// applying it. Same-day reviews (ElapsedDays < 1) are excluded: elapsed
// days truncates to 0 for them and retrievability is trivially 1.0
// (elapsed_days=0 behavior), which would make every same-day review
// look perfectly calibrated and skew the result.
func Evaluate(engine *fsrs.Engine, card fsrs.Card, logs []fsrs.ReviewLog) (Report, error) {
	sums := make([]float64, numBins)
	obs := make([]float64, numBins)
	counts := make([]int, numBins)

	var totalLoss float64
	var n int

	for _, log := range logs {
		if card.LastReview != nil && log.ElapsedDays >= 1 {
			rPred, err := engine.RetrievabilityOf(card, log.ReviewedAt)
			if err != nil {
				return Report{}, err
			}
			y := 0.0
			if log.Grade != fsrs.Again {
				y = 1.0
			}
			totalLoss += bceLoss(rPred, y)
			n++

			idx := int(rPred * float64(numBins))
			if idx >= numBins {
				idx = numBins - 1
			}
			if idx < 0 {
				idx = 0
			}
			sums[idx] += rPred
			obs[idx] += y
			counts[idx]++
		}

		outcomes, err := engine.Schedule(card, log.ReviewedAt)
		if err != nil {
			return Report{}, err
		}
		outcome, ok := outcomes[log.Grade]
		if !ok {
			return Report{}, fsrs.ErrInvalidGrade
		}
		card = outcome.Card
	}

	report := Report{Count: n}
	if n > 0 {
		report.MeanLoss = totalLoss / float64(n)
	}
	for i := 0; i < numBins; i++ {
		if counts[i] == 0 {
			continue
		}
		report.Bins = append(report.Bins, Bin{
			Lower:         float64(i) / float64(numBins),
			Upper:         float64(i+1) / float64(numBins),
			PredictedMean: sums[i] / float64(counts[i]),
			ObservedMean:  obs[i] / float64(counts[i]),
			Count:         counts[i],
		})
	}
	return report, nil
}
