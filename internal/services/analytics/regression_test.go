package analytics

import (
	"errors"
	"math"
	"testing"
)

// plainOLS fits price against the raw 0..n-1 index without any scaling,
// the reference the standardized path must reproduce.
func plainOLS(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	slope = (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func TestFitTrendRecoversExactLine(t *testing.T) {
	ys := make([]float64, 20)
	for i := range ys {
		ys[i] = 1.5*float64(i) + 42
	}

	fit, err := FitTrend(ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fit.Slope-1.5) > 1e-9 {
		t.Fatalf("slope = %v, want 1.5", fit.Slope)
	}
	if math.Abs(fit.Intercept-42) > 1e-9 {
		t.Fatalf("intercept = %v, want 42", fit.Intercept)
	}
	for i, f := range fit.Fitted {
		if math.Abs(f-ys[i]) > 1e-9 {
			t.Fatalf("fitted[%d] = %v, want %v", i, f, ys[i])
		}
	}
}

func TestFitTrendMatchesUnscaledOLS(t *testing.T) {
	// Non-trivial series: trend plus deterministic wiggle.
	ys := make([]float64, 61)
	for i := range ys {
		ys[i] = 100 + 0.37*float64(i) + 3*math.Sin(float64(i)/4)
	}

	fit, err := FitTrend(ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSlope, wantIntercept := plainOLS(ys)
	if math.Abs(fit.Slope-wantSlope) > 1e-9 {
		t.Fatalf("slope = %v, want %v", fit.Slope, wantSlope)
	}
	if math.Abs(fit.Intercept-wantIntercept) > 1e-9 {
		t.Fatalf("intercept = %v, want %v", fit.Intercept, wantIntercept)
	}
	for i := range ys {
		want := wantIntercept + wantSlope*float64(i)
		if math.Abs(fit.Fitted[i]-want) > 1e-9 {
			t.Fatalf("fitted[%d] = %v, want %v", i, fit.Fitted[i], want)
		}
	}
}

func TestFitTrendRejectsShortSeries(t *testing.T) {
	for _, ys := range [][]float64{nil, {}, {123.4}} {
		if _, err := FitTrend(ys); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("FitTrend(%v) err = %v, want ErrInsufficientData", ys, err)
		}
	}
}

func TestFormatTrendFormula(t *testing.T) {
	got := FormatTrendFormula(1.23456, 5.678)
	want := "price = 1.2346 * days + 5.68"
	if got != want {
		t.Fatalf("formula = %q, want %q", got, want)
	}
}
