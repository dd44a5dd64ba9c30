package optics

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/fermat/minimize"
)

var demo = Setup{N1: 1.0, N2: 1.5, D: 3.0, XTarget: 6.0, YTarget: 4.0}

func TestTotalTravelTime(t *testing.T) {
	tests := []struct {
		y, n1, n2, d, xt, yt float64
		want                 float64
	}{
		{4, 1, 1.5, 3, 6, 4, 5 + 1.5*3},
		{0, 1, 1.5, 3, 6, 4, 3 + 1.5*5},
		{2, 1, 1, 3, 6, 4, 2 * math.Sqrt(13)},
		// not validated: degenerate interface and negative index
		{1, -1, 2, 0, 0, 1, -1},
		{-4, 2, 1, 3, 3, 0, 2*5 + 4},
	}
	for _, tt := range tests {
		if got := TotalTravelTime(tt.y, tt.n1, tt.n2, tt.d, tt.xt, tt.yt); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("TotalTravelTime(%g, %g, %g, %g, %g, %g) = %g, want %g",
				tt.y, tt.n1, tt.n2, tt.d, tt.xt, tt.yt, got, tt.want)
		}
	}
}

func TestOptimalSplitEqualIndices(t *testing.T) {
	for _, s := range []Setup{
		{N1: 1, N2: 1, D: 3, XTarget: 6, YTarget: 4},
		{N1: 1.33, N2: 1.33, D: 1, XTarget: 5, YTarget: 2},
		{N1: 2, N2: 2, D: 4.5, XTarget: 5, YTarget: -3},
	} {
		res, err := s.OptimalSplit(nil)
		if err != nil {
			t.Fatal(err)
		}
		if d := math.Abs(res.X - s.StraightSplit()); d > 1e-4 {
			t.Errorf("%+v: optimum %g, straight line crosses at %g", s, res.X, s.StraightSplit())
		}
	}
}

func TestOptimalSplitSnell(t *testing.T) {
	res, err := demo.OptimalSplit(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r := demo.SnellResidual(res.X); math.Abs(r) > 1e-3 {
		t.Errorf("Snell residual at %g = %g", res.X, r)
	}

	theta1, theta2 := demo.Angles(res.X)
	lhs := demo.N1 * math.Sin(theta1)
	rhs := demo.N2 * math.Sin(theta2)
	if math.Abs(lhs-rhs) > 1e-3 {
		t.Errorf("n1 sin θ1 = %g, n2 sin θ2 = %g", lhs, rhs)
	}
	// the slower medium gets the shorter segment
	if res.X <= demo.StraightSplit() {
		t.Errorf("optimum %g should lie above the direct line crossing %g", res.X, demo.StraightSplit())
	}
	if theta1 <= theta2 {
		t.Errorf("ray should bend towards the normal: θ1 = %g, θ2 = %g", theta1, theta2)
	}
}

func TestOptimalSplitTolerance(t *testing.T) {
	res, err := demo.OptimalSplit(&minimize.Settings{XTol: 1e-10})
	if err != nil {
		t.Fatal(err)
	}
	if r := demo.SnellResidual(res.X); math.Abs(r) > 1e-6 {
		t.Errorf("Snell residual at %g = %g", res.X, r)
	}
}

func TestScan(t *testing.T) {
	ys, times := demo.Scan(500)
	if len(ys) != 500 || len(times) != 500 {
		t.Fatalf("got %d samples and %d times", len(ys), len(times))
	}
	if ys[0] != 0 || math.Abs(ys[len(ys)-1]-demo.YTarget) > 1e-12 {
		t.Errorf("samples span [%g, %g]", ys[0], ys[len(ys)-1])
	}

	res, err := demo.OptimalSplit(nil)
	if err != nil {
		t.Fatal(err)
	}
	step := demo.YTarget / 499
	if i := floats.MinIdx(times); math.Abs(ys[i]-res.X) > step {
		t.Errorf("scan minimum at %g, optimizer at %g", ys[i], res.X)
	}
	if res.F > floats.Min(times)+1e-9 {
		t.Errorf("optimizer value %g above scan minimum %g", res.F, floats.Min(times))
	}
}

func TestScanSmall(t *testing.T) {
	ys, times := demo.Scan(2)
	diff := cmp.Diff([]float64{0, 4}, ys)
	if diff != "" {
		t.Error(diff)
	}
	want := []float64{demo.TravelTime(0), demo.TravelTime(4)}
	if diff := cmp.Diff(want, times, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Error(diff)
	}

	ys, times = demo.Scan(1)
	if len(ys) != 1 || ys[0] != 0 || times[0] != demo.TravelTime(0) {
		t.Errorf("Scan(1) = %v, %v", ys, times)
	}
}

func TestBoundsNegativeTarget(t *testing.T) {
	s := Setup{N1: 1, N2: 1.5, D: 2, XTarget: 4, YTarget: -3}
	lo, hi := s.Bounds()
	if lo != -3 || hi != 0 {
		t.Errorf("Bounds() = [%g, %g]", lo, hi)
	}
	res, err := s.OptimalSplit(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.X < lo || res.X > hi {
		t.Errorf("optimum %g outside [%g, %g]", res.X, lo, hi)
	}
	if r := s.SnellResidual(res.X); math.Abs(r) > 1e-3 {
		t.Errorf("Snell residual %g", r)
	}
}
