package format

import "testing"

func TestScaledownMatchesExpectedBitPattern(t *testing.T) {
	cases := []struct {
		cost int64
		want int64
	}{
		{0, 0},
		{4, 16},   // 8*sqrt(4) == 16, exactly representable in the bit-summing form
		{16, 32},  // 8*sqrt(16) == 32
		{0xFFFFFFF, 1 << 13}, // far past the cap, must saturate
	}
	for _, c := range cases {
		if got := scaledown(c.cost); got != c.want {
			t.Errorf("scaledown(%d) = %d, want %d", c.cost, got, c.want)
		}
	}
}

func TestFmtCostExactLineIsFree(t *testing.T) {
	if got := fmtCost(100, 100, 0, 0); got != 0 {
		t.Errorf("fmtCost(100,100,0,0) = %d, want 0", got)
	}
}

func TestFmtCostProportionalToSquaredRatio(t *testing.T) {
	// ratio = |110-100|*100/10 = 100; cost = 100*100/100*1 = 100
	if got := fmtCost(110, 100, 10, 1); got != 100 {
		t.Errorf("fmtCost(110,100,10,1) = %d, want 100", got)
	}
}
