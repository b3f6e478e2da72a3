package revenue

import "testing"

func TestEstimate_Defaults(t *testing.T) {
	got := DefaultInputs().Estimate()
	want := ROI{Annual: 112500, Undercharged: 9000, LatePay: 3938, TaxSavings: 5625, Total: 18563}
	if got != want {
		t.Fatalf("Estimate = %+v, want %+v", got, want)
	}
}

func TestEstimate_ClampsInputs(t *testing.T) {
	low := Estimate(0, 0)
	if low.Annual != MinRate*MinHours*WorkingWeeks {
		t.Fatalf("low Annual = %d, want %d", low.Annual, MinRate*MinHours*WorkingWeeks)
	}
	high := Estimate(1000, 1000)
	if high.Annual != MaxRate*MaxHours*WorkingWeeks {
		t.Fatalf("high Annual = %d, want %d", high.Annual, MaxRate*MaxHours*WorkingWeeks)
	}
}

func TestEstimate_TotalIsSumOfRoundedItems(t *testing.T) {
	for rate := MinRate; rate <= MaxRate; rate += 35 {
		for hours := MinHours; hours <= MaxHours; hours += 11 {
			r := Estimate(rate, hours)
			if r.Total != r.Undercharged+r.LatePay+r.TaxSavings {
				t.Fatalf("Estimate(%d, %d).Total = %d, want sum of items", rate, hours, r.Total)
			}
		}
	}
}

func TestInputs_Adjust(t *testing.T) {
	in := DefaultInputs().AdjustRate(2).AdjustHours(-3)
	if in.Rate != 85 || in.Hours != 27 {
		t.Fatalf("Inputs = %+v, want rate 85 hours 27", in)
	}
	in = in.AdjustRate(-1000).AdjustHours(1000)
	if in.Rate != MinRate || in.Hours != MaxHours {
		t.Fatalf("Inputs = %+v, want clamped", in)
	}
}
