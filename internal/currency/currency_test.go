package currency

import "testing"

func ptr(f float64) *float64 { return &f }

func TestSalaryDisplay(t *testing.T) {
	tests := []struct {
		name          string
		amount        float64
		perAnnum      bool
		jobCurrency   string
		localCurrency string
		convert       bool
		rate          *float64
		want          *Display
	}{
		{
			name:    "conversion disabled",
			amount:  120000, perAnnum: true, jobCurrency: "USD", localCurrency: "USD",
			convert: false,
			want:    nil,
		},
		{
			name:    "no local currency configured",
			amount:  120000, perAnnum: true, jobCurrency: "USD", localCurrency: "",
			convert: true,
			want:    nil,
		},
		{
			name:    "same currency per annum shown monthly",
			amount:  120000, perAnnum: true, jobCurrency: "USD", localCurrency: "USD",
			convert: true,
			want: &Display{
				Label:  "Salary Offered in USD/Month",
				Amount: 10000,
				Value:  "10000 USD/Month",
			},
		},
		{
			name:    "same currency monthly shown per annum",
			amount:  9000, perAnnum: false, jobCurrency: "eur", localCurrency: "EUR",
			convert: true,
			want: &Display{
				Label:  "Salary Offered in EUR/Annum",
				Amount: 108000,
				Value:  "108000 EUR/Annum",
			},
		},
		{
			name:    "cross currency monthly salary",
			amount:  1000, perAnnum: false, jobCurrency: "USD", localCurrency: "EUR",
			convert: true, rate: ptr(0.9),
			want: &Display{
				Label:  "Salary Offered in EUR/Month",
				Amount: 900,
				Value:  "900 EUR/Month",
			},
		},
		{
			name:    "cross currency per annum normalized to monthly",
			amount:  120000, perAnnum: true, jobCurrency: "USD", localCurrency: "EUR",
			convert: true, rate: ptr(0.9),
			want: &Display{
				Label:  "Salary Offered in EUR/Month",
				Amount: 9000,
				Value:  "9000 EUR/Month",
			},
		},
		{
			name:    "cross currency without a rate is withheld",
			amount:  1000, perAnnum: false, jobCurrency: "USD", localCurrency: "EUR",
			convert: true, rate: nil,
			want:    nil,
		},
		{
			name:    "rounding to nearest integer",
			amount:  100000, perAnnum: true, jobCurrency: "USD", localCurrency: "USD",
			convert: true,
			want: &Display{
				Label:  "Salary Offered in USD/Month",
				Amount: 8333,
				Value:  "8333 USD/Month",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryDisplay("Offered", tt.amount, tt.perAnnum, tt.jobCurrency, tt.localCurrency, tt.convert, tt.rate)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected withheld display, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got nil", tt.want)
			}
			if *got != *tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSalaryDisplayKindLabel(t *testing.T) {
	got := SalaryDisplay("Expected", 1200, true, "USD", "USD", true, nil)
	if got == nil {
		t.Fatal("expected a display")
	}
	if got.Label != "Salary Expected in USD/Month" {
		t.Errorf("got label %q", got.Label)
	}
}
