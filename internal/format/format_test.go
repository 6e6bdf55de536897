package format

import "testing"

func TestDollars(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "$0"},
		{"small", 950, "$950"},
		{"thousands", 40000, "$40,000"},
		{"rounds up", 34543.9, "$34,544"},
		{"millions", 1234567, "$1,234,567"},
		{"negative", -5000, "-$5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dollars(tt.v); got != tt.want {
				t.Errorf("Dollars(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "0"},
		{"hundreds", 123, "123"},
		{"exactly one group", 1000, "1,000"},
		{"fractional people round", 6123456.7, "6,123,457"},
		{"twenty million", 20000000, "20,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.v); got != tt.want {
				t.Errorf("Count(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "0.0%"},
		{"rounds", 30.46, "30.5%"},
		{"truncates noise", 30.4901, "30.5%"},
		{"whole", 100, "100.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.v); got != tt.want {
				t.Errorf("Percent(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
