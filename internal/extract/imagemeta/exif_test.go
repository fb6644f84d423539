package imagemeta

import "testing"

func TestFormatExposure_Fraction(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.004, "1/250"},
		{0.0005, "1/2000"},
		{0.5, "1/2"},
		{1.0, "1.0s"},
		{2.0, "2.0s"},
		{30.0, "30.0s"},
	}
	for _, tc := range cases {
		if got := formatExposure(tc.seconds); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.seconds, tc.want, got)
		}
	}
}

func TestFormatAperture(t *testing.T) {
	cases := []struct {
		apex float64
		want string
	}{
		{4.0, "f/4.0"},
		{2.0, "f/2.0"},
		{5.0, "f/5.7"},
		{0.0, "f/1.0"},
	}
	for _, tc := range cases {
		if got := formatAperture(tc.apex); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.apex, tc.want, got)
		}
	}
}

func TestHemisphere(t *testing.T) {
	// Recorded reference wins.
	if got := hemisphere("S", true, "N", "S"); got != "S" {
		t.Errorf("expected S from reference, got %q", got)
	}
	// Unrecognized reference falls back to the sign.
	if got := hemisphere("", true, "N", "S"); got != "N" {
		t.Errorf("expected N from sign, got %q", got)
	}
	if got := hemisphere("x", false, "E", "W"); got != "W" {
		t.Errorf("expected W from sign, got %q", got)
	}
}

func TestOrientationNames_Coverage(t *testing.T) {
	for code := 1; code <= 8; code++ {
		if orientationNames[code] == "" {
			t.Errorf("missing name for orientation %d", code)
		}
	}
	if orientationNames[1] != "Normal" {
		t.Errorf("expected Normal for code 1, got %q", orientationNames[1])
	}
}
