package core

import (
	"testing"

	frodomatrix "github.com/BackendStack21/frodo-matrix-go"
)

func TestGetParams(t *testing.T) {
	for _, level := range Levels {
		for _, strategy := range Strategies {
			t.Run(string(level)+"/"+string(strategy), func(t *testing.T) {
				params, err := GetParams(level, strategy)
				if err != nil {
					t.Fatalf("GetParams failed: %v", err)
				}
				if params.Level != level {
					t.Errorf("Expected %s, got %s", level, params.Level)
				}
				if params.Strategy != strategy {
					t.Errorf("Expected strategy %s, got %s", strategy, params.Strategy)
				}
				if err := ValidateParams(params); err != nil {
					t.Errorf("ValidateParams rejected preset: %v", err)
				}
			})
		}
	}

	// Test invalid
	if _, err := GetParams("INVALID", frodomatrix.SHAKE128); err == nil {
		t.Error("GetParams(INVALID) should fail")
	}
	if _, err := GetParams(frodomatrix.Frodo640, "rot13"); err == nil {
		t.Error("GetParams with unknown strategy should fail")
	}
}

func TestPresetsDoNotAlias(t *testing.T) {
	p, _ := GetParams(frodomatrix.Frodo640, frodomatrix.AES128)
	p.N = 8
	if Frodo640Params.N != 640 {
		t.Error("modifying a returned preset changed the package variable")
	}
	if Frodo640Params.Strategy != "" {
		t.Error("GetParams must not bind a strategy on the package variable")
	}
}

func TestPresetValues(t *testing.T) {
	cases := []struct {
		params frodomatrix.Params
		n, q   int
	}{
		{Frodo640Params, 640, 32768},
		{Frodo976Params, 976, 65536},
		{Frodo1344Params, 1344, 65536},
	}
	for _, c := range cases {
		if c.params.N != c.n || c.params.Q != c.q {
			t.Errorf("%s: got (n=%d, q=%d), want (n=%d, q=%d)", c.params.Level, c.params.N, c.params.Q, c.n, c.q)
		}
		if c.params.SeedLen != SeedALen {
			t.Errorf("%s: seed length %d, want %d", c.params.Level, c.params.SeedLen, SeedALen)
		}
		if c.params.N%AESBlockColumns != 0 {
			t.Errorf("%s: n must be a multiple of %d", c.params.Level, AESBlockColumns)
		}
	}
}

func TestValidateParams(t *testing.T) {
	params, _ := GetParams(frodomatrix.Frodo640, frodomatrix.AES128)

	// Test valid params
	if err := ValidateParams(params); err != nil {
		t.Errorf("ValidateParams failed for valid params: %v", err)
	}

	invalid := params
	invalid.N = 0
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject N=0")
	}

	invalid = params
	invalid.Q = 12289
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject non power-of-two Q")
	}

	invalid = params
	invalid.N = 644
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject AES128 with n not a multiple of 8")
	}

	invalid = params
	invalid.SeedLen = 32
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject AES128 with a 32-byte seed")
	}

	// SHAKE128 has no block or key constraints
	shake := params
	shake.Strategy = frodomatrix.SHAKE128
	shake.N = 644
	shake.SeedLen = 32
	if err := ValidateParams(shake); err != nil {
		t.Errorf("ValidateParams rejected valid SHAKE128 params: %v", err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	powers := []int{1, 2, 4, 8, 1024, 32768, 65536}
	nonPowers := []int{-2, 0, 3, 6, 12289, 65535, 65537}

	for _, p := range powers {
		if !IsPowerOfTwo(p) {
			t.Errorf("IsPowerOfTwo(%d) returned false", p)
		}
	}

	for _, np := range nonPowers {
		if IsPowerOfTwo(np) {
			t.Errorf("IsPowerOfTwo(%d) returned true", np)
		}
	}
}
