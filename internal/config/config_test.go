package config

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("natcalc", []string{"1", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Op != DefaultOp {
		t.Errorf("Op = %q, want %q", cfg.Op, DefaultOp)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.MaxDigits != DefaultMaxDigits {
		t.Errorf("MaxDigits = %d, want %d", cfg.MaxDigits, DefaultMaxDigits)
	}
	if len(cfg.Operands) != 2 || cfg.Operands[0] != "1" || cfg.Operands[1] != "2" {
		t.Errorf("Operands = %v, want [1 2]", cfg.Operands)
	}
}

func TestParseConfigFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "operation and operands",
			args: []string{"-op", "quo", "100", "7"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Op != "quo" {
					t.Errorf("Op = %q", cfg.Op)
				}
				if len(cfg.Operands) != 2 {
					t.Errorf("Operands = %v", cfg.Operands)
				}
			},
		},
		{
			name: "operation is lowercased",
			args: []string{"-op", "MUL", "3", "4"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Op != "mul" {
					t.Errorf("Op = %q, want mul", cfg.Op)
				}
			},
		},
		{
			name: "sum accepts many operands",
			args: []string{"-op", "sum", "1", "2", "3", "4", "5"},
			check: func(t *testing.T, cfg AppConfig) {
				if len(cfg.Operands) != 5 {
					t.Errorf("Operands = %v", cfg.Operands)
				}
			},
		},
		{
			name: "timeout and verify",
			args: []string{"-timeout", "30s", "-verify", "12", "34"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Timeout != 30*time.Second {
					t.Errorf("Timeout = %v", cfg.Timeout)
				}
				if !cfg.Verify {
					t.Error("Verify not set")
				}
			},
		},
		{
			name: "server mode needs no operands",
			args: []string{"-server", "-port", "9090"},
			check: func(t *testing.T, cfg AppConfig) {
				if !cfg.ServerMode || cfg.Port != "9090" {
					t.Errorf("ServerMode = %v, Port = %q", cfg.ServerMode, cfg.Port)
				}
			},
		},
		{
			name: "output shorthand and quiet",
			args: []string{"-o", "result.txt", "-q", "7", "8"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.OutputFile != "result.txt" {
					t.Errorf("OutputFile = %q", cfg.OutputFile)
				}
				if !cfg.Quiet {
					t.Error("Quiet not set")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("natcalc", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown operation", args: []string{"-op", "frobnicate", "1", "2"}},
		{name: "missing operands", args: []string{"-op", "add", "1"}},
		{name: "too many operands", args: []string{"-op", "cmp", "1", "2", "3"}},
		{name: "sum without operands", args: []string{"-op", "sum"}},
		{name: "zero timeout", args: []string{"-timeout", "0s", "1", "2"}},
		{name: "negative max digits", args: []string{"-max-digits", "-1", "1", "2"}},
		{name: "unknown flag", args: []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if _, err := ParseConfig("natcalc", tt.args, &out); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestParseConfigUsageListsOperations(t *testing.T) {
	var out bytes.Buffer
	_, err := ParseConfig("natcalc", []string{"-op", "bogus", "1", "2"}, &out)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, op := range Operations {
		if !strings.Contains(out.String(), op) {
			t.Errorf("usage output missing operation %q", op)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"OP", "mul")
	t.Setenv(EnvPrefix+"TIMEOUT", "45s")
	t.Setenv(EnvPrefix+"MAX_DIGITS", "500")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"PORT", "3000")

	cfg, err := ParseConfig("natcalc", []string{"6", "7"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Op != "mul" {
		t.Errorf("Op = %q, want mul from env", cfg.Op)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s from env", cfg.Timeout)
	}
	if cfg.MaxDigits != 500 {
		t.Errorf("MaxDigits = %d, want 500 from env", cfg.MaxDigits)
	}
	if !cfg.Quiet {
		t.Error("Quiet not set from env")
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000 from env", cfg.Port)
	}
}

func TestCLIFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"OP", "mul")
	t.Setenv(EnvPrefix+"TIMEOUT", "45s")

	cfg, err := ParseConfig("natcalc", []string{"-op", "sub", "-timeout", "10s", "9", "4"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Op != "sub" {
		t.Errorf("Op = %q, CLI flag should win over env", cfg.Op)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, CLI flag should win over env", cfg.Timeout)
	}
}

func TestEnvInvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvPrefix+"TIMEOUT", "not-a-duration")
	t.Setenv(EnvPrefix+"MAX_DIGITS", "many")

	cfg, err := ParseConfig("natcalc", []string{"1", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default on invalid env", cfg.Timeout)
	}
	if cfg.MaxDigits != DefaultMaxDigits {
		t.Errorf("MaxDigits = %d, want default on invalid env", cfg.MaxDigits)
	}
}

func TestIsKnownOp(t *testing.T) {
	for _, op := range Operations {
		if !IsKnownOp(op) {
			t.Errorf("IsKnownOp(%q) = false", op)
		}
	}
	if IsKnownOp("gcd") {
		t.Error("IsKnownOp(gcd) = true, operation is not supported")
	}
}
