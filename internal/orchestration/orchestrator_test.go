package orchestration

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/natcalc/internal/config"
	apperrors "github.com/agbru/natcalc/internal/errors"
	"github.com/agbru/natcalc/internal/service"
	"github.com/agbru/natcalc/internal/testutil"
)

// stubService returns canned values, standing in for the engine when a
// disagreement with the reference must be provoked.
type stubService struct {
	values []string
	err    error
}

func (s *stubService) Calculate(ctx context.Context, op string, operands []string) (*service.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &service.Result{Op: op, Values: s.values, Duration: time.Millisecond}, nil
}

func quietConfig(op string, operands ...string) config.AppConfig {
	return config.AppConfig{Op: op, Operands: operands, Quiet: true, Timeout: time.Minute}
}

func TestExecuteVerificationAgreement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       string
		operands []string
		want     []string
	}{
		{name: "add", op: "add", operands: []string{"999", "1"}, want: []string{"1000"}},
		{name: "divmod", op: "divmod", operands: []string{"100", "7"}, want: []string{"14", "2"}},
		{name: "pow", op: "pow", operands: []string{"2", "64"}, want: []string{"18446744073709551616"}},
		{name: "sum", op: "sum", operands: []string{"1", "2", "3"}, want: []string{"6"}},
		{
			name:     "large operands",
			op:       "mul",
			operands: []string{"99999999999999999999999999999999999999", "12345678901234567890"},
			want:     []string{"1234567890123456788999999999999999999987654321098765432110"},
		},
	}

	svc := service.NewCalculatorService(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := quietConfig(tt.op, tt.operands...)
			results := ExecuteVerification(context.Background(), svc, cfg, new(bytes.Buffer))
			if len(results) != 2 {
				t.Fatalf("got %d results, want 2", len(results))
			}
			for _, res := range results {
				if res.Err != nil {
					t.Fatalf("%s failed: %v", res.Name, res.Err)
				}
			}
			for i, v := range tt.want {
				if results[0].Values[i] != v || results[1].Values[i] != v {
					t.Errorf("value %d: engine=%q reference=%q, want %q",
						i, results[0].Values[i], results[1].Values[i], v)
				}
			}

			var out bytes.Buffer
			code := AnalyzeVerificationResults(results, cfg, &out)
			if code != apperrors.ExitSuccess {
				t.Errorf("exit code = %d, want success\n%s", code, out.String())
			}
			if !strings.Contains(out.String(), "Both implementations agree") {
				t.Errorf("missing agreement message:\n%s", out.String())
			}
		})
	}
}

func TestAnalyzeVerificationResultsMismatch(t *testing.T) {
	t.Parallel()

	svc := &stubService{values: []string{"41"}}
	cfg := quietConfig("add", "20", "21")
	results := ExecuteVerification(context.Background(), svc, cfg, new(bytes.Buffer))

	var out bytes.Buffer
	code := AnalyzeVerificationResults(results, cfg, &out)
	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(out.String(), "inconsistency") {
		t.Errorf("missing mismatch message:\n%s", out.String())
	}
}

func TestAnalyzeVerificationResultsOneSidedFailure(t *testing.T) {
	t.Parallel()

	svc := &stubService{err: errors.New("spurious failure")}
	cfg := quietConfig("add", "1", "2")
	results := ExecuteVerification(context.Background(), svc, cfg, new(bytes.Buffer))

	var out bytes.Buffer
	code := AnalyzeVerificationResults(results, cfg, &out)
	if code != apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
}

func TestAnalyzeVerificationResultsBothReject(t *testing.T) {
	t.Parallel()

	svc := service.NewCalculatorService(0)
	cfg := quietConfig("quo", "5", "0")
	results := ExecuteVerification(context.Background(), svc, cfg, new(bytes.Buffer))

	var out bytes.Buffer
	code := AnalyzeVerificationResults(results, cfg, &out)
	if code == apperrors.ExitSuccess || code == apperrors.ExitErrorMismatch {
		t.Errorf("exit code = %d, want a plain failure code", code)
	}
	if !strings.Contains(out.String(), "Both implementations rejected") {
		t.Errorf("missing agreement-on-failure message:\n%s", out.String())
	}
}

func TestVerificationReportTable(t *testing.T) {
	t.Parallel()

	svc := service.NewCalculatorService(0)
	cfg := quietConfig("sub", "1000", "1")
	results := ExecuteVerification(context.Background(), svc, cfg, new(bytes.Buffer))

	var out bytes.Buffer
	AnalyzeVerificationResults(results, cfg, &out)
	report := testutil.StripAnsiCodes(out.String())
	for _, want := range []string{"Implementation", "Duration", "Status", "engine", "math/big"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
