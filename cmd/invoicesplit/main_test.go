package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-total", "1000", "-tax", "18", "-advance", "20", "-upi", "merchant@upi", "-verify"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Base Amount",
		"₹847.46",
		"₹152.54",
		"₹200.00",
		"₹1,000.00",
		"₹800.00",
		"upi://pay?pa=merchant%40upi&am=847.46&tn=Invoice%20-%20Base%20Amount&cu=INR",
		"All links verified.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInvalidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-total", "0", "-upi", "noatsign"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	errs := stderr.String()
	if !strings.Contains(errs, "totalAmount: Total amount must be greater than zero") {
		t.Errorf("stderr missing total error: %s", errs)
	}
	if !strings.Contains(errs, "upiId: Invalid UPI ID format") {
		t.Errorf("stderr missing UPI error: %s", errs)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, got %s", stdout.String())
	}
}

func TestRunStrictNumbers(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-total", "12.5abc", "-upi", "a@b"}, &stdout, &stderr); code != 0 {
		t.Errorf("lenient parse should accept trailing text, stderr = %s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-strict", "-total", "12.5abc", "-upi", "a@b"}, &stdout, &stderr); code != 1 {
		t.Errorf("strict parse should reject trailing text, exit code = %d", code)
	}
}
