// Command generate-golden regenerates the golden file used by the bignat
// engine tests. math/big serves as the oracle: every case records the exact
// result of one arithmetic operation on a pair of decimal operands.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenCase represents a single test case in the golden file.
type GoldenCase struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Op     string `json:"op"`
	Result string `json:"result"`
}

// operandPairs covers the interesting shapes: zero operands, equal
// operands, the documented concrete scenarios, values straddling the native
// 64-bit range, powers of two, long digit runs, and wide decimal
// expansions.
var operandPairs = [][2]string{
	{"0", "5"},
	{"5", "5"},
	{"100", "7"},
	{"999", "999"},
	{"12345678901234567890", "987654321"},
	{"18446744073709551616", "4294967296"},
	{"340282366920938463463374607431768211456", "18446744073709551616"},
	{"99999999999999999999999999999999999999999999999999", "7"},
	{"9999999999999999999999999999999999999999", "99999999999999999999"},
	{"123456789123456789123456789123456789", "424242424242424242"},
	{"31415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679", "2718281828459045235360287471352662497757247093699959574966967627724076630353"},
	{"98765432109876543210987654321098765432109876543210", "12345678901234567890123456789"},
}

// exponentCases exercise the power operation; the second element is the
// exponent, kept small enough that regeneration stays fast.
var exponentCases = [][2]string{
	{"0", "0"},
	{"0", "5"},
	{"2", "64"},
	{"3", "40"},
	{"999", "3"},
	{"10", "30"},
	{"12345", "10"},
}

func main() {
	outputDir := flag.String("out", "internal/bignat/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "arith_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var data []GoldenCase

	fmt.Println("Generating golden data...")

	for _, pair := range operandPairs {
		a := mustBig(pair[0])
		b := mustBig(pair[1])

		minuend, subtrahend := a, b
		if a.Cmp(b) < 0 {
			minuend, subtrahend = b, a
		}

		data = append(data, GoldenCase{A: pair[0], B: pair[1], Op: "add", Result: new(big.Int).Add(a, b).String()})
		data = append(data, GoldenCase{A: minuend.String(), B: subtrahend.String(), Op: "sub", Result: new(big.Int).Sub(minuend, subtrahend).String()})
		data = append(data, GoldenCase{A: pair[0], B: pair[1], Op: "mul", Result: new(big.Int).Mul(a, b).String()})
		if b.Sign() != 0 {
			quo, rem := new(big.Int).QuoRem(a, b, new(big.Int))
			data = append(data, GoldenCase{A: pair[0], B: pair[1], Op: "quo", Result: quo.String()})
			data = append(data, GoldenCase{A: pair[0], B: pair[1], Op: "rem", Result: rem.String()})
		}
		fmt.Printf("Generated cases for %s op %s\n", pair[0], pair[1])
	}

	for _, pair := range exponentCases {
		v := mustBig(pair[0])
		e := mustBig(pair[1])
		result := new(big.Int).Exp(v, e, nil)
		data = append(data, GoldenCase{A: pair[0], B: pair[1], Op: "exp", Result: result.String()})
		fmt.Printf("Generated %s^%s\n", pair[0], pair[1])
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "Invalid operand %q\n", s)
		os.Exit(1)
	}
	return v
}
