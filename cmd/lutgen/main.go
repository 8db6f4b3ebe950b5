// lutgen emits the fixed-point lookup tables used by package vmath
//
//	go run ./cmd/lutgen -out vmath/tables_gen.go
//	go run ./cmd/lutgen -analyze -height 128
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"

	"github.com/lixenwraith/fixcast/vmath"
)

const (
	recipTableSize = 24

	// Tuned 1/1 entry; pulls the [1,2) chord down to cut the worst-case
	// line-height error near walls (30840 in Q7.8 on the 128 row panel)
	recipFirstEntry = 61680
)

var (
	outFlag     = flag.String("out", "", "output file (default stdout)")
	analyzeFlag = flag.Bool("analyze", false, "print line height error per distance band instead of generating")
	heightFlag  = flag.Int("height", 128, "screen height used by -analyze")
)

func main() {
	flag.Parse()

	if *analyzeFlag {
		analyze(*heightFlag)
		return
	}

	src, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lutgen: %v\n", err)
		os.Exit(1)
	}

	if *outFlag == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outFlag, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "lutgen: %v\n", err)
		os.Exit(1)
	}
}

func sinTable() []int32 {
	t := make([]int32, 91)
	for d := range t {
		t[d] = vmath.Q16FromFloat(math.Sin(float64(d) * math.Pi / 180)).Raw()
	}
	return t
}

func recipTable() []int32 {
	t := make([]int32, recipTableSize+1)
	for k := range t {
		t[k] = vmath.Q16FromFloat(1 / float64(k+1)).Raw()
	}
	t[0] = recipFirstEntry
	return t
}

func generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by cmd/lutgen; DO NOT EDIT.\n\n")
	buf.WriteString("package vmath\n\n")
	fmt.Fprintf(&buf, "// RecipTableSize is the largest whole distance with a non-zero reciprocal\n")
	fmt.Fprintf(&buf, "const RecipTableSize = %d\n\n", recipTableSize)

	buf.WriteString("// sinQuarter holds round(sin(deg) * 65536) for deg in [0, 90]\n")
	writeArray(&buf, "sinQuarter", sinTable())

	buf.WriteString("// recipTable holds 1/(k+1) in Q15.16, entry 0 tuned for interpolation on [1, 2)\n")
	writeArray(&buf, "recipTable", recipTable())

	return format.Source(buf.Bytes())
}

func writeArray(buf *bytes.Buffer, name string, vals []int32) {
	fmt.Fprintf(buf, "var %s = [...]int32{\n", name)
	for i, v := range vals {
		if i%10 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%d,", v)
		if i%10 == 9 || i == len(vals)-1 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n\n")
}

// analyze compares table-driven line heights against exact division
// over each whole-distance band, sampling every 1/256 unit
func analyze(height int) {
	fmt.Printf("%-8s %8s %8s\n", "band", "max", "mean")
	for band := 1; band <= recipTableSize; band++ {
		var maxErr, sumErr float64
		samples := 0
		for step := 0; step < 256; step++ {
			d := vmath.Q16FromRaw(int32(band<<vmath.Q16Shift + step<<8))
			approx := float64((int64(height) * int64(vmath.Reciprocal(d))) >> vmath.Q16Shift)
			exact := math.Min(float64(height), math.Floor(float64(height)/d.Float()))
			e := math.Abs(approx - exact)
			maxErr = math.Max(maxErr, e)
			sumErr += e
			samples++
		}
		fmt.Printf("%-8s %8.2f %8.2f\n", fmt.Sprintf("[%d,%d)", band, band+1), maxErr, sumErr/float64(samples))
	}
}
