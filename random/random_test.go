package random

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubIntN pins the integer source to the given draws and restores it on
// cleanup.
func stubIntN(t *testing.T, draws ...int) *[]int {
	t.Helper()
	requested := []int{}
	i := 0
	previous := IntNFunc
	IntNFunc = func(n int) int {
		requested = append(requested, n)
		draw := draws[i%len(draws)]
		i++
		return draw % n
	}
	t.Cleanup(func() { IntNFunc = previous })
	return &requested
}

func stubFloat64(t *testing.T, sample float64) {
	t.Helper()
	previous := Float64Func
	Float64Func = func() float64 { return sample }
	t.Cleanup(func() { Float64Func = previous })
}

func TestNumberArgumentResolution(t *testing.T) {
	type testCase struct {
		name      string
		args      []interface{}
		expectN   int     // IntNFunc argument on the integer path
		base      float64 // value added to the integer draw
		wantFloat bool
	}

	tests := []testCase{
		{name: "no arguments defaults to [0,1]", args: nil, expectN: 2, base: 0},
		{name: "single bound is the upper bound", args: []interface{}{5}, expectN: 6, base: 0},
		{name: "explicit bounds", args: []interface{}{2, 4}, expectN: 3, base: 2},
		{name: "inverted bounds swap", args: []interface{}{8, 2}, expectN: 7, base: 2},
		{name: "negative lower bound", args: []interface{}{-3, 1}, expectN: 5, base: -3},
		{name: "boolean upper is the floating flag", args: []interface{}{5, true}, wantFloat: true},
		{name: "boolean lower is the floating flag", args: []interface{}{true}, wantFloat: true},
		{name: "false flag keeps integer path", args: []interface{}{5, false}, expectN: 6, base: 0},
		{name: "explicit floating flag", args: []interface{}{0, 10, true}, wantFloat: true},
		{name: "false third flag keeps integer path", args: []interface{}{0, 10, false}, expectN: 11, base: 0},
		{name: "non-boolean third drops third and second", args: []interface{}{3, 10, "x"}, expectN: 4, base: 0},
		{name: "nil arguments are unset", args: []interface{}{nil, 5}, expectN: 6, base: 0},
		{name: "non-integral bound forces float", args: []interface{}{0, 2.5}, wantFloat: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.wantFloat {
				// a pinned 0.5 sample scales to a fractional value on
				// every float range exercised here
				stubFloat64(t, 0.5)
				got := Number(tc.args...)
				assert.NotEqual(t, math.Trunc(got), got)
				return
			}
			requested := stubIntN(t, 0)
			got := Number(tc.args...)
			assert.Equal(t, []int{tc.expectN}, *requested)
			assert.Equal(t, tc.base, got)
		})
	}
}

func TestNumberDegenerateRange(t *testing.T) {
	for i := 0; i < 32; i++ {
		assert.Equal(t, float64(5), Number(5, 5))
	}
}

func TestNumberIntegerRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		got := Number(0, 10)
		assert.Equal(t, math.Trunc(got), got)
		assert.GreaterOrEqual(t, got, float64(0))
		assert.LessOrEqual(t, got, float64(10))
	}
}

func TestNumberFloatClampedToUpperBound(t *testing.T) {
	// a sample close to 1 plus the truncation epsilon would overshoot the
	// range without the clamp
	stubFloat64(t, 0.9999999)
	got := Number(0, 10, true)
	assert.LessOrEqual(t, got, float64(10))
	assert.GreaterOrEqual(t, got, float64(0))
}

func TestNumberFloatRange(t *testing.T) {
	for i := 0; i < 256; i++ {
		got := Number(1.5, 3.5)
		assert.GreaterOrEqual(t, got, 1.5)
		assert.LessOrEqual(t, got, 3.5)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(0, false))
	assert.Equal(t, "", String(-3, false))

	mixed := String(64, false)
	assert.Len(t, mixed, 64)
	for _, r := range mixed {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}

	lowered := String(64, true)
	assert.Len(t, lowered, 64)
	assert.Equal(t, strings.ToLower(lowered), lowered)
}

func TestStringLowercasesAfterSampling(t *testing.T) {
	// alphabet[36] is 'A'; the lower flag must fold it after the draw
	stubIntN(t, 36)
	assert.Equal(t, "aaaa", String(4, true))
}

func TestItem(t *testing.T) {
	type testCase struct {
		name   string
		value  interface{}
		expect interface{}
	}

	tests := []testCase{
		{name: "sequence element", value: []interface{}{"a", "b", "c"}, expect: "b"},
		{name: "string character", value: "xyz", expect: "y"},
		{name: "empty sequence", value: []interface{}{}, expect: nil},
		{name: "empty string", value: "", expect: nil},
		{name: "non indexable", value: 42, expect: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stubIntN(t, 1)
			assert.Equal(t, tc.expect, Item(tc.value))
		})
	}
}
