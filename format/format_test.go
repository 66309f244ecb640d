package format_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/eis/bcd"
	"github.com/calebcase/eis/decimal"
	"github.com/calebcase/eis/format"
	"github.com/calebcase/eis/operand"
)

func mustParse(t *testing.T, s string) *decimal.Number {
	t.Helper()

	x, err := decimal.Parse(s)
	require.NoError(t, err)

	return x
}

func TestFormat(t *testing.T) {
	type TC struct {
		name  string
		value string
		dst   format.Destination

		digits    string
		overflow  bool
		truncated bool
		exponent  int32
		Mark      error
	}

	tcs := []TC{
		{
			name:     "fits",
			value:    "579",
			dst:      format.Destination{Width: bcd.Nibble, N: 7, Style: operand.Unsigned},
			digits:   "0000579",
			exponent: 0,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "leading sign uses a cell",
			value:    "-200",
			dst:      format.Destination{Width: bcd.Char, N: 7, Style: operand.LeadingSign},
			digits:   "000200",
			exponent: 0,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "overflow keeps low order digits",
			value:    "9801",
			dst:      format.Destination{Width: bcd.Nibble, N: 3, Style: operand.Unsigned},
			digits:   "801",
			overflow: true,
			exponent: 0,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "rounding suppresses overflow",
			value:    "9801",
			dst:      format.Destination{Width: bcd.Nibble, N: 3, Style: operand.Unsigned, Round: true},
			digits:   "980",
			exponent: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "rounding keeps high order digits",
			value:    "12345",
			dst:      format.Destination{Width: bcd.Nibble, N: 3, Style: operand.Unsigned, Round: true},
			digits:   "123",
			exponent: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			name:      "rescale truncates",
			value:     "1.25",
			dst:       format.Destination{Width: bcd.Char, N: 3, Style: operand.Unsigned, SF: -1},
			digits:    "012",
			truncated: true,
			exponent:  -1,
			Mark:      oops.New("unexpected"),
		},
		{
			name:     "rescale extends",
			value:    "1.5",
			dst:      format.Destination{Width: bcd.Char, N: 4, Style: operand.TrailingSign, SF: -2},
			digits:   "150",
			exponent: -2,
			Mark:     oops.New("unexpected"),
		},
		{
			name:      "rounded rescale overflows, truncating rescale fits",
			value:     "9.99",
			dst:       format.Destination{Width: bcd.Nibble, N: 2, Style: operand.Unsigned, SF: -1},
			digits:    "99",
			truncated: true,
			exponent:  -1,
			Mark:      oops.New("unexpected"),
		},
		{
			name:     "floating widened",
			value:    "5",
			dst:      format.Destination{Width: bcd.Char, N: 6, Style: operand.Floating},
			digits:   "5000",
			exponent: -3,
			Mark:     oops.New("unexpected"),
		},
		{
			name:      "floating truncated",
			value:     "123456",
			dst:       format.Destination{Width: bcd.Char, N: 6, Style: operand.Floating},
			digits:    "1234",
			truncated: true,
			exponent:  2,
			Mark:      oops.New("unexpected"),
		},
		{
			name:     "floating rounded",
			value:    "123456",
			dst:      format.Destination{Width: bcd.Nibble, N: 7, Style: operand.Floating, Round: true},
			digits:   "1235",
			exponent: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "floating at exponent floor",
			value:    "1E-128",
			dst:      format.Destination{Width: bcd.Char, N: 10, Style: operand.Floating},
			digits:   "00000001",
			exponent: -128,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "floating widened to exponent floor",
			value:    "1E-126",
			dst:      format.Destination{Width: bcd.Char, N: 10, Style: operand.Floating},
			digits:   "00000100",
			exponent: -128,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "floating zero keeps exponent",
			value:    "0E+127",
			dst:      format.Destination{Width: bcd.Nibble, N: 7, Style: operand.Floating},
			digits:   "0000",
			exponent: 127,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			ctx := decimal.NewContext()

			res, err := format.Format(ctx, mustParse(t, tc.value), tc.dst)
			require.NoError(t, err, tc.Mark)

			t.Logf("Result: %s\n", spew.Sdump(res.Digits, res.Overflow, res.Truncated))

			require.Equal(t, tc.digits, res.Digits, tc.Mark)
			require.Equal(t, tc.overflow, res.Overflow, tc.Mark)
			require.Equal(t, tc.truncated, res.Truncated, tc.Mark)
			require.Equal(t, tc.exponent, res.Value.Exponent(), tc.Mark)

			require.Equal(t, decimal.DefaultPrecision, ctx.Precision(), tc.Mark)
			require.Equal(t, decimal.RoundHalfEven, ctx.Rounding(), tc.Mark)
		})
	}
}

func TestFormatNoRoom(t *testing.T) {
	dst := format.Destination{Width: bcd.Nibble, N: 3, Style: operand.Floating}
	require.Equal(t, 0, dst.AdjustedLength())

	res, err := format.Format(decimal.NewContext(), mustParse(t, "1"), dst)
	require.NoError(t, err)
	require.True(t, res.Overflow)
	require.Empty(t, res.Digits)
}

func TestFitLaw(t *testing.T) {
	r := rand.New(rand.NewSource(645))
	ctx := decimal.NewContext()

	for i := 0; i < 200; i++ {
		n := 1 + r.Intn(40)
		dst := format.Destination{Width: bcd.Char, N: n, Style: operand.Unsigned}

		size := 1 + r.Intn(60)
		var sb strings.Builder
		sb.WriteByte(byte('1' + r.Intn(9)))
		for j := 1; j < size; j++ {
			sb.WriteByte(byte('0' + r.Intn(10)))
		}
		coeff := sb.String()

		res, err := format.Format(ctx, mustParse(t, coeff), dst)
		require.NoError(t, err)

		if size <= n {
			require.False(t, res.Overflow, coeff)
			require.Equal(t, strings.Repeat("0", n-size)+coeff, res.Digits)
		} else {
			require.True(t, res.Overflow, coeff)
			require.Equal(t, coeff[size-n:], res.Digits)
		}
		require.False(t, res.Truncated)
	}
}

func TestDivisorExceeds(t *testing.T) {
	type TC struct {
		dividend, divisor string
		exceeds           bool
	}

	tcs := []TC{
		{"1234", "58", false},
		{"12", "58", true},
		{"5800", "12", false},
		{"1.234", "5800", true},
		{"58", "58000", true},
		{"58", "58", false},
		{"0", "3", true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.dividend, tc.divisor), func(t *testing.T) {
			got, err := format.DivisorExceeds(mustParse(t, tc.dividend), mustParse(t, tc.divisor))
			require.NoError(t, err)
			require.Equal(t, tc.exceeds, got)
		})
	}
}

func TestFormatDiv(t *testing.T) {
	dst := format.Destination{Width: bcd.Char, N: 7, Style: operand.Floating}

	t.Run("leading zero", func(t *testing.T) {
		ctx := decimal.NewContext()
		dividend := mustParse(t, "12")
		divisor := mustParse(t, "58")

		q, err := ctx.Quo(dividend, divisor)
		require.NoError(t, err)

		naive, err := format.Format(ctx, q, dst)
		require.NoError(t, err)
		require.Equal(t, "20689", naive.Digits)

		res, err := format.FormatDiv(ctx, q, dst, dividend, divisor)
		require.NoError(t, err)
		require.True(t, res.LeadingZero)
		require.Equal(t, "02068", res.Digits)
		require.Equal(t, naive.Value.Exponent()+1, res.Value.Exponent())
		require.True(t, res.Truncated)
	})

	t.Run("smaller divisor coefficient", func(t *testing.T) {
		ctx := decimal.NewContext()
		dividend := mustParse(t, "1234")
		divisor := mustParse(t, "58")

		q, err := ctx.Quo(dividend, divisor)
		require.NoError(t, err)

		res, err := format.FormatDiv(ctx, q, dst, dividend, divisor)
		require.NoError(t, err)
		require.False(t, res.LeadingZero)
		require.Equal(t, "21275", res.Digits)
		require.Equal(t, int32(-3), res.Value.Exponent())
		require.True(t, res.Truncated)
	})

	t.Run("no leading zero", func(t *testing.T) {
		ctx := decimal.NewContext()
		dividend := mustParse(t, "5800")
		divisor := mustParse(t, "12")

		q, err := ctx.Quo(dividend, divisor)
		require.NoError(t, err)

		res, err := format.FormatDiv(ctx, q, dst, dividend, divisor)
		require.NoError(t, err)
		require.False(t, res.LeadingZero)
		require.Equal(t, "48333", res.Digits)
		require.Equal(t, int32(-2), res.Value.Exponent())
	})

	t.Run("fixed destination", func(t *testing.T) {
		ctx := decimal.NewContext()
		dividend := mustParse(t, "1234")
		divisor := mustParse(t, "58")

		q, err := ctx.Quo(dividend, divisor)
		require.NoError(t, err)

		fixed := format.Destination{Width: bcd.Char, N: 4, Style: operand.Unsigned}
		res, err := format.FormatDiv(ctx, q, fixed, dividend, divisor)
		require.NoError(t, err)
		require.False(t, res.LeadingZero)
		require.Equal(t, "0021", res.Digits)
		require.True(t, res.Truncated)
	})
}
