package i18n

import (
	"math/big"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

const (
	// TonDecimals is the number of decimal places of TON, amounts are given in nanoTONs.
	TonDecimals = 9
	// DefaultFormatDecimals is the display precision of the shortened form.
	DefaultFormatDecimals = 2
	// MinusSign is the sign put in front of negative and outgoing amounts.
	MinusSign = "−"
	// PlusSign is the sign put in front of incoming amounts.
	PlusSign = "+"

	groupSeparator = " "
)

type formatOptions struct {
	decimals        int32
	formatDecimals  int32
	prefix          string
	postfix         string
	absolute        bool
	withoutTruncate bool
}

type FormatOption func(o *formatOptions)

// WithDecimals sets the number of decimal places of the asset. TonDecimals by default.
func WithDecimals(decimals int32) FormatOption {
	return func(o *formatOptions) {
		o.decimals = decimals
	}
}

// WithFormatDecimals sets the display precision of the shortened form.
func WithFormatDecimals(n int32) FormatOption {
	return func(o *formatOptions) {
		o.formatDecimals = n
	}
}

// WithPrefix puts a direction marker in front of the amount.
func WithPrefix(prefix string) FormatOption {
	return func(o *formatOptions) {
		o.prefix = prefix
	}
}

// WithPostfix appends a unit symbol separated by a space.
func WithPostfix(postfix string) FormatOption {
	return func(o *formatOptions) {
		o.postfix = postfix
	}
}

// Absolute drops the sign of negative amounts.
func Absolute() FormatOption {
	return func(o *formatOptions) {
		o.absolute = true
	}
}

// WithoutTruncate shows the amount with full precision instead of the shortened form.
func WithoutTruncate() FormatOption {
	return func(o *formatOptions) {
		o.withoutTruncate = true
	}
}

// FormatNano translates an amount given as a decimal string of indivisible units into a
// user-friendly form according to the scheme (# ### or #.##).
func FormatNano(amount string, opts ...FormatOption) (string, error) {
	var value big.Int
	if _, ok := value.SetString(strings.TrimSpace(amount), 10); !ok {
		return "", errors.Errorf("invalid amount %q", amount)
	}
	return FormatNanoBig(&value, opts...), nil
}

// FormatNanoInt is FormatNano for amounts that fit into int64, like nanoTONs.
func FormatNanoInt(amount int64, opts ...FormatOption) string {
	return FormatNanoBig(big.NewInt(amount), opts...)
}

// FormatNanoBig is FormatNano for amounts of arbitrary size.
func FormatNanoBig(amount *big.Int, opts ...FormatOption) string {
	options := formatOptions{
		decimals:       TonDecimals,
		formatDecimals: DefaultFormatDecimals,
	}
	for _, o := range opts {
		o(&options)
	}
	x := decimal.NewFromBigInt(amount, -options.decimals)
	negative := x.Sign() < 0
	x = x.Abs()
	if !options.withoutTruncate {
		x = truncate(x, options.formatDecimals)
	}
	var b strings.Builder
	b.WriteString(options.prefix)
	if negative && !options.absolute && !x.IsZero() {
		b.WriteString(MinusSign)
	}
	b.WriteString(formatDecimal(x))
	if options.postfix != "" {
		b.WriteString(" ")
		b.WriteString(options.postfix)
	}
	return b.String()
}

// ParseNano converts a formatted amount back to indivisible units.
// Direction markers, group separators and the unit postfix are ignored,
// a leading minus sign makes the result negative.
// A space is a group separator only if exactly three digits follow it.
func ParseNano(s string, decimals int32) (*big.Int, error) {
	runes := []rune(strings.TrimSpace(s))
	var (
		digits   strings.Builder
		negative bool
		fraction bool
		i        int
	)
	for ; i < len(runes) && !isDigit(runes[i]) && runes[i] != '.'; i++ {
		switch r := runes[i]; {
		case r == '+' || isSpace(r):
		case r == '-' || r == '−':
			negative = true
		default:
			return nil, errors.Errorf("unexpected %q in amount %q", r, s)
		}
	}
loop:
	for ; i < len(runes); i++ {
		switch r := runes[i]; {
		case isDigit(r):
			digits.WriteRune(r)
		case r == '.' && !fraction:
			fraction = true
			digits.WriteRune(r)
		case isSpace(r) && !fraction && digits.Len() > 0 && isDigitGroup(runes[i+1:]):
		case isSpace(r):
			break loop
		default:
			return nil, errors.Errorf("unexpected %q in amount %q", r, s)
		}
	}
	if digits.Len() == 0 {
		return nil, errors.Errorf("no digits in amount %q", s)
	}
	d, err := decimal.NewFromString(digits.String())
	if err != nil {
		return nil, errors.Wrapf(err, "parse amount %q", s)
	}
	d = d.Shift(decimals)
	if !d.Equal(d.Truncate(0)) {
		return nil, errors.Errorf("amount %q has more than %d decimals", s, decimals)
	}
	value := d.BigInt()
	if negative {
		value.Neg(value)
	}
	return value, nil
}

// isDigitGroup reports whether runes start with three digits that end the group:
// the number ends right after them or continues with a separator or a fraction.
func isDigitGroup(runes []rune) bool {
	if len(runes) < 3 || !isDigit(runes[0]) || !isDigit(runes[1]) || !isDigit(runes[2]) {
		return false
	}
	return len(runes) == 3 || runes[3] == '.' || isSpace(runes[3])
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\u00a0' || r == '\u2009'
}

// truncate cuts a non-negative d towards zero keeping n decimal places,
// or n significant digits if d is below one.
func truncate(d decimal.Decimal, n int32) decimal.Decimal {
	if n <= 0 {
		return d.Truncate(0)
	}
	if d.IsZero() {
		return decimal.Zero
	}
	one := decimal.New(1, 0)
	if d.GreaterThanOrEqual(one) {
		return d.Truncate(n)
	}
	for i := int32(1); i <= 1-d.Exponent(); i++ {
		if d.Shift(i).GreaterThanOrEqual(one) {
			return d.Truncate(i + n - 1)
		}
	}
	return d
}

func formatDecimal(d decimal.Decimal) string {
	intPart, fraction, _ := strings.Cut(d.String(), ".")
	if fraction == "" {
		return groupDigits(intPart)
	}
	return groupDigits(intPart) + "." + fraction
}

func groupDigits(s string) string {
	length := len(s)
	if length <= 3 {
		return s
	}
	var result []string
	for length > 3 {
		result = append([]string{s[length-3 : length]}, result...)
		length -= 3
	}
	result = append([]string{s[:length]}, result...)
	return strings.Join(result, groupSeparator)
}
