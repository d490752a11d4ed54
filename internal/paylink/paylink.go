// Package paylink builds payment deep links for settlement instructions.
//
// Links follow the UPI intent format:
//
//	upi://pay?pa=<address>&pn=<name>&am=<amount>&cu=<currency>
package paylink

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultScheme   = "upi"
	DefaultCurrency = "INR"
)

// Builder renders payment links with a fixed scheme and currency.
type Builder struct {
	Scheme   string
	Currency string
}

// NewBuilder returns a Builder, substituting defaults for empty values.
func NewBuilder(scheme, currency string) Builder {
	if scheme == "" {
		scheme = DefaultScheme
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Builder{Scheme: scheme, Currency: currency}
}

// Link returns a link paying amount to the recipient, or "" when the
// recipient has no payment address. The amount is rounded to two decimals.
func (b Builder) Link(address, name string, amount decimal.Decimal) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}

	// Parameter order matters to some payment apps, so url.Values is not used.
	var sb strings.Builder
	sb.WriteString(b.Scheme)
	sb.WriteString("://pay?pa=")
	sb.WriteString(url.QueryEscape(address))
	sb.WriteString("&pn=")
	sb.WriteString(url.QueryEscape(name))
	sb.WriteString("&am=")
	sb.WriteString(amount.StringFixed(2))
	sb.WriteString("&cu=")
	sb.WriteString(url.QueryEscape(b.Currency))
	return sb.String()
}
