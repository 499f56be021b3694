// Package upi builds UPI payment request links.
//
// Link format (parameter order is fixed, payment apps parse it literally):
//
//	upi://pay?pa={payee}&am={amount}&tn={note}&cu=INR
package upi

import (
	"math"
	"strings"

	"github.com/mmynk/invoicesplit/internal/money"
)

const (
	// Scheme is the URI prefix of every payment link.
	Scheme = "upi://pay"

	// DefaultDescriptionPrefix starts every transaction note.
	DefaultDescriptionPrefix = "Invoice"
)

// Category identifies which component of an invoice a link collects.
type Category int

const (
	Base Category = iota
	Tax
	Advance
)

// Categories lists the link categories in display order.
var Categories = []Category{Base, Tax, Advance}

// String returns the wire name of the category.
func (c Category) String() string {
	switch c {
	case Base:
		return "base"
	case Tax:
		return "tax"
	case Advance:
		return "advance"
	default:
		return "unknown"
	}
}

// Label is the human-readable component name used in transaction notes.
func (c Category) Label() string {
	switch c {
	case Base:
		return "Base Amount"
	case Tax:
		return "Tax Amount"
	case Advance:
		return "Advance Payment"
	default:
		return "Payment"
	}
}

// Description builds the transaction note, e.g. "Invoice - Base Amount".
func (c Category) Description(prefix string) string {
	if prefix == "" {
		return c.Label()
	}
	return prefix + " - " + c.Label()
}

// EncodePaymentLink builds a payment link for amount to payee. It returns ""
// when payee is empty or amount is not positive.
func EncodePaymentLink(payee string, amount float64, description string) string {
	if payee == "" || math.IsNaN(amount) || amount <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteString("?pa=")
	b.WriteString(EncodeURIComponent(payee))
	b.WriteString("&am=")
	b.WriteString(money.Fixed2(amount))
	b.WriteString("&tn=")
	b.WriteString(EncodeURIComponent(description))
	b.WriteString("&cu=")
	b.WriteString(money.CurrencyCode)
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes every byte of s except ASCII letters,
// digits and - _ . ! ~ * ' ( ). Spaces become %20, never +.
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
