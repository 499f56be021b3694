package upi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrNotPaymentLink is returned for URIs that are not upi://pay links.
	ErrNotPaymentLink = errors.New("not a upi payment link")
	// ErrMalformedLink is returned when a required parameter is missing or unreadable.
	ErrMalformedLink = errors.New("malformed upi payment link")
)

// PaymentRequest is the decoded content of a payment link.
type PaymentRequest struct {
	Payee       string
	Amount      float64
	Description string
	Currency    string
}

// ParseLink decodes a link produced by EncodePaymentLink.
func ParseLink(link string) (*PaymentRequest, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLink, err)
	}
	if u.Scheme != "upi" || u.Host != "pay" {
		return nil, fmt.Errorf("%w: %s", ErrNotPaymentLink, link)
	}

	params := make(map[string]string, 4)
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key, raw, _ := strings.Cut(pair, "=")
		value, err := url.PathUnescape(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %s: %v", ErrMalformedLink, key, err)
		}
		params[key] = value
	}

	req := &PaymentRequest{
		Payee:       params["pa"],
		Description: params["tn"],
		Currency:    params["cu"],
	}
	if req.Payee == "" {
		return nil, fmt.Errorf("%w: missing pa", ErrMalformedLink)
	}
	req.Amount, err = strconv.ParseFloat(params["am"], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad am %q", ErrMalformedLink, params["am"])
	}

	return req, nil
}
