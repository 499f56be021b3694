// Command invoicesplit prints the base, tax and advance split of an
// invoice total together with a UPI payment link for each component.
//
//	invoicesplit -total 1000 -tax 18 -advance 20 -upi merchant@upi
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mmynk/invoicesplit/internal/quote"
	"github.com/mmynk/invoicesplit/internal/upi"
	"github.com/mmynk/invoicesplit/internal/validation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("invoicesplit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	total := fs.String("total", "", "tax-inclusive invoice total")
	taxRate := fs.String("tax", "18", "tax rate in percent (0-28)")
	advance := fs.String("advance", "0", "advance payment in percent of the total (0-100)")
	upiID := fs.String("upi", "", "payee UPI ID, e.g. merchant@upi")
	prefix := fs.String("prefix", upi.DefaultDescriptionPrefix, "transaction note prefix")
	strict := fs.Bool("strict", false, "reject numbers with trailing text")
	verify := fs.Bool("verify", false, "decode every link and check it against the split")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	engine := &quote.Engine{
		Validator:         validation.Validator{Strict: *strict},
		DescriptionPrefix: *prefix,
	}
	in := validation.Input{Total: *total, TaxRate: *taxRate, AdvancePercent: *advance, UpiID: *upiID}

	report := engine.Validator.Validate(in)
	if !report.AllValid() {
		for _, f := range report.Failures() {
			fmt.Fprintf(stderr, "%s: %s\n", f, report.Get(f).Message)
		}
		return 1
	}

	q := engine.Compute(in)
	printQuote(stdout, q)

	if *verify {
		if err := verifyLinks(q); err != nil {
			fmt.Fprintf(stderr, "verify: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "\nAll links verified.")
	}
	return 0
}

func printQuote(w io.Writer, q quote.Quote) {
	formatted := q.Formatted()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", upi.Base.Label(), formatted[upi.Base.String()])
	fmt.Fprintf(tw, "%s\t%s\n", upi.Tax.Label(), formatted[upi.Tax.String()])
	fmt.Fprintf(tw, "%s\t%s\n", upi.Advance.Label(), formatted[upi.Advance.String()])
	fmt.Fprintf(tw, "Total\t%s\n", formatted["total"])
	fmt.Fprintf(tw, "Balance after advance\t%s\n", formatted["balance"])
	tw.Flush()

	if len(q.Links) == 0 {
		return
	}
	fmt.Fprintln(w, "\nPayment links:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range upi.Categories {
		if link, ok := q.Links[c]; ok {
			fmt.Fprintf(tw, "  %s\t%s\n", c, link)
		}
	}
	tw.Flush()
}

func verifyLinks(q quote.Quote) error {
	for _, c := range upi.Categories {
		link, ok := q.Links[c]
		if !ok {
			continue
		}
		req, err := upi.ParseLink(link)
		if err != nil {
			return fmt.Errorf("%s link: %w", c, err)
		}
		if req.Amount != q.Amount(c) {
			return fmt.Errorf("%s link carries %.2f, split says %.2f", c, req.Amount, q.Amount(c))
		}
	}
	return nil
}
