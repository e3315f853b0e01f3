package credit

import (
	"fmt"
	"strings"

	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// Render flattens the record into the fixed labeled-section text layout that
// memo prompts embed. The section order and labels are part of the prompt
// contract with the model.
func (d *Detail) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "CREDIT REQUEST DETAILS FOR %s:\n\n", d.RequestID)

	b.WriteString("BORROWER INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", d.Borrower.Name)
	fmt.Fprintf(&b, "- Credit Score: %d\n", d.Borrower.CreditScore)
	fmt.Fprintf(&b, "- Annual Income: %s\n", money(d.Borrower.AnnualIncome))
	fmt.Fprintf(&b, "- Debt-to-Income Ratio: %s\n", percent(d.Borrower.DebtToIncomeRatio))
	fmt.Fprintf(&b, "- Employment: %s\n", d.Borrower.EmploymentHistory)
	fmt.Fprintf(&b, "- Assets: %s\n", money(d.Borrower.Assets))
	fmt.Fprintf(&b, "- Liabilities: %s\n\n", money(d.Borrower.Liabilities))

	b.WriteString("COLLATERAL INFORMATION:\n")
	fmt.Fprintf(&b, "- Property Type: %s\n", d.Collateral.PropertyType)
	fmt.Fprintf(&b, "- Property Value: %s\n", money(d.Collateral.PropertyValue))
	fmt.Fprintf(&b, "- LTV Ratio: %s\n", percent(d.Collateral.LTVRatio))
	fmt.Fprintf(&b, "- Appraisal Date: %s\n", d.Collateral.AppraisalDate)
	fmt.Fprintf(&b, "- Address: %s\n\n", d.Collateral.Address)

	b.WriteString("PRICING & FEES:\n")
	fmt.Fprintf(&b, "- Interest Rate: %.2f%%\n", d.Pricing.InterestRate)
	fmt.Fprintf(&b, "- Loan Term: %d months\n", d.Pricing.LoanTermMonths)
	fmt.Fprintf(&b, "- Monthly Payment: %s\n", money(d.Pricing.MonthlyPayment))
	fmt.Fprintf(&b, "- Origination Fee: %s\n", money(d.Pricing.OriginationFee))
	fmt.Fprintf(&b, "- Processing Fee: %s\n", money(d.Pricing.ProcessingFee))
	fmt.Fprintf(&b, "- Total Fees: %s\n\n", money(d.Pricing.TotalFees))

	b.WriteString("LOAN DETAILS:\n")
	fmt.Fprintf(&b, "- Loan Amount: %s\n", money(d.LoanAmount))
	fmt.Fprintf(&b, "- Loan Purpose: %s\n", d.LoanPurpose)
	fmt.Fprintf(&b, "- Status: %s\n", d.Status)
	fmt.Fprintf(&b, "- Risk Rating: %s\n\n", d.RiskRating)

	b.WriteString("CONDITIONS:\n")
	writeList(&b, d.Conditions)
	b.WriteString("\nCOVENANTS:\n")
	writeList(&b, d.Covenants)

	fmt.Fprintf(&b, "\nREGULATORY NOTES:\n%s\n\n", d.RegulatoryNotes)

	b.WriteString("DATES:\n")
	fmt.Fprintf(&b, "- Created: %s\n", d.CreatedDate)
	fmt.Fprintf(&b, "- Updated: %s\n", d.UpdatedDate)

	return b.String()
}

// RenderError produces the degrade-gracefully text handed to prompt assembly
// when the data provider fails. Callers treat it as prompt input, never as a
// reason to abort the user-facing request.
func RenderError(id types.RequestID, err error) string {
	return fmt.Sprintf("Error fetching credit request details for %s: %s", id, err)
}

func writeList(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// money renders a dollar amount with thousands separators, e.g. $85,000.00.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return sign + "$" + grouped.String() + frac
}
