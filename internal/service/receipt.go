package service

import (
	"fmt"
	"strings"

	"ridehail/internal/domain"
)

// FormatReceipt renders a receipt for print.
func FormatReceipt(receipt domain.PaymentReceipt) string {
	var b strings.Builder
	b.WriteString("=====================================\n")
	b.WriteString("        RIDE RECEIPT\n")
	b.WriteString("=====================================\n")
	fmt.Fprintf(&b, "Ride:      %s\n", receipt.RideID)
	fmt.Fprintf(&b, "Date:      %s\n", receipt.CreatedAt.Format("Jan 02, 2006 3:04 PM"))
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(&b, "Amount:    %s\n", formatAmount(receipt.Amount))
	fmt.Fprintf(&b, "Method:    %s\n", receipt.Method)
	fmt.Fprintf(&b, "Status:    %s\n", receipt.Status)
	fmt.Fprintf(&b, "Reference: %s\n", receipt.ReferenceID)
	b.WriteString("=====================================\n")
	return b.String()
}

func formatAmount(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
