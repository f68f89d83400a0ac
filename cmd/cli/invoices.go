package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List your invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		invoices, err := apiClient.ListInvoices(cmd.Context())
		if err != nil {
			return apiCommandError(err)
		}

		if len(invoices) == 0 {
			fmt.Println(mutedStyle.Render("No invoices yet."))
			return nil
		}

		var outstanding float64
		for _, invoice := range invoices {
			if invoice.IsOutstanding() {
				outstanding += invoice.Total
			}
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Invoices (%d)", len(invoices))))
		for _, invoice := range invoices {
			status := invoiceStatusStyle(invoice.Status).Render(invoice.Status)
			fmt.Printf("  %s $%.2f [%s]\n",
				headerStyle.Render(invoice.InvoiceNumber), invoice.Total, status)
		}
		fmt.Println()
		fmt.Printf("%s $%.2f\n", headerStyle.Render("Outstanding:"), outstanding)

		return nil
	},
}
