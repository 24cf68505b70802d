package services

// Container bundles the service set wired over one ledger, so hosts
// (HTTP server, CLI) construct everything in one place.
type Container struct {
	Ledger    *LedgerService
	Posting   *PostingService
	Reporting *ReportingService
	Narration *NarrationService
	Inventory *InventoryService
	Invoice   *InvoiceService
}

// NewContainer wires the full service set over the given ledger.
func NewContainer(ledger *LedgerService) *Container {
	return &Container{
		Ledger:    ledger,
		Posting:   NewPostingService(ledger),
		Reporting: NewReportingService(ledger),
		Narration: NewNarrationService(ledger),
		Inventory: NewInventoryService(ledger),
		Invoice:   NewInvoiceService(ledger),
	}
}
