package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	ledger    *services.LedgerService
	inventory *services.InventoryService
	service   *services.InvoiceService
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.ledger = newTestLedger(suite.T())
	suite.inventory = services.NewInventoryService(suite.ledger)
	suite.service = services.NewInvoiceService(suite.ledger)
}

func (suite *InvoiceServiceTestSuite) invoiceDate() time.Time {
	return time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PostsAndNumbers() {
	inv, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Ramesh",
		Date:     suite.invoiceDate(),
		Lines: []domain.InvoiceLine{
			{ItemName: "Widget", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(500), GSTPercent: decimal.NewFromInt(18)},
		},
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "INV-0001", inv.InvoiceNo)
	assert.True(suite.T(), inv.TotalBase.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), inv.TotalGST.Equal(decimal.NewFromInt(180)))
	assert.True(suite.T(), inv.Total.Equal(decimal.NewFromInt(1180)))

	entries, err := suite.ledger.ListJournalEntries(0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), entries, 2)
	// Most recent first: tax leg then base leg.
	assert.Equal(suite.T(), "Output GST", entries[0].CreditAccount)
	assert.True(suite.T(), entries[0].Amount.Equal(decimal.NewFromInt(180)))
	assert.Equal(suite.T(), "Sales", entries[1].CreditAccount)
	assert.Equal(suite.T(), "Accounts Receivable - Ramesh", entries[1].DebitAccount)
	assert.True(suite.T(), entries[1].Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(suite.T(), domain.SourceInvoice, entries[1].Meta["source"])
	assert.Equal(suite.T(), "INV-0001", entries[1].Meta["invoiceNo"])
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SequentialNumbering() {
	line := domain.InvoiceLine{ItemName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}

	first, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Ramesh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)
	second, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Suresh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "INV-0001", first.InvoiceNo)
	assert.Equal(suite.T(), "INV-0002", second.InvoiceNo)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitNumberSkipsCounter() {
	line := domain.InvoiceLine{ItemName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}

	custom, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		InvoiceNo: "SPECIAL-7", Customer: "Ramesh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SPECIAL-7", custom.InvoiceNo)

	auto, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Suresh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "INV-0001", auto.InvoiceNo)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoGSTSkipsTaxLeg() {
	_, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Ramesh",
		Date:     suite.invoiceDate(),
		Lines: []domain.InvoiceLine{
			{ItemName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)},
		},
	})
	require.NoError(suite.T(), err)

	entries, err := suite.ledger.ListJournalEntries(0)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), entries, 1)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DecrementsStock() {
	_, err := suite.inventory.UpsertItem(context.Background(), domain.InventoryItem{
		Name:     "Widget",
		Quantity: decimal.NewFromInt(10),
	})
	require.NoError(suite.T(), err)

	_, err = suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Ramesh",
		Date:     suite.invoiceDate(),
		Lines: []domain.InvoiceLine{
			{ItemName: "Widget", Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(100)},
		},
	})
	require.NoError(suite.T(), err)

	items, err := suite.inventory.ListItems(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	assert.True(suite.T(), items[0].Quantity.Equal(decimal.NewFromInt(7)))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Validation() {
	line := domain.InvoiceLine{ItemName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}

	tests := []struct {
		name    string
		input   services.CreateInvoiceInput
		wantErr error
	}{
		{
			name:    "missing date",
			input:   services.CreateInvoiceInput{Customer: "Ramesh", Lines: []domain.InvoiceLine{line}},
			wantErr: apperrors.ErrMissingField,
		},
		{
			name:    "missing customer",
			input:   services.CreateInvoiceInput{Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line}},
			wantErr: apperrors.ErrMissingField,
		},
		{
			name:    "no lines",
			input:   services.CreateInvoiceInput{Customer: "Ramesh", Date: suite.invoiceDate()},
			wantErr: apperrors.ErrMissingField,
		},
		{
			name: "zero quantity",
			input: services.CreateInvoiceInput{
				Customer: "Ramesh", Date: suite.invoiceDate(),
				Lines: []domain.InvoiceLine{{ItemName: "Widget", Price: decimal.NewFromInt(100), Quantity: decimal.Zero}},
			},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name: "negative gst",
			input: services.CreateInvoiceInput{
				Customer: "Ramesh", Date: suite.invoiceDate(),
				Lines: []domain.InvoiceLine{{ItemName: "Widget", Price: decimal.NewFromInt(100), Quantity: decimal.NewFromInt(1), GSTPercent: decimal.NewFromInt(-5)}},
			},
			wantErr: apperrors.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateInvoice(context.Background(), tt.input)
			assert.ErrorIs(suite.T(), err, tt.wantErr)
		})
	}

	entries, err := suite.ledger.ListJournalEntries(0)
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), entries)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_MostRecentFirst() {
	line := domain.InvoiceLine{ItemName: "Widget", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)}
	_, err := suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Ramesh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)
	_, err = suite.service.CreateInvoice(context.Background(), services.CreateInvoiceInput{
		Customer: "Suresh", Date: suite.invoiceDate(), Lines: []domain.InvoiceLine{line},
	})
	require.NoError(suite.T(), err)

	invoices, err := suite.service.ListInvoices(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), invoices, 2)
	assert.Equal(suite.T(), "Suresh", invoices[0].Customer)
	assert.Equal(suite.T(), "Ramesh", invoices[1].Customer)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
