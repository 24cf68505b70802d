package domain

import "github.com/shopspring/decimal"

// FirmProfile is the singleton firm configuration. The reporting
// engine reads OpeningCapital, GSTEnabled and DefaultGSTPercent; the
// rest is descriptive.
type FirmProfile struct {
	OrgName           string          `json:"orgName"`
	ContactPerson     string          `json:"contactPerson"`
	TaxID             string          `json:"taxId"`
	GSTIN             string          `json:"gstin"`
	GSTEnabled        bool            `json:"gstEnabled"`
	DefaultGSTPercent decimal.Decimal `json:"defaultGstPercent"`
	BankName          string          `json:"bankName"`
	BankAccount       string          `json:"bankAccount"`
	IFSC              string          `json:"ifsc"`
	OpeningCapital    decimal.Decimal `json:"openingCapital"`
}
