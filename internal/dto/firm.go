package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// SetupFirmRequest defines the payload for first-time ledger setup.
type SetupFirmRequest struct {
	OrgName           string          `json:"orgName" binding:"required"`
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

// UpdateFirmRequest defines the payload for settings updates. Opening
// capital is not updatable after setup.
type UpdateFirmRequest struct {
	OrgName           string          `json:"orgName" binding:"required"`
	ContactPerson     string          `json:"contactPerson"`
	TaxID             string          `json:"taxId"`
	GSTIN             string          `json:"gstin"`
	GSTEnabled        bool            `json:"gstEnabled"`
	DefaultGSTPercent decimal.Decimal `json:"defaultGstPercent"`
	BankName          string          `json:"bankName"`
	BankAccount       string          `json:"bankAccount"`
	IFSC              string          `json:"ifsc"`
}

// FirmResponse defines the data returned for the firm profile.
type FirmResponse struct {
	domain.FirmProfile
}

// ToFirmProfile converts a setup request to the domain profile.
func (r SetupFirmRequest) ToFirmProfile() domain.FirmProfile {
	return domain.FirmProfile{
		OrgName:           r.OrgName,
		ContactPerson:     r.ContactPerson,
		TaxID:             r.TaxID,
		GSTIN:             r.GSTIN,
		GSTEnabled:        r.GSTEnabled,
		DefaultGSTPercent: r.DefaultGSTPercent,
		BankName:          r.BankName,
		BankAccount:       r.BankAccount,
		IFSC:              r.IFSC,
		OpeningCapital:    r.OpeningCapital,
	}
}

// ToFirmProfile converts an update request to the domain profile.
// The opening capital is filled in by the service from current state.
func (r UpdateFirmRequest) ToFirmProfile() domain.FirmProfile {
	return domain.FirmProfile{
		OrgName:           r.OrgName,
		ContactPerson:     r.ContactPerson,
		TaxID:             r.TaxID,
		GSTIN:             r.GSTIN,
		GSTEnabled:        r.GSTEnabled,
		DefaultGSTPercent: r.DefaultGSTPercent,
		BankName:          r.BankName,
		BankAccount:       r.BankAccount,
		IFSC:              r.IFSC,
	}
}
