package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
	"github.com/SahajKhata/sahaj_khata_app/internal/utils/accounting"
)

// Intent is the classified purpose of a narration.
type Intent string

const (
	IntentSale               Intent = "sale"
	IntentPurchase           Intent = "purchase"
	IntentExpense            Intent = "expense"
	IntentFallbackReceivable Intent = "fallback-receivable"
	IntentFallbackPayable    Intent = "fallback-payable"
	IntentDefaultCashSale    Intent = "default-cash-sale"
)

// intentRule pairs a narration pattern with the intent it implies.
// Rules run top to bottom; the first match wins. Patterns cover
// English, Hinglish transliterations and Devanagari for the same
// concepts.
type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

var intentRules = []intentRule{
	{IntentSale, regexp.MustCompile(`(?i)(sold|sale|bikri|बिक्री|बेचा)`)},
	{IntentPurchase, regexp.MustCompile(`(?i)(purchase|purchased|bought|buy|kharid|खरीद|खरीदा)`)},
	{IntentExpense, regexp.MustCompile(`(?i)(rent|salary|electric|electricity|fuel|transport|travel|expense|kharcha|kiraya|खर्च|किराया|वेतन)`)},
	{IntentFallbackReceivable, regexp.MustCompile(`(?i)goods.*to`)},
	{IntentFallbackPayable, regexp.MustCompile(`(?i)(goods.*from|received.*from)`)},
}

// expenseRule maps narration fragments to a named expense account.
type expenseRule struct {
	account string
	pattern *regexp.Regexp
}

var expenseRules = []expenseRule{
	{"Rent Expense", regexp.MustCompile(`(?i)(rent|kiraya|किराया)`)},
	{"Salary Expense", regexp.MustCompile(`(?i)(salary|वेतन)`)},
	{"Electricity Expense", regexp.MustCompile(`(?i)(electric|bijli|बिजली)`)},
}

const fallbackExpenseAccount = "Misc Expense"

// Settlement and party detection patterns.
var (
	cashPattern = regexp.MustCompile(`(?i)(cash|nakad|नकद)`)
	bankPattern = regexp.MustCompile(`(?i)(bank|upi|neft|rtgs|imps)`)

	partyToFromPattern = regexp.MustCompile(`(?i)(?:to|from)\s+([A-Za-z0-9 &.-]+)`)
	partyKoSePattern   = regexp.MustCompile(`(?i)([A-Za-z0-9 &.-]+)\s+(?:ko|se)`)
)

// SuggestionInput carries the narration and optional pricing context.
type SuggestionInput struct {
	Narration  string
	Amount     decimal.Decimal
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	GSTPercent decimal.Decimal // zero means use the firm default
}

// SuggestedLeg is one leg of a proposed posting.
type SuggestedLeg struct {
	Debit  string
	Credit string
	Amount decimal.Decimal
}

// Suggestion is a proposed posting derived from a narration. When the
// firm has GST enabled and a rate applies, Split holds the base and
// tax legs; otherwise the single Debit/Credit/Amount applies. The
// suggestion is advisory: nothing is posted until a caller submits it
// through the posting engine.
type Suggestion struct {
	Intent    Intent
	Debit     string
	Credit    string
	Amount    decimal.Decimal
	Narration string
	Party     string
	Split     []SuggestedLeg
}

// NarrationService classifies free-text narrations into posting
// suggestions. It reads firm GST settings and never mutates the
// ledger.
type NarrationService struct {
	ledger *LedgerService
}

// NewNarrationService creates a new NarrationService.
func NewNarrationService(ledger *LedgerService) *NarrationService {
	return &NarrationService{ledger: ledger}
}

// classifyIntent evaluates the ordered intent rules and falls through
// to the default cash-sale guess.
func classifyIntent(narration string) Intent {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(narration) {
			return rule.intent
		}
	}
	return IntentDefaultCashSale
}

// extractParty pulls a counterparty name out of "to A" / "from B" /
// "A ko" / "B se" phrasings.
func extractParty(narration string) string {
	if m := partyToFromPattern.FindStringSubmatch(narration); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := partyKoSePattern.FindStringSubmatch(narration); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// settlementAccount picks the money-side account for a sale
// (receivable) or purchase (payable) based on the narrated settlement.
func settlementAccount(narration, fallbackBase, party string) string {
	if cashPattern.MatchString(narration) {
		return "Cash"
	}
	if bankPattern.MatchString(narration) {
		return "Bank"
	}
	account := fallbackBase
	if party != "" {
		account += " - " + party
	}
	return account
}

// Suggest classifies the narration and proposes a posting.
func (s *NarrationService) Suggest(ctx context.Context, in SuggestionInput) (*Suggestion, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	firm, err := s.ledger.Firm()
	if err != nil {
		return nil, err
	}

	total := in.Amount
	if total.IsZero() && in.Quantity.IsPositive() && in.Price.IsPositive() {
		total = in.Quantity.Mul(in.Price)
	}

	gstPercent := decimal.Zero
	if firm.GSTEnabled {
		gstPercent = in.GSTPercent
		if gstPercent.IsZero() {
			gstPercent = firm.DefaultGSTPercent
		}
	}

	party := extractParty(in.Narration)
	intent := classifyIntent(in.Narration)

	suggestion := &Suggestion{
		Intent:    intent,
		Amount:    total,
		Narration: in.Narration,
		Party:     party,
	}

	switch intent {
	case IntentSale:
		receivable := settlementAccount(in.Narration, "Accounts Receivable", party)
		suggestion.Debit = receivable
		suggestion.Credit = "Sales"
		if gstPercent.IsPositive() {
			base, tax := accounting.SplitGross(total, gstPercent)
			suggestion.Split = []SuggestedLeg{
				{Debit: receivable, Credit: "Sales", Amount: base},
				{Debit: receivable, Credit: accountOutputGST, Amount: tax},
			}
		}

	case IntentPurchase:
		payable := settlementAccount(in.Narration, "Accounts Payable", party)
		suggestion.Debit = accountPurchases
		suggestion.Credit = payable
		if gstPercent.IsPositive() {
			base, tax := accounting.SplitGross(total, gstPercent)
			suggestion.Split = []SuggestedLeg{
				{Debit: accountPurchases, Credit: payable, Amount: base},
				{Debit: accountInputGST, Credit: payable, Amount: tax},
			}
		}

	case IntentExpense:
		account := fallbackExpenseAccount
		for _, rule := range expenseRules {
			if rule.pattern.MatchString(in.Narration) {
				account = rule.account
				break
			}
		}
		suggestion.Debit = account
		suggestion.Credit = settlementAccount(in.Narration, "Accounts Payable", "")

	case IntentFallbackReceivable:
		receivable := "Accounts Receivable"
		if party != "" {
			receivable += " - " + party
		}
		suggestion.Debit = receivable
		suggestion.Credit = "Sales"

	case IntentFallbackPayable:
		payable := "Accounts Payable"
		if party != "" {
			payable += " - " + party
		}
		suggestion.Debit = accountPurchases
		suggestion.Credit = payable

	default:
		// No keyword matched: guess a sale settled in cash or bank.
		if cashPattern.MatchString(in.Narration) {
			suggestion.Debit = "Cash"
		} else {
			suggestion.Debit = "Bank"
		}
		suggestion.Credit = "Sales"
	}

	logger.Debug("Narration classified",
		slog.String("intent", string(intent)),
		slog.String("debit", suggestion.Debit),
		slog.String("credit", suggestion.Credit))
	return suggestion, nil
}
