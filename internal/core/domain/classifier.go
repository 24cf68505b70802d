package domain

import "strings"

// accountTypeRule pairs a set of name fragments with the account type
// they imply. Rules are evaluated top to bottom; the first fragment
// match wins, so ordering is part of the contract.
type accountTypeRule struct {
	fragments []string
	result    AccountType
}

var accountTypeRules = []accountTypeRule{
	{[]string{"cash", "bank", "receivable", "inventory", "input gst"}, Asset},
	{[]string{"payable", "output gst", "loan"}, Liability},
	{[]string{"capital", "equity"}, Equity},
	{[]string{"sale", "revenue"}, Income},
}

// GuessAccountType classifies an account by name using case-insensitive
// substring matching. Names that match no rule fall through to Expense.
// The classifier is deterministic: the same name always yields the same
// type.
func GuessAccountType(name string) AccountType {
	lower := strings.ToLower(name)
	for _, rule := range accountTypeRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(lower, fragment) {
				return rule.result
			}
		}
	}
	return Expense
}
