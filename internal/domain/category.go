package domain

import "fmt"

// Category is the document classification chosen by the user. It selects
// both the slot layout and the backend endpoint.
type Category string

const (
	CategoryBankStatement Category = "bank_statement"
	CategoryGSTReturn     Category = "gst_return"
	CategoryTrialBalance  Category = "trial_balance"
	CategoryAudit         Category = "audit"
)

var Categories = []Category{
	CategoryBankStatement,
	CategoryGSTReturn,
	CategoryTrialBalance,
	CategoryAudit,
}

var categoryLabels = map[Category]string{
	CategoryBankStatement: "Bank Statement",
	CategoryGSTReturn:     "GST Returns",
	CategoryTrialBalance:  "Trial Balance",
	CategoryAudit:         "Audit",
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", fmt.Errorf("unknown document type %q", s)
	}

	return c, nil
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Layout returns the slot layout used to collect files for the category.
// Unknown and empty categories fall back to the single-document layout.
func (c Category) Layout() *Layout {
	switch c {
	case CategoryAudit:
		return AuditLayout
	case CategoryGSTReturn:
		return GSTLayout
	default:
		return SingleLayout
	}
}

func (c Category) IsMultiSlot() bool {
	return c.Layout().Multi
}
