package domain

import "slices"

// Source tells how a file reached a slot.
type Source int

const (
	SourcePicker Source = iota
	SourceDrop
)

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeXLS  = "application/vnd.ms-excel"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Slot is a named upload target expecting one document role.
type Slot struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Description  string   `json:"description,omitempty"`
	Extensions   []string `json:"accept"`
	ContentTypes []string `json:"content_types,omitempty"`

	// PickerByExtension limits picker validation to the file extension.
	PickerByExtension bool `json:"-"`

	PickerReject string `json:"-"`
	DropReject   string `json:"-"`
}

// Accepts reports whether the document matches the slot accept list for the
// given source. A slot without extensions accepts everything.
func (s Slot) Accepts(f *File, src Source) bool {
	if len(s.Extensions) == 0 {
		return true
	}

	if slices.Contains(s.Extensions, f.Ext()) {
		return true
	}

	if src == SourcePicker && s.PickerByExtension {
		return false
	}

	return slices.Contains(s.ContentTypes, f.ContentType)
}

func (s Slot) rejectMessage(src Source) string {
	if src == SourceDrop && s.DropReject != "" {
		return s.DropReject
	}
	return s.PickerReject
}

// Layout is the fixed set of slots a category collects.
type Layout struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
	Multi bool   `json:"multi"`

	// Validate enables accept-list checks at selection time.
	Validate bool `json:"validate"`

	EmptyMessage string `json:"-"`
}

func (l *Layout) Slot(key string) (Slot, bool) {
	for _, s := range l.Slots {
		if s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}

func (l *Layout) Keys() []string {
	keys := make([]string, len(l.Slots))
	for i, s := range l.Slots {
		keys[i] = s.Key
	}
	return keys
}

const SingleSlotKey = "document"

var SingleLayout = &Layout{
	Name: "single",
	Slots: []Slot{{
		Key:        SingleSlotKey,
		Label:      "Document",
		Extensions: []string{".pdf", ".xls", ".xlsx", ".csv", ".doc", ".docx", ".jpg", ".png"},
	}},
	EmptyMessage: "Please upload a file to continue",
}

var AuditLayout = &Layout{
	Name: "audit",
	Slots: []Slot{
		auditSlot("trialBalance", "Trial Balance", "trial balance"),
		auditSlot("profitLossStatement", "Profit & Loss Statement", "profit & loss statement"),
		auditSlot("balanceSheet", "Balance Sheet", "balance sheet"),
		auditSlot("generalLedger", "General Ledger", "general ledger sample"),
		auditSlot("cashBook", "Cash Book", "cash book records"),
		auditSlot("bankStatement", "Bank Statement", "bank statement"),
		auditSlot("fixedAssetRegister", "Fixed Asset Register", "fixed asset register"),
		auditSlot("gstReturns", "GST Returns", "GST returns"),
		auditSlot("tdsSummary", "TDS Summary", "TDS summary (e.g., FY 2023-24)"),
	},
	Multi:        true,
	Validate:     true,
	EmptyMessage: "Please upload at least one PDF or DOCX file to generate the audit report.",
}

var GSTLayout = &Layout{
	Name: "gst",
	Slots: []Slot{
		gstSlot("gstr2bSummary", "GSTR-2B Summary", "GSTR-2B summary data"),
		gstSlot("purchaseRegister", "Purchase Register", "purchase register data"),
		gstSlot("vendorMaster", "Vendor Master", "vendor master data"),
	},
	Multi:        true,
	Validate:     true,
	EmptyMessage: "Please upload at least one Excel file (GSTR-2B Summary, Purchase Register, or Vendor Master) to generate GST reports.",
}

func auditSlot(key, label, contents string) Slot {
	return Slot{
		Key:          key,
		Label:        label,
		Description:  "PDF or DOCX file containing " + contents,
		Extensions:   []string{".pdf", ".docx", ".doc"},
		ContentTypes: []string{mimePDF, mimeDOCX, mimeDOC},
		PickerReject: "Please select a PDF or DOCX file only.",
		DropReject:   "Please drop a PDF or DOCX file only.",
	}
}

func gstSlot(key, label, contents string) Slot {
	return Slot{
		Key:               key,
		Label:             label,
		Description:       "Excel file containing " + contents,
		Extensions:        []string{".xlsx", ".xls"},
		ContentTypes:      []string{mimeXLSX, mimeXLS},
		PickerByExtension: true,
		PickerReject:      "Please select an Excel file (.xlsx or .xls)",
		DropReject:        "Please drop an Excel file (.xlsx or .xls) only.",
	}
}
