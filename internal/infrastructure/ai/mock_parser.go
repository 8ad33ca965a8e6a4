package ai

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	appdraft "github.com/bizflow/backend/internal/application/draft"
	"github.com/bizflow/backend/internal/domain/draft"
)

// vietnameseLetters covers the lowercase Vietnamese alphabet for name matching
const vietnameseLetters = `a-zàáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ`

// unitWords are the measure words stripped between quantity and product name
const unitWords = `bao|thùng|kg|tấn|cái|hộp|chai|lon|gói|túi|khối|m3|xe|tấm|mét|m|viên|thanh|bó|cây|cuộn|lít|ml|hũ|can|phuy|vỉ|tờ`

// numberWords maps spoken Vietnamese numbers to digits
var numberWords = map[string]string{
	"không": "0", "một": "1", "hai": "2", "ba": "3", "bốn": "4",
	"năm": "5", "sáu": "6", "bảy": "7", "tám": "8", "chín": "9", "mười": "10",
}

// debtPhrases flag a credit sale when they appear anywhere in the message
var debtPhrases = []string{"ghi nợ", "ghi sổ", "mua nợ", "bán nợ", "thiếu lại", "công nợ", "chưa trả", "trả sau", "nợ"}

var (
	phonePattern        = regexp.MustCompile(`0\d{9,10}`)
	paidPattern         = regexp.MustCompile(`(?i)(?:đưa trước|trả trước|đặt cọc|thanh toán|đưa|cọc)\s+(\d+(?:\.\d+)?)\s*(triệu|tr|k|nghìn|ngàn)?`)
	customerForPattern  = regexp.MustCompile(`(?i)(?:cho|của|khách)\s+([` + vietnameseLetters + `\s]+?)(?:\s+\d+|\s*$|,|\.)`)
	customerLeadPattern = regexp.MustCompile(`(?i)^((?:anh|chị|ông|bà|chú|cô|em)\s+[` + vietnameseLetters + `]+)`)
	separatorPattern    = regexp.MustCompile(`\s+(?:\+|cộng|và|với|plus|,)\s+`)
	itemLeadPattern     = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s+(?:(?:` + unitWords + `)\s+)?(.+)$`)
	itemTailPattern     = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:\.\d+)?)\s*(?:` + unitWords + `)?$`)
	anyNumberPattern    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	unitPrefixPattern   = regexp.MustCompile(`(?i)^(?:` + unitWords + `)\s+(.+)$`)
)

// MockParser extracts order drafts from simple Vietnamese messages with
// regular expressions. It stands in for the LLM provider when no API key is
// configured, and handles patterns like "anh Tuấn lấy 10 bao xi măng, ghi nợ"
// or "5 thùng Coca cho chị Lan".
type MockParser struct{}

// NewMockParser creates a MockParser
func NewMockParser() *MockParser {
	return &MockParser{}
}

// ParseOrderText implements draft.Parser
func (p *MockParser) ParseOrderText(_ context.Context, text string) (*appdraft.ParseResult, error) {
	parsed := draft.ParsedOrder{}

	normalized := normalizeText(text)

	if phone := phonePattern.FindString(normalized); phone != "" {
		parsed.CustomerPhone = phone
		normalized = strings.Replace(normalized, phone, " ", 1)
	}

	normalized, parsed.PaidAmount = extractPaidAmount(normalized)
	normalized, parsed.IsDebt = extractDebtFlag(normalized)
	if parsed.IsDebt {
		parsed.PaymentMethod = "CREDIT"
	}

	normalized, parsed.CustomerName = extractCustomer(normalized)
	parsed.Items = extractItems(normalized)

	confidence := 0.0
	if parsed.HasCustomer() {
		confidence += 0.5
	}
	if parsed.HasItems() {
		confidence += 0.4
	}

	return &appdraft.ParseResult{Parsed: parsed, Confidence: confidence}, nil
}

// normalizeText lowercases the message and rewrites spoken numbers to digits
func normalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	for i, f := range fields {
		if digit, ok := numberWords[f]; ok {
			fields[i] = digit
		}
	}
	return strings.Join(fields, " ")
}

// extractPaidAmount reads an up-front payment like "đưa 200k" or
// "trả trước 1 triệu" and strips it from the message. Zero means the
// message did not state a payment.
func extractPaidAmount(text string) (string, decimal.Decimal) {
	m := paidPattern.FindStringSubmatch(text)
	if m == nil {
		return text, decimal.Zero
	}
	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return text, decimal.Zero
	}
	switch m[2] {
	case "k", "nghìn", "ngàn":
		amount = amount.Mul(decimal.NewFromInt(1000))
	case "triệu", "tr":
		amount = amount.Mul(decimal.NewFromInt(1000000))
	}
	return strings.TrimSpace(strings.Replace(text, m[0], " ", 1)), amount
}

// extractDebtFlag strips credit-sale markers and reports whether any was found
func extractDebtFlag(text string) (string, bool) {
	found := false
	for _, phrase := range debtPhrases {
		if strings.Contains(text, phrase) {
			found = true
			text = strings.ReplaceAll(text, phrase, " ")
		}
	}
	return strings.TrimSpace(text), found
}

// extractCustomer pulls the customer name out of the message and returns the
// remaining text. "cho/của/khách <name>" wins over a leading "anh/chị <name>".
func extractCustomer(text string) (string, string) {
	if m := customerForPattern.FindStringSubmatch(text); m != nil {
		text = strings.Replace(text, m[0], " ", 1)
		return strings.TrimSpace(text), titleCase(strings.TrimSpace(m[1]))
	}
	if m := customerLeadPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(text[len(m[0]):]), titleCase(strings.TrimSpace(m[1]))
	}
	return text, ""
}

// extractItems splits the remaining text on separators and reads one order
// line per segment, trying quantity-first, then quantity-last, then a bare
// number anywhere, then no quantity at all.
func extractItems(text string) []draft.ParsedItem {
	text = separatorPattern.ReplaceAllString(text, " + ")
	text = stripVerbs(text)

	var items []draft.ParsedItem
	for _, seg := range strings.Split(text, "+") {
		seg = strings.Trim(seg, " \t,.;:")
		if seg == "" {
			continue
		}

		if m := itemLeadPattern.FindStringSubmatch(seg); m != nil {
			items = append(items, newItem(m[2], m[1]))
			continue
		}
		if m := itemTailPattern.FindStringSubmatch(seg); m != nil {
			items = append(items, newItem(m[1], m[2]))
			continue
		}
		if num := anyNumberPattern.FindString(seg); num != "" {
			remaining := strings.TrimSpace(anyNumberPattern.ReplaceAllString(seg, " "))
			if m := unitPrefixPattern.FindStringSubmatch(remaining); m != nil {
				remaining = m[1]
			}
			items = append(items, newItem(remaining, num))
			continue
		}
		name := seg
		if m := unitPrefixPattern.FindStringSubmatch(seg); m != nil {
			name = m[1]
		}
		items = append(items, newItem(name, "1"))
	}
	return items
}

func newItem(name, quantity string) draft.ParsedItem {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		qty = decimal.NewFromInt(1)
	}
	return draft.ParsedItem{
		ProductName: titleCase(collapseSpaces(name)),
		Quantity:    qty,
	}
}

// orderVerbs are filler verbs dropped before item parsing. Word-boundary
// regexps cannot be used here: RE2's \b is ASCII-only and misses words
// starting with đ.
var orderVerbs = map[string]bool{
	"đặt": true, "cần": true, "mua": true, "bán": true, "lấy": true,
	"gọi": true, "order": true, "cho": true, "muốn": true,
}

func stripVerbs(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !orderVerbs[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(f)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

var _ appdraft.Parser = (*MockParser)(nil)
