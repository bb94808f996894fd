package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
)

// ToText renders a grid value as trimmed text.
// Absent values and blank text yield def. Numbers are always rendered,
// so a numeric zero is "0" rather than def.
func ToText(v models.Value, def string) string {
	var s string
	switch val := v.(type) {
	case nil:
		return def
	case string:
		s = strings.TrimSpace(val)
	case decimal.Decimal:
		s = val.String()
	default:
		s = strings.TrimSpace(fmt.Sprint(val))
	}
	if s == "" {
		return def
	}
	return s
}

// codeText renders a product code cell. Numeric cells are rendered in their
// canonical numeric form, anything else as trimmed text.
func codeText(v models.Value) string {
	if d, ok := v.(decimal.Decimal); ok {
		return d.String()
	}
	return ToText(v, "")
}
