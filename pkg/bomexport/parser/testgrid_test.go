package parser

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
)

// num is shorthand for a numeric cell.
func num(s string) models.Value {
	return decimal.RequireFromString(s)
}

// widgetGrid is a sheet with two products and three component rows,
// one of them blank.
//
//	     A      B      C     D    E      F        G
//	1                                    9.99     5
//	2                                    100      AB
//	3                                    Widget   Gadget
//	4    S1     Screw  0.1   50   pcs    4
//	5
//	6           Nut    0.05       pcs    "0"      2
func widgetGrid() models.Grid {
	return models.Grid{
		{nil, nil, nil, nil, nil, num("9.99"), num("5")},
		{nil, nil, nil, nil, nil, num("100"), "AB"},
		{nil, nil, nil, nil, nil, "Widget", "Gadget"},
		{"S1", "Screw", num("0.1"), num("50"), "pcs", num("4")},
		nil,
		{nil, "Nut", num("0.05"), nil, "pcs", "0", num("2")},
	}
}
