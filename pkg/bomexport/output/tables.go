package output

import (
	"strconv"

	"github.com/ukaji3/bomexport-go/pkg/bomexport/models"
)

// Constant values of the import files.
const (
	CompanyCode            = "BASE"
	StockLocation          = "Main Workshop"
	InventoryDescription   = "Inventario Inicial"
	ProductUnitName        = "unidad"
	PurchaseCurrency       = "COP"
	SaleCurrency           = "USD"
	SaleAccountCode        = "701000"
	SaleTaxCode            = "EXP_X_C"
	BillOfMaterialPriority = "10"
)

// Inventory is the header of the initial stock inventory run.
type Inventory struct {
	StockLocation     string
	Status            string
	PlannedStart      string
	Description       string
	Type              string
	Company           string
	PlannedEnd        string
	ExcludeOutOfStock bool
	IncludeObsolete   bool
}

// InitialInventory returns the inventory run the stock lines belong to.
func InitialInventory() Inventory {
	return Inventory{
		StockLocation: StockLocation,
		Status:        "draft",
		PlannedStart:  "TODAY[]",
		Description:   InventoryDescription,
		Type:          "Yearly",
		Company:       CompanyCode,
		PlannedEnd:    "TODAY[=12M=31d]",
	}
}

// productColumns holds the columns shared by base components and base
// products, in file order. Columns listed in overrides replace the blank
// default.
func productColumns[T any](overrides map[string]Column[T], withSalesUnit bool) []Column[T] {
	headers := []string{
		"importId", "name", "code", "description", "internalDescription",
		"productSubTypeSelect_item", "productFamily_name", "productCategory_name",
		"expense", "procurementMethodSelect", "unit_name", "purchasesunit_name",
	}
	if withSalesUnit {
		headers = append(headers, "salesunit_name")
	}
	headers = append(headers,
		"productTypeSelect", "salePrice", "saleCurrency_code", "purchasePrice",
		"purchaseCurrency_code", "defaultSupplierPartner_name", "startDate", "endDate",
		"saleSupplySelect_item", "costPrice", "hasWarranty", "warrantyNbrOfMonths",
		"isPerishable", "perishableNbrOfMonths", "defaultBillOfMaterial_importId",
		"managPriceCoef", "picture_fileName", "isActivity", "productVariantConfig_importId",
		"manageVariantPrice", "grossMass", "height", "netMass", "width", "lengthunit_name",
		"length", "massunit_name", "usedInDEB", "countryOfOrigin_name", "stockManaged",
		"sellable", "purchasable", "shippingCoef",
	)

	cols := make([]Column[T], len(headers))
	for i, h := range headers {
		if c, ok := overrides[h]; ok {
			cols[i] = c
			continue
		}
		cols[i] = Blank[T](h)
	}
	return cols
}

// BaseComponents lists components as purchasable, stock managed products.
var BaseComponents = Table[models.Component]{
	Name: "base_components",
	Columns: productColumns(map[string]Column[models.Component]{
		"name":                      {"name", func(c models.Component) string { return c.Name }},
		"code":                      {"code", func(c models.Component) string { return c.Code }},
		"productSubTypeSelect_item": Static[models.Component]("productSubTypeSelect_item", "Component"),
		"procurementMethodSelect":   Static[models.Component]("procurementMethodSelect", "buy"),
		"unit_name":                 {"unit_name", func(c models.Component) string { return c.UnitName }},
		"purchasesunit_name":        {"purchasesunit_name", func(c models.Component) string { return c.UnitName }},
		"productTypeSelect":         Static[models.Component]("productTypeSelect", "storable"),
		"purchasePrice":             {"purchasePrice", func(c models.Component) string { return c.PurchasePrice }},
		"purchaseCurrency_code":     Static[models.Component]("purchaseCurrency_code", PurchaseCurrency),
		"costPrice":                 {"costPrice", func(c models.Component) string { return c.PurchasePrice }},
		"stockManaged":              Static[models.Component]("stockManaged", "true"),
		"sellable":                  Static[models.Component]("sellable", "false"),
		"purchasable":               Static[models.Component]("purchasable", "true"),
	}, false),
}

// BaseProducts lists products as sellable, produced finished products.
var BaseProducts = Table[models.Product]{
	Name: "base_products",
	Columns: productColumns(map[string]Column[models.Product]{
		"name":                      {"name", func(p models.Product) string { return p.Name }},
		"code":                      {"code", func(p models.Product) string { return p.Code }},
		"productSubTypeSelect_item": Static[models.Product]("productSubTypeSelect_item", "Finished product"),
		"expense":                   Static[models.Product]("expense", "false"),
		"procurementMethodSelect":   Static[models.Product]("procurementMethodSelect", "produce"),
		"unit_name":                 Static[models.Product]("unit_name", ProductUnitName),
		"salesunit_name":            Static[models.Product]("salesunit_name", ProductUnitName),
		"productTypeSelect":         Static[models.Product]("productTypeSelect", "storable"),
		"salePrice":                 {"salePrice", func(p models.Product) string { return p.SalePrice }},
		"saleCurrency_code":         Static[models.Product]("saleCurrency_code", SaleCurrency),
		"stockManaged":              Static[models.Product]("stockManaged", "true"),
		"sellable":                  Static[models.Product]("sellable", "true"),
		"purchasable":               Static[models.Product]("purchasable", "false"),
	}, true),
}

// AccountManagement binds every product to the sale account and tax.
var AccountManagement = Table[models.Product]{
	Name: "account_accountManagement",
	Columns: []Column[models.Product]{
		Blank[models.Product]("importId"),
		Static[models.Product]("company_code", CompanyCode),
		Static[models.Product]("typeSelect", "1"),
		{"product_code", func(p models.Product) string { return p.Code }},
		Blank[models.Product]("tax.code"),
		Blank[models.Product]("productFamily.importId"),
		Blank[models.Product]("paymentMode.importId"),
		Static[models.Product]("saleAccount_code", SaleAccountCode),
		Blank[models.Product]("saleTaxVatSystem1Account_code"),
		Blank[models.Product]("saleTaxVatSystem2Account_code"),
		Static[models.Product]("saleTax_code", SaleTaxCode),
		Blank[models.Product]("purchaseAccount_code"),
		Blank[models.Product]("purchaseTaxVatSystem1Account_code"),
		Blank[models.Product]("purchaseTaxVatSystem2Account_code"),
		Blank[models.Product]("purchaseTax.code"),
		Blank[models.Product]("cashAccount_code"),
		Blank[models.Product]("journal_importId"),
		Blank[models.Product]("sequence_importId"),
		Blank[models.Product]("bankDetails_importId"),
		Blank[models.Product]("purchFixedAssetsAccount_code"),
		Blank[models.Product]("purchFixedAssetsTaxVatSystem1Account_code"),
		Blank[models.Product]("purchFixedAssetsTaxVatSystem2Account_code"),
		Blank[models.Product]("fixedAssetCategory.importId"),
		Blank[models.Product]("interbankCodeLine.importId"),
		Blank[models.Product]("allowedFinDiscountTaxVatSystem1Account_code"),
		Blank[models.Product]("allowedFinDiscountTaxVatSystem2Account_code"),
		Blank[models.Product]("obtainedFinDiscountTaxVatSystem1Account_code"),
		Blank[models.Product]("obtainedFinDiscountTaxVatSystem2Account_code"),
		Blank[models.Product]("purchVatRegulationAccount_code"),
		Blank[models.Product]("saleVatRegulationAccount_code"),
		Blank[models.Product]("globalAccountingCashAccount_code"),
		Blank[models.Product]("chequeDepositJournal_code"),
		Blank[models.Product]("financialDiscountAccount.code"),
	},
}

// DefaultBillOfMaterials declares an empty default BOM per product.
var DefaultBillOfMaterials = Table[models.Product]{
	Name: "default_bom",
	Columns: []Column[models.Product]{
		Blank[models.Product]("importId"),
		{"product_code", func(p models.Product) string { return p.Code }},
	},
}

// StockInventory is the single-row inventory run header.
var StockInventory = Table[Inventory]{
	Name: "stock_inventory",
	Columns: []Column[Inventory]{
		Blank[Inventory]("importId"),
		{"stockLocation_name", func(i Inventory) string { return i.StockLocation }},
		{"statusSelect_item", func(i Inventory) string { return i.Status }},
		{"plannedStartDateT", func(i Inventory) string { return i.PlannedStart }},
		{"description", func(i Inventory) string { return i.Description }},
		{"typeSelect_item", func(i Inventory) string { return i.Type }},
		{"company_code", func(i Inventory) string { return i.Company }},
		{"plannedEndDateT", func(i Inventory) string { return i.PlannedEnd }},
		{"excludeOutOfStock", func(i Inventory) string { return strconv.FormatBool(i.ExcludeOutOfStock) }},
		{"includeObsolete", func(i Inventory) string { return strconv.FormatBool(i.IncludeObsolete) }},
	},
}

// StockInventoryLines records the opening quantity of every component.
var StockInventoryLines = Table[models.Component]{
	Name: "stock_inventoryLine",
	Columns: []Column[models.Component]{
		Static[models.Component]("inventory_description", InventoryDescription),
		{"product_code", func(c models.Component) string { return c.Code }},
		{"currentQty", func(c models.Component) string { return c.Qty }},
		{"realQty", func(c models.Component) string { return c.Qty }},
		Blank[models.Component]("description"),
		Blank[models.Component]("productVariant_importId"),
		Blank[models.Component]("trackingNumber.importId"),
		Static[models.Component]("stockLocation_name", StockLocation),
	},
}

// ProductionBillOfMaterials holds the child and parent BOM lines.
var ProductionBillOfMaterials = Table[models.BillOfMaterialLine]{
	Name: "production_billOfMaterial",
	Columns: []Column[models.BillOfMaterialLine]{
		{"importId", func(l models.BillOfMaterialLine) string { return strconv.Itoa(l.SequenceID) }},
		{"product_code", func(l models.BillOfMaterialLine) string { return l.ProductCode }},
		{"name", func(l models.BillOfMaterialLine) string { return l.Name }},
		{"qty", func(l models.BillOfMaterialLine) string { return l.Qty }},
		Static[models.BillOfMaterialLine]("priority", BillOfMaterialPriority),
		{"defineSubBillOfMaterial", func(l models.BillOfMaterialLine) string { return strconv.FormatBool(l.IsParent) }},
		{"unit_name", func(l models.BillOfMaterialLine) string { return l.UnitName }},
		{"prodProcess_code", func(l models.BillOfMaterialLine) string { return l.ProcessCode }},
		Static[models.BillOfMaterialLine]("costPrice", "0"),
		Static[models.BillOfMaterialLine]("company_code", CompanyCode),
		Static[models.BillOfMaterialLine]("hasNoManageStock", "false"),
		{"workshopStockLocation_name", func(l models.BillOfMaterialLine) string { return l.WorkshopStockLocation }},
		{"billOfMaterials", func(l models.BillOfMaterialLine) string { return l.ChildRefs() }},
	},
}
