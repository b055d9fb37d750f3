package registrations

// Variant выбирает, какие измерения фиксируются в отчёте.
type Variant int

const (
	AllCategoriesAllManufacturers Variant = iota
	AllCategoriesSpecificManufacturer
	SpecificCategoryAllManufacturers
	SpecificCategorySpecificManufacturer
)

var variantNames = map[Variant]string{
	AllCategoriesAllManufacturers:        "all_categories_all_manufacturers",
	AllCategoriesSpecificManufacturer:    "all_categories_specific_manufacturer",
	SpecificCategoryAllManufacturers:     "specific_category_all_manufacturers",
	SpecificCategorySpecificManufacturer: "specific_category_specific_manufacturer",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

func (v Variant) PinsCategory() bool {
	return v == SpecificCategoryAllManufacturers || v == SpecificCategorySpecificManufacturer
}

func (v Variant) PinsManufacturer() bool {
	return v == AllCategoriesSpecificManufacturer || v == SpecificCategorySpecificManufacturer
}
