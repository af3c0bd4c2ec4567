package models

// OptionKind names one of the two admin-editable enumerations.
type OptionKind string

const (
	// OptionSPG constrains the spg_praneeth classification field.
	OptionSPG OptionKind = "spg"
	// OptionSaleType constrains the type_of_sale field.
	OptionSaleType OptionKind = "sale_type"
)

// FieldOption is one allowed value of one enumeration. The two kinds are
// independent sets; uniqueness is per (kind, value).
type FieldOption struct {
	Kind  OptionKind `gorm:"primaryKey;type:varchar(20)"`
	Value string     `gorm:"primaryKey;size:100"`
}

func (FieldOption) TableName() string { return "field_options" }
