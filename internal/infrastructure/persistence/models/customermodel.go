package models

type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null;index:idx_customers_identity"`
	LastName  string `gorm:"size:100;not null;index:idx_customers_identity"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:255;not null;index:idx_customers_identity"`
	Address   string `gorm:"size:500"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: no uniqueness constraint on the identity columns. Duplicate legal
	// names are legitimate; deduplication is a resolver policy, not a schema
	// rule.
}

func (CustomerModel) TableName() string {
	return "customers"
}
