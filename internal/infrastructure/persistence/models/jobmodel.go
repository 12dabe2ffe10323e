package models

type JobModel struct {
	ID             uint    `gorm:"primaryKey"`
	CustomerID     *uint   `gorm:"index"`
	DeviceType     string  `gorm:"size:100"`
	DeviceModel    string  `gorm:"size:100"`
	Issue          string  `gorm:"type:text"`
	DevicePassword *string `gorm:"size:255"`
	DataRetention  bool    `gorm:"not null;default:false"`
	Status         string  `gorm:"size:30;not null;index"`
	Notes          string  `gorm:"type:text"`
	Technician     string  `gorm:"size:100"`
	StartedAt      int64   `gorm:"not null;index"`
	EndedAt        *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: no foreign key constraints or associations. Cascades and
	// reference-nulling are explicit set-based statements inside the owning
	// transaction.
}

func (JobModel) TableName() string {
	return "jobs"
}
