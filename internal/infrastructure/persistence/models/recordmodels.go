package models

type CommunicationModel struct {
	ID        uint   `gorm:"primaryKey"`
	JobID     uint   `gorm:"not null;index"`
	Kind      string `gorm:"size:50"`
	Note      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CommunicationModel) TableName() string {
	return "communications"
}

type CostModel struct {
	ID          uint    `gorm:"primaryKey"`
	JobID       uint    `gorm:"not null;index"`
	CostType    string  `gorm:"size:50"`
	Amount      float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
}

func (CostModel) TableName() string {
	return "costs"
}

type OrderModel struct {
	ID          uint    `gorm:"primaryKey"`
	JobID       uint    `gorm:"not null;index"`
	OrderDate   int64   `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Quantity    int     `gorm:"not null"`
	TotalCost   float64 `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type PaymentModel struct {
	ID          uint    `gorm:"primaryKey"`
	JobID       uint    `gorm:"not null;index"`
	Amount      float64 `gorm:"not null"`
	PaymentType string  `gorm:"size:50"`
	PaidAt      int64   `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

type HowHeardModel struct {
	JobID     uint   `gorm:"primaryKey;autoIncrement:false"`
	Source    string `gorm:"size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (HowHeardModel) TableName() string {
	return "howheard"
}
