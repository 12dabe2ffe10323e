package migration

import (
	"repairbay/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.JobModel{},
		&models.CommunicationModel{},
		&models.CostModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.HowHeardModel{},
	}
}
