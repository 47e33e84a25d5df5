package model

import (
	"time"

	"github.com/google/uuid"
)

type DioceseModel struct {
	DioceseID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"diocese_id"`
	DioceseName       string    `gorm:"type:varchar(150);not null" json:"diocese_name"`
	DioceseAddress    string    `gorm:"type:text" json:"diocese_address"`
	DioceseCity       string    `gorm:"type:varchar(100)" json:"diocese_city"`
	DioceseState      string    `gorm:"type:varchar(50)" json:"diocese_state"`
	DioceseZipCode    string    `gorm:"type:varchar(20)" json:"diocese_zip_code"`
	DiocesePhone      string    `gorm:"type:varchar(30)" json:"diocese_phone"`
	DioceseEmail      string    `gorm:"type:varchar(150)" json:"diocese_email"`
	DioceseWebsite    string    `gorm:"type:text" json:"diocese_website"`
	DioceseLogoURL    string    `gorm:"type:text" json:"diocese_logo_url"`
	DioceseBishopName string    `gorm:"type:varchar(150)" json:"diocese_bishop_name"`
	DioceseStatus     string    `gorm:"type:varchar(20);default:'ACTIVE'" json:"diocese_status"`
	DioceseCreatedAt  time.Time `gorm:"autoCreateTime" json:"diocese_created_at"`
	DioceseUpdatedAt  time.Time `gorm:"autoUpdateTime" json:"diocese_updated_at"`
}

func (DioceseModel) TableName() string {
	return "dioceses"
}
