package model

import (
	"time"

	"github.com/google/uuid"
)

type ParishModel struct {
	ParishID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"parish_id"`
	ParishDioceseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"parish_diocese_id"`
	ParishName       string    `gorm:"type:varchar(150);not null" json:"parish_name"`
	ParishAddress    string    `gorm:"type:text" json:"parish_address"`
	ParishCity       string    `gorm:"type:varchar(100)" json:"parish_city"`
	ParishState      string    `gorm:"type:varchar(50)" json:"parish_state"`
	ParishZipCode    string    `gorm:"type:varchar(20)" json:"parish_zip_code"`
	ParishPhone      string    `gorm:"type:varchar(30)" json:"parish_phone"`
	ParishEmail      string    `gorm:"type:varchar(150)" json:"parish_email"`
	ParishWebsite    string    `gorm:"type:text" json:"parish_website"`
	ParishLogoURL    string    `gorm:"type:text" json:"parish_logo_url"`
	ParishPriestName string    `gorm:"type:varchar(150)" json:"parish_priest_name"`
	ParishLatitude   *float64  `gorm:"type:decimal(9,6)" json:"parish_latitude,omitempty"`
	ParishLongitude  *float64  `gorm:"type:decimal(9,6)" json:"parish_longitude,omitempty"`
	ParishStatus     string    `gorm:"type:varchar(20);default:'ACTIVE'" json:"parish_status"`
	ParishCreatedAt  time.Time `gorm:"autoCreateTime" json:"parish_created_at"`
	ParishUpdatedAt  time.Time `gorm:"autoUpdateTime" json:"parish_updated_at"`
}

func (ParishModel) TableName() string {
	return "parishes"
}
