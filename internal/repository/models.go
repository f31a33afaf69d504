package repository

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Patient struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:100;not null"`
	MedicalHistory string    `gorm:"type:text"`
	SurgeryDate    time.Time `gorm:"type:date;not null"`
}

// Staff is both singular and plural in the API, keep the table name as is.
type Staff struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Role        string `gorm:"size:50;not null"`
	Credentials string `gorm:"size:200;not null"`
}

func (Staff) TableName() string {
	return "staff"
}
