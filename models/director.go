package models

import "time"

// Director owns zero or more movies. Movies reference directors by
// association only: deleting a movie never cascades to its director.
type Director struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	DOB         time.Time `json:"dob" gorm:"not null"`
	Nationality string    `json:"nationality" gorm:"not null"`
	Movies      []Movie   `json:"-" gorm:"foreignKey:DirectorID"`
	Audited
}
