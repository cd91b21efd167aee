package models

// Genre has a unique name and a many-to-many relation with movies. The
// join table's composite primary key keeps genre membership a set.
type Genre struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"name" gorm:"uniqueIndex;not null"`
	Movies []Movie `json:"-" gorm:"many2many:movie_genres"`
	Audited
}
