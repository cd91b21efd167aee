package models

// MovieDetail holds the free-text detail of exactly one movie. Its
// lifecycle is owned by the movie: it is created and deleted with it.
type MovieDetail struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Detail string `json:"detail" gorm:"type:text;not null"`
}

// Movie is the aggregate root of the catalog. Director and Detail are
// mandatory at creation; Genres is a set maintained through the
// movie_genres join table.
type Movie struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Title      string      `json:"title" gorm:"uniqueIndex;not null"`
	LikeCount  int         `json:"likeCount" gorm:"not null;default:0"`
	DirectorID uint        `json:"directorId" gorm:"not null"`
	Director   Director    `json:"director"`
	DetailID   uint        `json:"-" gorm:"uniqueIndex;not null"`
	Detail     MovieDetail `json:"detail" gorm:"foreignKey:DetailID"`
	Genres     []Genre     `json:"genres" gorm:"many2many:movie_genres"`
	Audited
}
