package models

// Recipe represents a recipe authored by a chef. A zero ID marks an
// unsaved record. The author is set once at creation and preserved
// across updates.
type Recipe struct {
	ID           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Instructions string `json:"instructions" gorm:"type:text"`
	AuthorID     int    `json:"-"`
	Author       Chef   `json:"author" gorm:"foreignKey:AuthorID"`
}
