package models

// Ingredient represents an ingredient. A zero ID marks an unsaved record.
type Ingredient struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
}
