package models

type Discipline struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

type Theme struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Name         string `bson:"name" json:"name"`
	DisciplineID string `bson:"discipline_id" json:"discipline_id"`
}

type Subtheme struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Name    string `bson:"name" json:"name"`
	ThemeID string `bson:"theme_id" json:"theme_id"`
}
