package models

type UserDocument struct {
	RecordBase `bson:",inline"`
	Title      string `json:"title" bson:"title" validate:"required"`
	Type       string `json:"type" bson:"type" validate:"required,oneof=lab_result prescription imaging insurance vaccination other"`
	Date       string `json:"date" bson:"date" validate:"omitempty,rfc3339"`
	FileURL    string `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	ObjectKey  string `json:"objectKey,omitempty" bson:"objectKey,omitempty"`
	Notes      string `json:"notes" bson:"notes"`
}
