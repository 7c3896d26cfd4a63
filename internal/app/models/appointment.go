package models

type UserAppointment struct {
	RecordBase `bson:",inline"`
	Title      string `json:"title" bson:"title" validate:"required"`
	DoctorName string `json:"doctorName" bson:"doctorName"`
	Location   string `json:"location" bson:"location"`
	Date       string `json:"date" bson:"date" validate:"omitempty,rfc3339"`
	Notes      string `json:"notes" bson:"notes"`
	Completed  bool   `json:"completed" bson:"completed"`
}
