package models

type UserCredentials struct {
	RecordBase `bson:",inline"`
	Username   string `json:"username" bson:"username"`
	Email      string `json:"email" bson:"email"`
	Password   string `json:"password" bson:"password"`
	TimeModel  `bson:",inline"`
}

type UserProfile struct {
	RecordBase       `bson:",inline"`
	Name             string           `json:"name" bson:"name"`
	Email            string           `json:"email" bson:"email"`
	Phone            string           `json:"phone" bson:"phone"`
	DateOfBirth      string           `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender           string           `json:"gender" bson:"gender"`
	HeightCm         float64          `json:"heightCm" bson:"heightCm"`
	WeightKg         float64          `json:"weightKg" bson:"weightKg"`
	BloodType        string           `json:"bloodType" bson:"bloodType"`
	Allergies        []string         `json:"allergies" bson:"allergies"`
	Conditions       []string         `json:"conditions" bson:"conditions"`
	EmergencyContact EmergencyContact `json:"emergencyContact" bson:"emergencyContact"`
	TimeModel        `bson:",inline"`
}

type EmergencyContact struct {
	Name         string `json:"name" bson:"name"`
	Relationship string `json:"relationship" bson:"relationship"`
	Phone        string `json:"phone" bson:"phone"`
}
