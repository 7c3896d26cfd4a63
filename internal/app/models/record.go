package models

import "reflect"

// Record is implemented by every entity kept in a record store. Records are
// owned by exactly one user and addressed by a client generated id.
type Record interface {
	GetID() string
	SetID(id string)
	GetUserID() string
	SetUserID(userID string)
}

type RecordBase struct {
	ID     string `json:"id" bson:"_id"`
	UserID string `json:"userId" bson:"userId"`
}

func (r *RecordBase) GetID() string {
	return r.ID
}

func (r *RecordBase) SetID(id string) {
	r.ID = id
}

func (r *RecordBase) GetUserID() string {
	return r.UserID
}

func (r *RecordBase) SetUserID(userID string) {
	r.UserID = userID
}

// IsNilRecord reports a nil record, including a typed nil pointer such as a
// JSON null decoded into a slice of pointers.
func IsNilRecord(record Record) bool {
	if record == nil {
		return true
	}
	value := reflect.ValueOf(record)
	return value.Kind() == reflect.Pointer && value.IsNil()
}
