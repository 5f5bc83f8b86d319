package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleInstructor  Role = "INSTRUCTOR"
	RoleParticipant Role = "PARTICIPANT"
)

// RoleList 以JSON形式存储的角色集合（一个用户可同时持有多个角色）
type RoleList []Role

func (r RoleList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RoleList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported role list type %T", value)
	}
	return json.Unmarshal(data, r)
}

func (r RoleList) Has(role Role) bool {
	for _, item := range r {
		if item == role {
			return true
		}
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	FullName       string         `gorm:"size:100;not null" json:"fullName"`
	Email          string         `gorm:"size:100;unique;not null" json:"email"`
	Password       string         `gorm:"size:100;not null" json:"-"`
	Roles          RoleList       `gorm:"type:json" json:"roles"`
	AdditionalInfo datatypes.JSON `gorm:"type:json" json:"additionalInfo,omitempty"`

	Enrollments  []Enrollment  `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
	Submissions  []Submission  `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
	Certificates []Certificate `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
