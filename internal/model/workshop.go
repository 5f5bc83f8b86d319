package model

import (
	"time"

	"gorm.io/datatypes"
)

type WorkshopStatus string

const (
	WorkshopDraft    WorkshopStatus = "DRAFT"
	WorkshopActive   WorkshopStatus = "ACTIVE"
	WorkshopArchived WorkshopStatus = "ARCHIVED"
)

// swagger:model Workshop
type Workshop struct {
	BaseModel
	Name   string         `gorm:"size:200;not null" json:"name"`
	Status WorkshopStatus `gorm:"type:varchar(16);default:'DRAFT'" json:"status"`

	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	// 为空时默认为必修作业总数
	RequiredPassedAssignments *int `json:"requiredPassedAssignments"`

	HomeArchiveKey string         `gorm:"size:512" json:"homeArchiveKey,omitempty"`
	AdditionalInfo datatypes.JSON `gorm:"type:json" json:"additionalInfo,omitempty"`

	Assignments []Assignment         `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
	Instructors []WorkshopInstructor `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"-"`
	Enrollments []Enrollment         `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Workshop) TableName() string {
	return "workshops"
}

// WorkshopInstructor 讲师与工作坊的多对多关联，(workshop, instructor) 唯一
type WorkshopInstructor struct {
	BaseModel
	WorkshopID   uint `gorm:"not null;uniqueIndex:idx_workshop_instructor" json:"workshopId"`
	InstructorID uint `gorm:"not null;uniqueIndex:idx_workshop_instructor" json:"instructorId"`

	Instructor *User `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE" json:"instructor,omitempty"`
}

func (WorkshopInstructor) TableName() string {
	return "workshop_instructors"
}
