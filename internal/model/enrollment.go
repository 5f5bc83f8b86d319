package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
)

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	ParticipantID uint             `gorm:"not null;uniqueIndex:idx_participant_workshop" json:"participantId"`
	WorkshopID    uint             `gorm:"not null;uniqueIndex:idx_participant_workshop" json:"workshopId"`
	Status        EnrollmentStatus `gorm:"type:varchar(16);default:'PENDING'" json:"status"`
	JoinedAt      time.Time        `gorm:"not null" json:"joinedAt"`

	Participant *User     `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Workshop    *Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
