package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 上传用途，决定对象存储中的键布局
const (
	UploadPurposeWorkshopHome     = "WORKSHOP_HOME"
	UploadPurposeAssignmentGrader = "ASSIGNMENT_GRADER"
	UploadPurposeAssignmentNotes  = "ASSIGNMENT_NOTEBOOK"
	UploadPurposeOther            = "OTHER"
)
