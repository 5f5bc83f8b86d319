// Package access 集中实现平台的角色访问判定与结业资格计算。
// 所有判定均为纯函数：数据查询通过注入的 lookup 回调完成，
// 返回 false 表示“无权访问”，由调用方负责翻译为对外错误。
package access

import (
	"workshop_hub_backend/internal/model"
)

// Identity 已解析的调用者身份（来自JWT claims）
type Identity struct {
	UserID uint
	Roles  model.RoleList
}

// InstructorLookup 查询讲师是否被指派到某工作坊
type InstructorLookup func(workshopID, instructorID uint) (bool, error)

// EnrollmentLookup 查询参与者是否报名了某工作坊
type EnrollmentLookup func(participantID, workshopID uint) (bool, error)

// CanAccessWorkshopScopedResource 判定工作坊范围内资源（工作坊详情、作业、
// 报名记录、提交列表）的读取权限。
//
// 优先级：ADMIN > 讲师授课 > 讲师自身报名 > 参与者报名 > 拒绝。
// 讲师即使未授课，也可能以参与者身份报名了同一工作坊，此时同样放行。
func CanAccessWorkshopScopedResource(
	id Identity,
	workshopID uint,
	teaches InstructorLookup,
	enrolled EnrollmentLookup,
) (bool, error) {
	if id.Roles.Has(model.RoleAdmin) {
		return true, nil
	}

	if id.Roles.Has(model.RoleInstructor) {
		ok, err := teaches(workshopID, id.UserID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		return enrolled(id.UserID, workshopID)
	}

	if id.Roles.Has(model.RoleParticipant) {
		return enrolled(id.UserID, workshopID)
	}

	return false, nil
}

// CanModifyWorkshopScopedResource 判定作业、报名等资源的写权限。
// 讲师仅在授课时可写，自身报名不授予写权限；参与者一律拒绝。
func CanModifyWorkshopScopedResource(
	id Identity,
	workshopID uint,
	teaches InstructorLookup,
) (bool, error) {
	if id.Roles.Has(model.RoleAdmin) {
		return true, nil
	}

	if id.Roles.Has(model.RoleInstructor) {
		return teaches(workshopID, id.UserID)
	}

	return false, nil
}

// CanAccessParticipantScoped 判定参与者私有数据（本人证书、本人提交）的访问权限。
// 本人访问恒为真，不经过角色判定。
func CanAccessParticipantScoped(id Identity, participantID uint) bool {
	if id.UserID == participantID {
		return true
	}
	return id.Roles.Has(model.RoleAdmin)
}
