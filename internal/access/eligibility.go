package access

// EligibilityResult 结业资格判定结果。不合格时 PassedCount/RequiredCount
// 返回给调用方，用于向客户端展示完成进度。
type EligibilityResult struct {
	Eligible      bool `json:"eligible"`
	PassedCount   int  `json:"passedCount"`
	RequiredCount int  `json:"requiredCount"`
}

// EvaluateEligibility 判定参与者是否满足工作坊的结业要求。
//
// requiredOverride 为工作坊的 requiredPassedAssignments，为 nil 时默认
// 等于必修作业总数。仅必修作业计入分子与分母：未列出的作业不计，
// 选修作业即使满分也不计。requiredOverride 可能超过必修作业数，
// 此时资格永远无法达成，属管理员配置责任，这里不做校验。
func EvaluateEligibility(
	requiredOverride *int,
	compulsoryIDs []uint,
	best map[uint]BestScore,
) EligibilityResult {
	required := len(compulsoryIDs)
	if requiredOverride != nil {
		required = *requiredOverride
	}

	passed := 0
	for _, assignmentID := range compulsoryIDs {
		score, attempted := best[assignmentID]
		if attempted && score.Score >= score.PassingScore {
			passed++
		}
	}

	return EligibilityResult{
		Eligible:      passed >= required,
		PassedCount:   passed,
		RequiredCount: required,
	}
}
