package access

// ScoredAttempt 某参与者对某作业的一次提交
type ScoredAttempt struct {
	AssignmentID uint
	Score        int
	PassingScore int
}

// BestScore 单个作业的最佳成绩，连同作业的及格线一起传给下一阶段
type BestScore struct {
	Score        int
	PassingScore int
}

// BestScoresByAssignment 将无序的提交记录按作业归并为最佳成绩映射。
// 同分的多次尝试任取其一；输入为空时返回空映射；不修改输入。
func BestScoresByAssignment(attempts []ScoredAttempt) map[uint]BestScore {
	best := make(map[uint]BestScore, len(attempts))
	for _, attempt := range attempts {
		current, ok := best[attempt.AssignmentID]
		if !ok || attempt.Score > current.Score {
			best[attempt.AssignmentID] = BestScore{
				Score:        attempt.Score,
				PassingScore: attempt.PassingScore,
			}
		}
	}
	return best
}
