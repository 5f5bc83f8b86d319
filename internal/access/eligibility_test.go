package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestEligibilityExactThreshold(t *testing.T) {
	compulsory := []uint{1, 2, 3}
	best := map[uint]BestScore{
		1: {Score: 80, PassingScore: 60},
		2: {Score: 60, PassingScore: 60},
		3: {Score: 100, PassingScore: 90},
	}

	result := EvaluateEligibility(nil, compulsory, best)
	assert.True(t, result.Eligible)
	assert.Equal(t, 3, result.PassedCount)
	assert.Equal(t, 3, result.RequiredCount)
}

func TestEligibilityOneShort(t *testing.T) {
	compulsory := []uint{1, 2, 3}
	best := map[uint]BestScore{
		1: {Score: 80, PassingScore: 60},
		2: {Score: 59, PassingScore: 60},
		3: {Score: 100, PassingScore: 90},
	}

	result := EvaluateEligibility(nil, compulsory, best)
	assert.False(t, result.Eligible)
	assert.Equal(t, 2, result.PassedCount)
	assert.Equal(t, 3, result.RequiredCount)
}

func TestEligibilityOverrideBelowCompulsoryCount(t *testing.T) {
	compulsory := []uint{1, 2, 3}
	best := map[uint]BestScore{
		1: {Score: 80, PassingScore: 60},
		2: {Score: 70, PassingScore: 60},
	}

	result := EvaluateEligibility(intPtr(2), compulsory, best)
	assert.True(t, result.Eligible)
	assert.Equal(t, 2, result.PassedCount)
	assert.Equal(t, 2, result.RequiredCount)
}

func TestEligibilityNonCompulsoryExcluded(t *testing.T) {
	// 作业4是选修：即使满分也不进分子，不尝试也不进分母
	compulsory := []uint{1, 2}
	best := map[uint]BestScore{
		1: {Score: 80, PassingScore: 60},
		2: {Score: 70, PassingScore: 60},
		4: {Score: 100, PassingScore: 50},
	}

	result := EvaluateEligibility(nil, compulsory, best)
	assert.True(t, result.Eligible)
	assert.Equal(t, 2, result.PassedCount)
	assert.Equal(t, 2, result.RequiredCount)
}

func TestEligibilityUnattemptedCompulsoryNotPassed(t *testing.T) {
	compulsory := []uint{1, 2, 3}
	best := map[uint]BestScore{
		1: {Score: 80, PassingScore: 60},
	}

	result := EvaluateEligibility(nil, compulsory, best)
	assert.False(t, result.Eligible)
	assert.Equal(t, 1, result.PassedCount)
	assert.Equal(t, 3, result.RequiredCount)
}

func TestEligibilityZeroRequirementWorkshop(t *testing.T) {
	result := EvaluateEligibility(nil, nil, nil)
	assert.True(t, result.Eligible, "无必修作业且无覆盖值时视为无结业要求")
	assert.Equal(t, 0, result.PassedCount)
	assert.Equal(t, 0, result.RequiredCount)
}

func TestEligibilityUnreachableOverride(t *testing.T) {
	// 管理员把要求数配得比必修作业还多：永远不合格，原样接受
	compulsory := []uint{1}
	best := map[uint]BestScore{
		1: {Score: 100, PassingScore: 60},
	}

	result := EvaluateEligibility(intPtr(3), compulsory, best)
	assert.False(t, result.Eligible)
	assert.Equal(t, 1, result.PassedCount)
	assert.Equal(t, 3, result.RequiredCount)
}
