package ml

// Risk factor labels. Recommendation lookup keys off the exact text, so
// these are constants rather than inline literals.
const (
	RiskLowAttendance      = "Low attendance rate"
	RiskPoorCurrent        = "Poor current performance"
	RiskWeakHistory        = "Weak academic history"
	RiskLimitedAssessments = "Limited assessment data"
)

// IdentifyRiskFactors maps a feature vector to its risk factor labels. The
// evaluation order is fixed; downstream recommendation mapping and persisted
// rows both rely on it.
func IdentifyRiskFactors(features FeatureVector) []string {
	var factors []string
	if features.AttendanceRate < 70 {
		factors = append(factors, RiskLowAttendance)
	}
	if features.CurrentCourseAvg < 60 {
		factors = append(factors, RiskPoorCurrent)
	}
	if features.AvgHistoricalPerformance < 60 {
		factors = append(factors, RiskWeakHistory)
	}
	if features.AssessmentsCompleted < 2 {
		factors = append(factors, RiskLimitedAssessments)
	}
	return factors
}

// IsAtRisk flags a student when more than two qualitative factors fired or
// the raw prediction alone is below passing.
func IsAtRisk(riskFactors []string, predictedGrade float64) bool {
	return len(riskFactors) > 2 || predictedGrade < 60
}

// GenerateRecommendations maps risk factors (and course difficulty) to an
// ordered list of recommendation lines. The list is never empty.
func GenerateRecommendations(features FeatureVector, riskFactors []string) []string {
	var recommendations []string

	for _, factor := range riskFactors {
		switch factor {
		case RiskLowAttendance:
			recommendations = append(recommendations, "Improve class attendance to at least 80%")
		case RiskPoorCurrent:
			recommendations = append(recommendations, "Seek additional help from instructors or tutors")
		case RiskWeakHistory:
			recommendations = append(recommendations, "Consider enrolling in academic support programs")
		}
	}

	if features.CourseDifficulty == 3 {
		recommendations = append(recommendations, "Allocate extra study time for this advanced course")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue with current study approach")
	}
	return recommendations
}
