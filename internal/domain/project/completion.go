package project

import "math"

// CompletionPercentage returns round(100 * completed / total), or 0 when the
// project has no tasks. Cancelled tasks count toward total only.
func CompletionPercentage(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
