// Package grading converts numeric grades to points on a 4.0 scale.
package grading

// NumericToGPA maps a numeric grade (0-100) to 4.0-scale points.
func NumericToGPA(grade float64) float64 {
	switch {
	case grade >= 90:
		return 4.0
	case grade >= 80:
		return 3.0
	case grade >= 70:
		return 2.0
	case grade >= 60:
		return 1.0
	default:
		return 0.0
	}
}
