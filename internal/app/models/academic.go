package models

// ExamType defines a category of examination (midterm, final, quiz)
type ExamType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Weightage   string `json:"weightage,omitempty"`
}

// Exam defines one scheduled examination
type Exam struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ExamTypeID     string `json:"exam_type"`
	ClassID        string `json:"class_assigned"`
	SubjectID      string `json:"subject"`
	AcademicYearID string `json:"academic_year,omitempty"`
	Date           string `json:"date"`
	MaxMarks       int    `json:"max_marks"`
	PassingMarks   int    `json:"passing_marks,omitempty"`
}

// Mark defines one student's result in one exam
type Mark struct {
	ID            string  `json:"id"`
	ExamID        string  `json:"exam"`
	StudentID     string  `json:"student"`
	MarksObtained float64 `json:"marks_obtained"`
	Grade         string  `json:"grade,omitempty"`
	Remarks       string  `json:"remarks,omitempty"`
}

// StudentPerformance defines the aggregated per-student mark report.
type StudentPerformance struct {
	StudentID      string             `json:"student_id"`
	StudentName    string             `json:"student_name,omitempty"`
	OverallAverage float64            `json:"overall_average"`
	SubjectAverage map[string]float64 `json:"subject_averages,omitempty"`
	Marks          []Mark             `json:"marks,omitempty"`
}

// AcademicYear defines a school year
type AcademicYear struct {
	ID        string `json:"id"`
	Name      string `json:"name"` // e.g. "2025-2026"
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current,omitempty"`
}

// ClassSubject links a subject (and teacher) to a class
type ClassSubject struct {
	ID        string `json:"id"`
	ClassID   string `json:"class_assigned"`
	SubjectID string `json:"subject"`
	TeacherID string `json:"teacher,omitempty"`
}

// ClassSession defines one scheduled sitting of a class, the unit
// attendance records point at.
type ClassSession struct {
	ID        string `json:"id"`
	ClassID   string `json:"class_assigned"`
	SubjectID string `json:"subject,omitempty"`
	TeacherID string `json:"teacher,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// GradingScheme defines a mapping from score bands to grades
type GradingScheme struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Grades []struct {
		Grade    string  `json:"grade"`
		MinScore float64 `json:"min_score"`
		MaxScore float64 `json:"max_score"`
	} `json:"grades,omitempty"`
}
