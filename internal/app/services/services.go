// Package services exposes one typed facade per backend endpoint group, so
// page-level code never handles raw paths or JSON. Every facade calls the
// shared client; none of them retries, caches, or transforms errors beyond
// what the client already does.
package services

import (
	"github.com/okul/schoolhub/internal/client"
)

// Services bundles every resource facade over one shared client.
type Services struct {
	Auth          *AuthService
	Core          *CoreService
	Academic      *AcademicService
	Attendance    *AttendanceService
	Assignments   *AssignmentService
	Resources     *ResourceService
	Notices       *NoticeService
	Behavior      *BehaviorService
	Fees          *FeeService
	Timetable     *TimetableService
	Payments      *PaymentService
	Communication *CommunicationService
}

// NewServices wires all resource facades to c.
func NewServices(c *client.Client) *Services {
	return &Services{
		Auth:          NewAuthService(c),
		Core:          NewCoreService(c),
		Academic:      NewAcademicService(c),
		Attendance:    NewAttendanceService(c),
		Assignments:   NewAssignmentService(c),
		Resources:     NewResourceService(c),
		Notices:       NewNoticeService(c),
		Behavior:      NewBehaviorService(c),
		Fees:          NewFeeService(c),
		Timetable:     NewTimetableService(c),
		Payments:      NewPaymentService(c),
		Communication: NewCommunicationService(c),
	}
}
