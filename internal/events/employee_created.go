package events

import "time"

const (
	EmployeeCreatedTopic     = "messbill.employee.lifecycle.v1"
	EmployeeCreatedEventType = "employee_created"
)

// EmployeeCreatedEvent is published once per new employee master record.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmpCode    string    `json:"emp_code"`
	EmpName    string    `json:"emp_name"`
	Department string    `json:"department"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}
