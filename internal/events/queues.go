package events

// Logical queue names. Each is consumed independently by every interested
// service.
const (
	QueueProjectCreation    = "project-creation"
	QueueProjectUpdate      = "project-update"
	QueueStudentPostulation = "student-postulation"
)

// Queues lists every logical queue.
var Queues = []string{QueueProjectCreation, QueueProjectUpdate, QueueStudentPostulation}

const ContentTypeJSON = "application/json"
