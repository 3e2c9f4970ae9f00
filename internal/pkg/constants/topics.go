package constants

// NSQ topics
const (
	TopicEmailNotification = "notification.email"
)
