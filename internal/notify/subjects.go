package notify

const (
	StreamName   = "LIMELIGHT_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectAuditionCreated(auditionID string) string {
	return "casting.audition." + auditionID + ".created"
}
func SubjectAuditionLiked(auditionID string) string {
	return "casting.audition." + auditionID + ".liked"
}
func SubjectAuditionCommented(auditionID string) string {
	return "casting.audition." + auditionID + ".commented"
}
func SubjectSubmissionReceived(submissionID string) string {
	return "casting.submission." + submissionID + ".received"
}
func SubjectSubmissionScored(submissionID string) string {
	return "casting.submission." + submissionID + ".scored"
}
func SubjectUserNotified(userID string) string {
	return "casting.notify." + userID
}
