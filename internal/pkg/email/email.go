package email

import (
	"fmt"

	"github.com/contoso/timereg-backend-go/internal/config"
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"gopkg.in/gomail.v2"
)

// Notifier informs an employee about a manager review decision on one of
// their time records. Sending is best-effort; the review itself never fails
// on a mail error.
type Notifier interface {
	NotifyReviewDecision(to user.User, record timerecord.TimeRecord) error
}

type notifierImpl struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewNotifier creates a gomail-backed notifier.
func NewNotifier(cfg config.SMTPConfig) Notifier {
	return &notifierImpl{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (n *notifierImpl) NotifyReviewDecision(to user.User, record timerecord.TimeRecord) error {
	status := "reviewed"
	if record.ApprovalStatus != nil {
		status = string(*record.ApprovalStatus)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your shift of %s was %s", record.CheckInTime.Format("2006-01-02"), status))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nyour time record starting at %s has been %s by your manager.\n",
		to.DisplayName,
		record.CheckInTime.Format("2006-01-02 15:04"),
		status,
	))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send review notification: %w", err)
	}
	return nil
}

type noopNotifier struct{}

// NewNoopNotifier is used when no SMTP relay is configured.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) NotifyReviewDecision(user.User, timerecord.TimeRecord) error {
	return nil
}
