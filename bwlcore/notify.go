package bwlcore

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/basewarphq/bwlambda/bwlcfg"
	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notification is the payload relayed to the notification dispatcher.
type Notification struct {
	Type    string `json:"type"`
	Lambda  string `json:"lambda"`
	Message string `json:"message"`
}

// envelope is the SNS message body for MessageStructure "json". Only the
// default entry is set, so every protocol receives the same payload.
type envelope struct {
	Default string `json:"default"`
}

// EncodeNotification renders n as an SNS JSON message structure.
func EncodeNotification(n Notification) (string, error) {
	inner, err := json.Marshal(n)
	if err != nil {
		return "", errors.Wrap(err, "encode notification")
	}
	outer, err := json.Marshal(envelope{Default: string(inner)})
	if err != nil {
		return "", errors.Wrap(err, "encode notification envelope")
	}
	return string(outer), nil
}

// DecodeNotification reads the notification delivered to a subscribed
// function. SNS hands subscribers the default entry of the envelope.
func DecodeNotification(record events.SNSEventRecord) (Notification, error) {
	var n Notification
	if err := json.Unmarshal([]byte(record.SNS.Message), &n); err != nil {
		return Notification{}, errors.Wrapf(err, "decode notification %s", record.SNS.MessageID)
	}
	if n.Type == "" {
		return Notification{}, errors.Newf("notification %s has no type", record.SNS.MessageID)
	}
	return n, nil
}

// SendNotification publishes a notification to NOTIFICATION_ARN for
// chain-dispatch to whichever service the dispatcher is configured for.
func (c *Core) SendNotification(ctx context.Context, notificationType, message string) error {
	if c.sns == nil {
		return errors.Wrap(errNotInitialized, "SNS: call InitSNS first")
	}
	arn := c.settings.NotificationARN()
	if arn == "" {
		return errors.WithStack(&bwlcfg.InvalidValueError{
			Key:    bwlcfg.KeyNotificationARN,
			Reason: "a target is required to send notifications",
		})
	}

	body, err := EncodeNotification(Notification{
		Type:    notificationType,
		Lambda:  c.name,
		Message: message,
	})
	if err != nil {
		return err
	}

	out, err := c.sns.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(arn),
		Message:          aws.String(body),
		MessageStructure: aws.String("json"),
	})
	if err != nil {
		return errors.Wrapf(err, "publish notification to %s", arn)
	}
	c.logger.Debug("notification sent",
		zap.String("type", notificationType),
		zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}

// Notify sends a notification only when NOTIFICATIONS_ENABLED is on. It
// reports whether a notification was sent.
func (c *Core) Notify(ctx context.Context, notificationType, message string) (bool, error) {
	enabled, err := c.settings.NotificationsEnabled()
	if err != nil || !enabled {
		return false, err
	}
	if err := c.SendNotification(ctx, notificationType, message); err != nil {
		return false, err
	}
	return true, nil
}
