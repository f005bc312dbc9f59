package warmer

import (
	"context"

	"cloud.google.com/go/pubsub"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Start subscribes to topicID and runs fn for every message until ctx is
// done. A failed fn nacks the message so it is redelivered.
func Start(
	ctx context.Context,
	projectID string,
	topicID string,
	subID string,
	fn func(ctx context.Context) error,
	logger logrus.FieldLogger,
	opts ...option.ClientOption,
) error {
	pubsubClient, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return errors.Wrap(err, "create pubsub client")
	}
	defer pubsubClient.Close()

	topic, err := getOrCreateTopic(ctx, pubsubClient, topicID)
	if err != nil {
		return err
	}

	sub, err := getOrCreateSub(ctx, pubsubClient, subID, &pubsub.SubscriptionConfig{
		Topic: topic,
	})
	if err != nil {
		return err
	}

	logger.WithField("subscription", subID).Info("cache warmer listening")
	return sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if err := fn(ctx); err != nil {
			logger.WithError(err).Error("message processing failed")
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

// Publish sends one warm request to topicID.
func Publish(ctx context.Context, projectID, topicID string, opts ...option.ClientOption) (string, error) {
	pubsubClient, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return "", errors.Wrap(err, "create pubsub client")
	}
	defer pubsubClient.Close()

	topic, err := getOrCreateTopic(ctx, pubsubClient, topicID)
	if err != nil {
		return "", err
	}
	defer topic.Stop()

	id, err := topic.Publish(ctx, &pubsub.Message{Data: []byte("warm")}).Get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "publish warm request")
	}
	return id, nil
}

// getOrCreateTopic gets a topic or creates it if it doesn't exist.
func getOrCreateTopic(ctx context.Context, client *pubsub.Client, topicID string) (*pubsub.Topic, error) {
	topic := client.Topic(topicID)
	ok, err := topic.Exists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "check if topic exists")
	}
	if ok {
		return topic, nil
	}

	topic, err = client.CreateTopic(ctx, topicID)
	if status.Code(err) == codes.AlreadyExists {
		return client.Topic(topicID), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "create topic (%q)", topicID)
	}
	return topic, nil
}

// getOrCreateSub gets a subscription or creates it if it doesn't exist.
func getOrCreateSub(ctx context.Context, client *pubsub.Client, subID string, cfg *pubsub.SubscriptionConfig) (*pubsub.Subscription, error) {
	sub := client.Subscription(subID)
	ok, err := sub.Exists(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "check if subscription exists")
	}
	if ok {
		return sub, nil
	}

	sub, err = client.CreateSubscription(ctx, subID, *cfg)
	if status.Code(err) == codes.AlreadyExists {
		return client.Subscription(subID), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "create subscription (%q)", subID)
	}
	return sub, nil
}
