package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"

	"walkingtube/infrastructure/logger"
)

// FeedPubSub mirrors videos change events to a Google Pub/Sub topic for
// external consumers. A nil client turns it into a no-op.
type FeedPubSub struct {
	client *pubsub.Client
	topic  string
}

func NewFeedPubSub(client *pubsub.Client, topic string) *FeedPubSub {
	if topic == "" {
		topic = "walkingtube-video-changes"
	}
	return &FeedPubSub{client: client, topic: topic}
}

func (f *FeedPubSub) Publish(ctx context.Context, payload []byte) error {
	if f.client == nil {
		return nil
	}
	topic := f.client.Topic(f.topic)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		if _, err = f.client.CreateTopic(ctx, f.topic); err != nil {
			return err
		}
		topic = f.client.Topic(f.topic)
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithField("server ID", serverID).Debug("Change event mirrored to Pub/Sub")
	return nil
}
