package servicebus

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"walkingtube/infrastructure/logger"
)

// FeedServiceBus mirrors videos change events to an Azure Service Bus queue.
// A nil client turns it into a no-op.
type FeedServiceBus struct {
	client *azservicebus.Client
	queue  string
}

func NewFeedServiceBus(client *azservicebus.Client, queue string) *FeedServiceBus {
	if queue == "" {
		queue = "video-changes"
	}
	return &FeedServiceBus{client: client, queue: queue}
}

func (f *FeedServiceBus) Publish(ctx context.Context, payload []byte) error {
	if f.client == nil {
		return nil
	}
	sender, err := f.client.NewSender(f.queue, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}()

	return sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil)
}
