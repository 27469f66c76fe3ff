package pubsub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"walkingtube/infrastructure/pubsub"
)

func TestFeedPubSub_NilClientIsNoOp(t *testing.T) {
	f := pubsub.NewFeedPubSub(nil, "")
	assert.NotNil(t, f)
	assert.NoError(t, f.Publish(context.Background(), []byte(`{}`)))
}
