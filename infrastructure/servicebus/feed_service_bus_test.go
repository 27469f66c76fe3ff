package servicebus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"walkingtube/infrastructure/servicebus"
)

func TestFeedServiceBus_NilClientIsNoOp(t *testing.T) {
	f := servicebus.NewFeedServiceBus(nil, "")
	assert.NotNil(t, f)
	assert.NoError(t, f.Publish(context.Background(), []byte(`{}`)))
}
