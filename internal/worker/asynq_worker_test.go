package worker

import (
	"context"
	"testing"

	"github.com/simplyfresh/simplyfresh/internal/queue"

	"github.com/hibiken/asynq"
)

func TestRegisterNilSafe(t *testing.T) {
	var c *Consumer
	c.Register(asynq.NewServeMux())

	consumer := NewConsumer(nil)
	consumer.Register(nil)
}

func TestHandleOrderStatusNotifyInvalidPayload(t *testing.T) {
	consumer := NewConsumer(nil)

	task := asynq.NewTask(queue.TaskOrderStatusNotify, []byte("not-json"))
	if err := consumer.handleOrderStatusNotify(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error for malformed payload")
	}

	task = asynq.NewTask(queue.TaskOrderStatusNotify, []byte(`{"order_id":0}`))
	if err := consumer.handleOrderStatusNotify(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}

func TestHandleCartExpireSkipsEmptyToken(t *testing.T) {
	consumer := NewConsumer(nil)

	task := asynq.NewTask(queue.TaskCartExpire, []byte(`{"cart_token":"  "}`))
	if err := consumer.handleCartExpire(context.Background(), task); err != nil {
		t.Fatalf("blank token should be skipped, got %v", err)
	}

	task = asynq.NewTask(queue.TaskCartExpire, []byte("not-json"))
	if err := consumer.handleCartExpire(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error for malformed payload")
	}
}
