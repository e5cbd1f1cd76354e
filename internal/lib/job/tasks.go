package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the task type for greeting a newly saved user.
	TaskWelcome = "email:welcome"

	// TaskReceipt is the task type for sending a payment receipt.
	TaskReceipt = "email:receipt"
)

// WelcomeEmailPayload is the JSON payload for TaskWelcome.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// ReceiptEmailPayload is the JSON payload for TaskReceipt.
type ReceiptEmailPayload struct {
	To          string  `json:"to"`
	ServiceName string  `json:"service_name"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// NewWelcomeEmailTask constructs the welcome email task.
// Retried up to 3 times on the default queue, 30s per attempt.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewReceiptEmailTask constructs the payment receipt task.
// Receipts ride the critical queue; users expect them promptly.
func NewReceiptEmailTask(to, serviceName string, amount float64, status string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReceiptEmailPayload{
		To:          to,
		ServiceName: serviceName,
		Amount:      amount,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskReceipt,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcomeEmail enqueues a welcome email. Nil-safe: when the job
// service is not running (no Redis), it does nothing.
func (j *JobService) EnqueueWelcomeEmail(to, name string) error {
	if j == nil || j.Client == nil {
		return nil
	}

	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}

	_, err = j.Client.Enqueue(task)
	return err
}

// EnqueueReceiptEmail enqueues a payment receipt email. Nil-safe.
func (j *JobService) EnqueueReceiptEmail(to, serviceName string, amount float64, status string) error {
	if j == nil || j.Client == nil {
		return nil
	}

	task, err := NewReceiptEmailTask(to, serviceName, amount, status)
	if err != nil {
		return err
	}

	_, err = j.Client.Enqueue(task)
	return err
}
