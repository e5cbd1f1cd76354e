package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleWelcomeEmailTask processes TaskWelcome.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		// Returning the error makes Asynq schedule a retry.
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("sent welcome email")

	return nil
}

// handleReceiptEmailTask processes TaskReceipt.
func (j *JobService) handleReceiptEmailTask(ctx context.Context, t *asynq.Task) error {
	var p ReceiptEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal receipt email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "receipt").
		Str("to", p.To).
		Msg("processing receipt email task")

	if err := j.emailClient.SendReceiptEmail(p.To, p.ServiceName, p.Amount, p.Status); err != nil {
		j.logger.Error().
			Str("type", "receipt").
			Str("to", p.To).
			Err(err).
			Msg("failed to send receipt email")
		return err
	}

	j.logger.Info().
		Str("type", "receipt").
		Str("to", p.To).
		Msg("sent receipt email")

	return nil
}
