package service

import (
	"context"
	"errors"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"namur_backend/internals/configs"
)

// FCM caps multicast batches at 500 tokens.
const multicastChunkSize = 500

// MulticastFunc sends one batch. Tests substitute a fake.
type MulticastFunc func(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error)

// PushService fans a notification out over FCM in 500-token chunks and
// reports which tokens came back permanently dead.
type PushService struct {
	Send MulticastFunc
}

// NewPushService builds the real client from the service-account key
// file named by FIREBASE_SERVICE_KEY.
func NewPushService(ctx context.Context) (*PushService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(configs.FirebaseServiceKey))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &PushService{Send: client.SendEachForMulticast}, nil
}

// PushResult is the outcome of one fan-out.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// SendToTokens pushes title/body/data to every token. Tokens FCM
// reports as unregistered or malformed come back in InvalidTokens so
// the caller can prune them; transient per-token failures only count
// toward FailureCount.
func (s *PushService) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (*PushResult, error) {
	if s.Send == nil {
		return nil, errors.New("push sender not configured")
	}
	result := &PushResult{}
	for start := 0; start < len(tokens); start += multicastChunkSize {
		end := start + multicastChunkSize
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		resp, err := s.Send(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if err != nil {
			// whole-batch failure: count the chunk and move on
			log.Printf("[ERROR] push batch failed: %v", err)
			result.FailureCount += len(chunk)
			continue
		}

		result.SuccessCount += resp.SuccessCount
		result.FailureCount += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Success || r.Error == nil {
				continue
			}
			if messaging.IsUnregistered(r.Error) || errorutils.IsInvalidArgument(r.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[i])
			}
		}
	}
	return result, nil
}
