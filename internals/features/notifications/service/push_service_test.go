package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
)

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("tok-%04d", i)
	}
	return out
}

func allOK(chunk []string) *messaging.BatchResponse {
	resp := &messaging.BatchResponse{SuccessCount: len(chunk)}
	for range chunk {
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
	}
	return resp
}

func TestSendToTokensChunksAt500(t *testing.T) {
	var sizes []int
	svc := &PushService{Send: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
		sizes = append(sizes, len(msg.Tokens))
		return allOK(msg.Tokens), nil
	}}

	result, err := svc.SendToTokens(context.Background(), tokens(1200), "t", "b", nil)
	if err != nil {
		t.Fatalf("SendToTokens: %v", err)
	}
	want := []int{500, 500, 200}
	if len(sizes) != len(want) {
		t.Fatalf("batches = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("batches = %v, want %v", sizes, want)
		}
	}
	if result.SuccessCount != 1200 || result.FailureCount != 0 {
		t.Errorf("counts = %d/%d, want 1200/0", result.SuccessCount, result.FailureCount)
	}
}

func TestSendToTokensCountsBatchFailure(t *testing.T) {
	calls := 0
	svc := &PushService{Send: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("backend unavailable")
		}
		return allOK(msg.Tokens), nil
	}}

	result, err := svc.SendToTokens(context.Background(), tokens(700), "t", "b", nil)
	if err != nil {
		t.Fatalf("SendToTokens: %v", err)
	}
	if calls != 2 {
		t.Errorf("a failed batch must not stop later batches, calls = %d", calls)
	}
	if result.FailureCount != 500 || result.SuccessCount != 200 {
		t.Errorf("counts = %d/%d, want 200 success / 500 failed", result.SuccessCount, result.FailureCount)
	}
}

func TestSendToTokensCarriesPayload(t *testing.T) {
	var got *messaging.MulticastMessage
	svc := &PushService{Send: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
		got = msg
		return allOK(msg.Tokens), nil
	}}

	data := map[string]string{"screen": "ads", "ad_id": "12"}
	if _, err := svc.SendToTokens(context.Background(), tokens(3), "New ad", "Check it out", data); err != nil {
		t.Fatalf("SendToTokens: %v", err)
	}
	if got == nil || got.Notification == nil {
		t.Fatal("message not sent")
	}
	if got.Notification.Title != "New ad" || got.Notification.Body != "Check it out" {
		t.Errorf("notification = %+v", got.Notification)
	}
	if got.Data["screen"] != "ads" {
		t.Errorf("data = %v", got.Data)
	}
}

func TestSendToTokensNoSender(t *testing.T) {
	svc := &PushService{}
	if _, err := svc.SendToTokens(context.Background(), tokens(1), "t", "b", nil); err == nil {
		t.Fatal("unconfigured sender should error")
	}
}

func TestSendToTokensEmptyList(t *testing.T) {
	called := false
	svc := &PushService{Send: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
		called = true
		return allOK(msg.Tokens), nil
	}}
	result, err := svc.SendToTokens(context.Background(), nil, "t", "b", nil)
	if err != nil {
		t.Fatalf("SendToTokens: %v", err)
	}
	if called {
		t.Error("no batches expected for an empty token list")
	}
	if result.SuccessCount != 0 || result.FailureCount != 0 {
		t.Errorf("counts = %+v, want zeros", result)
	}
}
