package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
)

func newTestChatService(engine openai.Client, students *fakeStudentRepo) ChatService {
	builder := newTestContextBuilder(students, &fakePersonalityRepo{}, &fakeCareerRepo{}, &fakeCourseRepo{}, &fakeSkillRepo{})
	return NewChatService(testLogger(), engine, builder, students)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc := newTestChatService(&fakeChatEngine{}, &fakeStudentRepo{})

	_, err := svc.Chat(context.Background(), "   ", "", nil)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != "missing_message" {
		t.Fatalf("unexpected error: status=%d code=%s", apiErr.Status, apiErr.Code)
	}
}

func TestChatFallbackOnEmptyReply(t *testing.T) {
	svc := newTestChatService(&fakeChatEngine{reply: "  "}, &fakeStudentRepo{})

	res, err := svc.Chat(context.Background(), "你好", "", nil)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if res.Reply != chatFallbackReply {
		t.Fatalf("expected fallback reply, got %q", res.Reply)
	}
}

func TestChatWindowsHistoryAndSetsFlags(t *testing.T) {
	engine := &fakeChatEngine{reply: "好的，我来帮你分析。"}
	students := &fakeStudentRepo{
		students: map[string]*domain.Student{
			"s1": {ID: "s1", PersonalityCode: "INTJ"},
		},
	}
	svc := newTestChatService(engine, students)

	history := make([]openai.Message, 12)
	for i := range history {
		history[i] = openai.Message{Role: "user", Content: fmt.Sprintf("m%d", i)}
	}
	res, err := svc.Chat(context.Background(), "推荐一些职业", "s1", history)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	// 12 prior turns window down to 10, plus the new user message.
	if len(engine.lastMessages) != 11 {
		t.Fatalf("expected 11 downstream messages, got %d", len(engine.lastMessages))
	}
	last := engine.lastMessages[len(engine.lastMessages)-1]
	if last.Role != "user" || last.Content != "推荐一些职业" {
		t.Fatalf("unexpected final message: %+v", last)
	}
	if engine.lastMessages[0].Content != "m2" {
		t.Fatalf("window must drop the oldest turns, got first=%s", engine.lastMessages[0].Content)
	}

	if !res.ProfileContextUsed {
		t.Fatal("known student must set ProfileContextUsed")
	}
	if !strings.Contains(engine.lastContext, "【学生画像】") {
		t.Fatalf("context block missing profile: %q", engine.lastContext)
	}
}

func TestChatEngineFailure(t *testing.T) {
	svc := newTestChatService(&fakeChatEngine{err: errors.New("boom")}, &fakeStudentRepo{})

	_, err := svc.Chat(context.Background(), "你好", "", nil)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Code != "chat_engine_failed" {
		t.Fatalf("unexpected error: status=%d code=%s", apiErr.Status, apiErr.Code)
	}
}

func TestSuggestions(t *testing.T) {
	students := &fakeStudentRepo{
		students: map[string]*domain.Student{
			"s1": {ID: "s1", PersonalityCode: "INTJ"},
		},
	}
	svc := newTestChatService(&fakeChatEngine{}, students)

	generic, err := svc.Suggestions(context.Background(), "")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(generic) != 4 {
		t.Fatalf("expected 4 generic suggestions, got %d", len(generic))
	}

	personal, err := svc.Suggestions(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(personal) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(personal))
	}
	found := false
	for _, s := range personal {
		if strings.Contains(s, "INTJ") {
			found = true
		}
	}
	if !found {
		t.Fatalf("personalized suggestions must mention the code: %v", personal)
	}
}
