package services

import (
	"context"
	"fmt"
	"strings"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
)

const chatFallbackReply = "抱歉，我暂时没能生成回答，请换个方式再问一次。"

type ChatService interface {
	Chat(ctx context.Context, message, studentID string, history []openai.Message) (*domain.ChatResult, error)
	Suggestions(ctx context.Context, studentID string) ([]string, error)
}

type chatService struct {
	log      *logger.Logger
	engine   openai.Client
	builder  *ContextBuilder
	students graphdata.StudentRepo
}

func NewChatService(
	log *logger.Logger,
	engine openai.Client,
	builder *ContextBuilder,
	studentRepo graphdata.StudentRepo,
) ChatService {
	return &chatService{
		log:      log.With("service", "ChatService"),
		engine:   engine,
		builder:  builder,
		students: studentRepo,
	}
}

func (s *chatService) Chat(ctx context.Context, message, studentID string, history []openai.Message) (*domain.ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apierr.Invalid("missing_message", fmt.Errorf("message is required"))
	}

	contextBlock, profileUsed, topicalUsed, err := s.builder.Build(ctx, message, studentID)
	if err != nil {
		return nil, apierr.Upstream("context_build_failed", err)
	}

	windowed := s.builder.WindowHistory(history)
	messages := make([]openai.Message, 0, len(windowed)+1)
	messages = append(messages, windowed...)
	messages = append(messages, openai.Message{Role: "user", Content: message})

	reply, err := s.engine.Complete(ctx, messages, contextBlock)
	if err != nil {
		s.log.Error("chat engine call failed", "error", err)
		return nil, apierr.Upstream("chat_engine_failed", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = chatFallbackReply
	}

	return &domain.ChatResult{
		Reply:              reply,
		ProfileContextUsed: profileUsed,
		GraphContextUsed:   topicalUsed,
	}, nil
}

func (s *chatService) Suggestions(ctx context.Context, studentID string) ([]string, error) {
	code := ""
	if strings.TrimSpace(studentID) != "" {
		student, err := s.students.Get(ctx, studentID)
		if err != nil {
			return nil, apierr.Upstream("graph_query_failed", err)
		}
		if student != nil {
			code = student.PersonalityCode
		}
	}

	if code == "" {
		return []string{
			"哪些AI职业最适合我？",
			"成为机器学习工程师需要掌握什么技能？",
			"有哪些评分最高的AI课程？",
			"帮我推荐一条完整的学习路径",
		}, nil
	}
	return []string{
		fmt.Sprintf("%s 性格适合哪些AI职业？", code),
		fmt.Sprintf("适合 %s 的学习路径有哪些？", code),
		"我还需要补齐哪些技能？",
		"根据我的学习记录推荐几门课程",
	}, nil
}
