package chat

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/entities"
	"Agro-Assistant-Backend/pkg/gemini"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	systemInstruction = "You are Olivia, a helpful AI assistant specialized in gardening. Provide concise and accurate information to help users take care of their plants."
	fallbackReply     = "I'm sorry, I can't connect to the gardening brain right now."
	historyLimit      = 20
)

type (
	ChatService interface {
		SendMessage(ctx context.Context, req domain.ChatRequest) (*entities.Message, error)
		GetHistory(ctx context.Context) ([]*entities.Message, error)
	}

	chatService struct {
		chatRepository ChatRepository
		geminiService  gemini.GeminiService // nil when completion is disabled
	}
)

func NewChatService(chatRepository ChatRepository, geminiService gemini.GeminiService) ChatService {
	return &chatService{
		chatRepository: chatRepository,
		geminiService:  geminiService,
	}
}

// SendMessage runs one chat turn: the user message is stored unconditionally,
// then a completion is attempted, then the assistant reply is stored and
// returned. A completion failure of any kind degrades to the fallback reply;
// it never fails the turn.
func (s *chatService) SendMessage(ctx context.Context, req domain.ChatRequest) (*entities.Message, error) {
	userMessage := &entities.Message{
		Content:   req.Content,
		Role:      domain.RoleUser,
		Timestamp: time.Now(),
	}
	if err := s.chatRepository.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	reply := s.generateReply(ctx)

	assistantMessage := &entities.Message{
		Content:   reply,
		Role:      domain.RoleAssistant,
		Timestamp: time.Now(),
	}
	if err := s.chatRepository.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}

	return assistantMessage, nil
}

func (s *chatService) generateReply(ctx context.Context) string {
	if s.geminiService == nil {
		return fallbackReply
	}

	turnID := uuid.NewString()

	history, err := s.chatRepository.GetRecentMessages(ctx, historyLimit)
	if err != nil {
		log.Errorf("chat turn %s: failed to load history: %v", turnID, err)
		return fallbackReply
	}

	// History comes newest-first; Gemini wants chronological order, with the
	// stored "assistant" role remapped to its "model" role.
	turns := make([]gemini.Turn, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		role := "user"
		if history[i].Role == domain.RoleAssistant {
			role = "model"
		}
		turns = append(turns, gemini.Turn{Role: role, Text: history[i].Content})
	}

	reply, err := s.geminiService.GenerateReply(ctx, turns, systemInstruction)
	if err != nil {
		log.Errorf("chat turn %s: completion failed: %v", turnID, err)
		return fallbackReply
	}
	return reply
}

func (s *chatService) GetHistory(ctx context.Context) ([]*entities.Message, error) {
	return s.chatRepository.GetHistory(ctx)
}
