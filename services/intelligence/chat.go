package intelligence

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"diagnotech/models"
	"diagnotech/utils"

	"go.uber.org/zap"
)

// maxContextTurns caps how much history is replayed into the prompt.
const maxContextTurns = 20

const systemPromptEN = "You are a medical assistant for the DiagnoTech platform. " +
	"Answer only health and medicine related questions: symptoms, diseases, " +
	"treatments, medication, nutrition and wellness. If the question is not " +
	"medical, politely decline and steer the user back to health topics. " +
	"Always remind the user to consult a doctor for a real diagnosis. " +
	"Answer in English."

const systemPromptAR = "أنت مساعد طبي لمنصة DiagnoTech. أجب فقط عن الأسئلة المتعلقة " +
	"بالصحة والطب: الأعراض والأمراض والعلاجات والأدوية والتغذية. إذا لم يكن السؤال " +
	"طبياً فاعتذر بلطف وأعد المستخدم إلى المواضيع الصحية. ذكّر المستخدم دائماً " +
	"بمراجعة الطبيب للحصول على تشخيص حقيقي. أجب باللغة العربية."

// ChatService answers medical questions with conversation memory.
type ChatService interface {
	// Chat sends a user message and returns the assistant reply.
	Chat(ctx context.Context, userID, message string) (string, error)
	// ResetConversation drops the stored history for a user.
	ResetConversation(ctx context.Context, userID string) error
}

// DefaultChatService backs ChatService with Gemini and a Redis context store.
type DefaultChatService struct {
	Client   *GeminiClient
	CtxStore *RedisContextStore
}

func (s *DefaultChatService) Chat(ctx context.Context, userID, message string) (string, error) {
	if userID == "" || strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("user id and message are required")
	}

	chatCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("Chat: failed to load context, starting fresh",
			zap.String("userID", userID), zap.Error(err))
		chatCtx = &models.ChatContext{}
	}

	prompt := buildPrompt(chatCtx, message)
	reply, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("Chat: generation failed", zap.String("userID", userID), zap.Error(err))
		return "", fmt.Errorf("chat service is unavailable, please try again")
	}
	reply = strings.TrimSpace(reply)

	chatCtx.Turns = append(chatCtx.Turns,
		models.ChatTurn{Role: "user", Text: message},
		models.ChatTurn{Role: "assistant", Text: reply},
	)
	if len(chatCtx.Turns) > maxContextTurns {
		chatCtx.Turns = chatCtx.Turns[len(chatCtx.Turns)-maxContextTurns:]
	}
	if err := s.CtxStore.Set(ctx, userID, chatCtx); err != nil {
		utils.GetLogger().Warn("Chat: failed to save context",
			zap.String("userID", userID), zap.Error(err))
	}

	return reply, nil
}

func (s *DefaultChatService) ResetConversation(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	return s.CtxStore.Clear(ctx, userID)
}

// buildPrompt replays the stored conversation under the language-matched
// system prompt.
func buildPrompt(chatCtx *models.ChatContext, message string) string {
	var sb strings.Builder
	if isArabic(message) {
		sb.WriteString(systemPromptAR)
	} else {
		sb.WriteString(systemPromptEN)
	}
	sb.WriteString("\n\n")
	for _, turn := range chatCtx.Turns {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(message)
	sb.WriteString("\nassistant:")
	return sb.String()
}

// isArabic reports whether the message is predominantly Arabic script.
func isArabic(text string) bool {
	var arabic, letters int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.Is(unicode.Arabic, r) {
				arabic++
			}
		}
	}
	return letters > 0 && arabic*2 > letters
}
