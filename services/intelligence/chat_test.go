package intelligence

import (
	"strings"
	"testing"

	"diagnotech/models"

	"github.com/stretchr/testify/assert"
)

func TestIsArabic(t *testing.T) {
	t.Run("detects Arabic text", func(t *testing.T) {
		assert.True(t, isArabic("ما هي أعراض الانفلونزا؟"))
	})

	t.Run("treats English as non-Arabic", func(t *testing.T) {
		assert.False(t, isArabic("What are the symptoms of the flu?"))
	})

	t.Run("mixed text follows the majority script", func(t *testing.T) {
		assert.True(t, isArabic("ما هو علاج flu"))
	})

	t.Run("empty text is non-Arabic", func(t *testing.T) {
		assert.False(t, isArabic(""))
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Run("replays prior turns before the new message", func(t *testing.T) {
		chatCtx := &models.ChatContext{Turns: []models.ChatTurn{
			{Role: "user", Text: "I have a headache"},
			{Role: "assistant", Text: "How long has it lasted?"},
		}}

		prompt := buildPrompt(chatCtx, "about two days")
		assert.Contains(t, prompt, "user: I have a headache")
		assert.Contains(t, prompt, "assistant: How long has it lasted?")
		assert.True(t, strings.HasSuffix(prompt, "user: about two days\nassistant:"))
	})

	t.Run("selects the Arabic system prompt for Arabic messages", func(t *testing.T) {
		prompt := buildPrompt(&models.ChatContext{}, "ما هي أعراض الانفلونزا؟")
		assert.True(t, strings.HasPrefix(prompt, systemPromptAR))
	})

	t.Run("selects the English system prompt otherwise", func(t *testing.T) {
		prompt := buildPrompt(&models.ChatContext{}, "what causes migraines?")
		assert.True(t, strings.HasPrefix(prompt, systemPromptEN))
	})
}
