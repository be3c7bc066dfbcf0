package companion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptStartsWithPersonaBlock(t *testing.T) {
	for _, task := range Tasks {
		prompt := task.Prompt(Fields{})
		assert.True(t, strings.HasPrefix(prompt, task.Persona.Instructions+"\n\n"), task.Name)
	}
}

func TestMotivationalPrompt(t *testing.T) {
	withContext := Motivational.Prompt(Fields{Context: "They finished a 5k run."})
	assert.Equal(t, Girlfriend.Instructions+"\n\nThey finished a 5k run.", withContext)

	withoutContext := Motivational.Prompt(Fields{})
	assert.True(t, strings.HasSuffix(withoutContext,
		"Your partner just completed a wellness task. Give them a loving, encouraging message."))
}

func TestTaskCompletionPromptQuotesTaskVerbatim(t *testing.T) {
	prompt := TaskCompletion.Prompt(Fields{TaskName: `Say "hi" to a friend`})
	assert.Contains(t, prompt, `Your partner just completed this wellness task: "Say "hi" to a friend"`+"\n")
	assert.True(t, strings.HasSuffix(prompt, "Give them a loving, enthusiastic congratulatory message."))
}

func TestChatPrompt(t *testing.T) {
	prompt := Chat.Prompt(Fields{Message: "I slept badly"})
	assert.Contains(t, prompt, `Your partner just said: "I slept badly"`)
}

func TestCoachAdvicePrompt(t *testing.T) {
	withContext := CoachAdvice.Prompt(Fields{Query: "How do I relax?", Context: "exam week"})
	assert.Equal(t,
		WellnessCoach.Instructions+"\n\n"+`User query: "How do I relax?"`+"\nContext: exam week\n\nProvide helpful wellness advice.",
		withContext)

	withoutContext := CoachAdvice.Prompt(Fields{Query: "How do I relax?"})
	assert.NotContains(t, withoutContext, "Context:")
	assert.True(t, strings.HasSuffix(withoutContext, `User query: "How do I relax?"`+"\n\n\nProvide helpful wellness advice."))
}

func TestMoodSupportPrompt(t *testing.T) {
	noMood := MoodSupport.Prompt(Fields{Message: "rough day"})
	assert.Contains(t, noMood, "User's current mood: not specified\n")
	assert.Contains(t, noMood, `User message: "rough day"`)
	assert.NotContains(t, noMood, "Additional context:")

	full := MoodSupport.Prompt(Fields{Message: "rough day", Mood: "anxious", Context: "job interview"})
	assert.Contains(t, full, "User's current mood: anxious\n")
	assert.Contains(t, full, "Additional context: job interview\n\nProvide empathetic mood support.")
}

func TestFixedInstructionsIgnoreFields(t *testing.T) {
	f := Fields{Context: "ctx", TaskName: "t", Message: "m", Mood: "x", Query: "q"}
	assert.Equal(t, Greeting.Prompt(Fields{}), Greeting.Prompt(f))
	assert.Equal(t, AllTasksCompleted.Prompt(Fields{}), AllTasksCompleted.Prompt(f))
}

func TestEveryTaskHasRepliesAndFallbacks(t *testing.T) {
	names := map[string]struct{}{}
	for _, task := range Tasks {
		_, dup := names[task.Name]
		assert.False(t, dup, "duplicate task %s", task.Name)
		names[task.Name] = struct{}{}
		assert.NotEmpty(t, task.DefaultReply(Fields{}), task.Name)
		assert.NotEmpty(t, task.Fallbacks(Fields{}), task.Name)
	}
	assert.Len(t, Tasks, 7)
}
