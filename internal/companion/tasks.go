package companion

import "strings"

// Fields are the caller-supplied values a task may interpolate. Absent
// values are empty strings and render as such.
type Fields struct {
	Context  string `json:"context"`
	TaskName string `json:"taskName"`
	Message  string `json:"message"`
	Mood     string `json:"mood"`
	Query    string `json:"query"`
}

// Task is one endpoint's framing on top of a persona: how the prompt is
// phrased, what to say when the model returns nothing, and what to say when
// the model cannot be reached.
type Task struct {
	Name    string
	Persona Persona

	instruction func(Fields) string
	emptyReply  func(Fields) string
	fallbackSet func(Fields) []string
}

// Prompt joins the persona block and the task instruction with a blank line.
// Caller text is inserted verbatim.
func (t Task) Prompt(f Fields) string {
	return t.Persona.Instructions + "\n\n" + t.instruction(f)
}

// DefaultReply is used when the model succeeds but the cleaned text is empty.
func (t Task) DefaultReply(f Fields) string {
	return t.emptyReply(f)
}

// Fallbacks lists the candidates used when generation fails.
func (t Task) Fallbacks(f Fields) []string {
	return t.fallbackSet(f)
}

func fixed(s string) func(Fields) string {
	return func(Fields) string { return s }
}

func fixedSet(s ...string) func(Fields) []string {
	return func(Fields) []string { return s }
}

var (
	Motivational = Task{
		Name:    "ai-girlfriend/motivational",
		Persona: Girlfriend,
		instruction: func(f Fields) string {
			if f.Context != "" {
				return f.Context
			}
			return "Your partner just completed a wellness task. Give them a loving, encouraging message."
		},
		emptyReply:  fixed("You're doing amazing, babe! I'm so proud of you! 💕"),
		fallbackSet: fixedSet(
			"You're absolutely incredible, sweetheart! 💖 Keep shining!",
			"I'm so proud of you, babe! 🌟 You're crushing these goals!",
			"My amazing partner is doing so well! 💕 I believe in you!",
			"You make me so happy when you take care of yourself! 😘✨",
			"Look at you being all responsible and healthy! 💪💕 Love it!",
		),
	}

	Greeting = Task{
		Name:        "ai-girlfriend/greeting",
		Persona:     Girlfriend,
		instruction: fixed("Your partner just opened their wellness app. Give them a warm, loving greeting and encourage them to tackle their daily wellness missions."),
		emptyReply:  fixed("Hi gorgeous! 💕 Ready to conquer today's wellness missions together?"),
		fallbackSet: fixedSet("Hey beautiful! 💖 I'm here to cheer you on with today's wellness goals! Let's do this together! 🌟"),
	}

	TaskCompletion = Task{
		Name:    "ai-girlfriend/task-completion",
		Persona: Girlfriend,
		instruction: func(f Fields) string {
			return `Your partner just completed this wellness task: "` + f.TaskName + `"` + "\n" +
				"Give them a loving, enthusiastic congratulatory message."
		},
		emptyReply: func(f Fields) string {
			return "Yay! You completed " + f.TaskName + "! 🎉 I'm so proud of you, honey! 💕"
		},
		fallbackSet: func(f Fields) []string {
			return []string{"Amazing job on completing " + f.TaskName + ", babe! 🎉 You're absolutely crushing it! 💖"}
		},
	}

	AllTasksCompleted = Task{
		Name:        "ai-girlfriend/all-tasks-completed",
		Persona:     Girlfriend,
		instruction: fixed("Your partner just completed ALL their wellness tasks for today! This is a huge achievement. Give them an extremely enthusiastic, loving celebration message."),
		emptyReply:  fixed("OMG babe! You did it! All tasks completed! 🎉💖 I'm bursting with pride! You're absolutely amazing! 🌟"),
		fallbackSet: fixedSet("INCREDIBLE! You completed everything, sweetheart! 🎉✨ I'm so incredibly proud of you! You're my wellness champion! 💖👑"),
	}

	Chat = Task{
		Name:    "ai-girlfriend/chat",
		Persona: Girlfriend,
		instruction: func(f Fields) string {
			return `Your partner just said: "` + f.Message + `"` + "\n" +
				"Respond as their loving, supportive AI girlfriend. Be conversational, caring, and encouraging about their wellness journey."
		},
		emptyReply:  fixed("I love talking with you, honey! 💕 How can I support you today?"),
		fallbackSet: fixedSet("I'm always here for you, babe! 💖 Tell me more about how you're feeling!"),
	}

	CoachAdvice = Task{
		Name:    "wellness-coach/advice",
		Persona: WellnessCoach,
		instruction: func(f Fields) string {
			var b strings.Builder
			b.WriteString(`User query: "` + f.Query + `"` + "\n")
			if f.Context != "" {
				b.WriteString("Context: " + f.Context)
			}
			b.WriteString("\n\nProvide helpful wellness advice.")
			return b.String()
		},
		emptyReply:  fixed("I'm here to support your wellness journey. What specific area would you like guidance on?"),
		fallbackSet: fixedSet("I'm here to help with your wellness journey. Please try asking your question again, and I'll do my best to provide helpful guidance."),
	}

	MoodSupport = Task{
		Name:    "mood-chat/support",
		Persona: MoodChat,
		instruction: func(f Fields) string {
			mood := f.Mood
			if mood == "" {
				mood = "not specified"
			}
			var b strings.Builder
			b.WriteString("User's current mood: " + mood + "\n")
			b.WriteString(`User message: "` + f.Message + `"` + "\n")
			if f.Context != "" {
				b.WriteString("Additional context: " + f.Context)
			}
			b.WriteString("\n\nProvide empathetic mood support.")
			return b.String()
		},
		emptyReply:  fixed("I understand you're going through something right now. Your feelings are valid, and I'm here to listen. How can I best support you?"),
		fallbackSet: fixedSet("I'm here to listen and support you through whatever you're feeling. Your emotions are important and valid."),
	}
)

// Tasks lists every task the gateway serves.
var Tasks = []Task{
	Motivational,
	Greeting,
	TaskCompletion,
	AllTasksCompleted,
	Chat,
	CoachAdvice,
	MoodSupport,
}
