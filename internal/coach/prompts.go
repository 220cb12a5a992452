package coach

import (
	"fmt"
	"sort"
	"strings"
)

// display names for session categories used inside prompts
var categoryDisplayNames = map[string]string{
	"lesson":   "Lessons",
	"project":  "Project work",
	"reading":  "Reading",
	"homework": "Homework",
	"personal": "Personal growth",
	"other":    "Other",
}

func categoryDisplayName(key string) string {
	if name, ok := categoryDisplayNames[key]; ok {
		return name
	}

	return key
}

// {"lesson": 3, "project": 1} -> "Lessons: 3 sessions, Project work: 1 session"
func formatCategoryBreakdown(breakdown map[string]int) string {
	if len(breakdown) == 0 {
		return "No category data yet."
	}

	// deterministic order so identical stats produce identical prompts
	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))

	for _, key := range keys {
		count := breakdown[key]
		unit := "sessions"

		if count == 1 {
			unit = "session"
		}

		parts = append(parts, fmt.Sprintf("%s: %d %s", categoryDisplayName(key), count, unit))
	}

	return strings.Join(parts, ", ")
}

func formatTechniques(techniques []string, emptyText string) string {
	if len(techniques) == 0 {
		return emptyText
	}

	return strings.Join(techniques, ", ")
}

func formatCompletionRate(completed, total int) string {
	if total == 0 {
		return "no data"
	}

	rate := float64(completed) / float64(total) * 100

	return fmt.Sprintf("%.0f%%", rate)
}

// turns raw daily numbers into a qualitative assessment; the model
// gets context rather than having to interpret ratios itself
func assessPerformance(completed, cancelled, totalMinutes, targetMinutes int) string {
	if totalMinutes == 0 && completed == 0 {
		return "No work recorded yet today"
	}

	var goalRatio float64
	if targetMinutes > 0 {
		goalRatio = float64(totalMinutes) / float64(targetMinutes)
	}

	var cancelRatio float64
	if completed+cancelled > 0 {
		cancelRatio = float64(cancelled) / float64(completed+cancelled)
	}

	switch {
	case goalRatio >= 1.0 && cancelRatio < 0.2:
		return "Above target, an excellent day"
	case goalRatio >= 0.7 && cancelRatio < 0.3:
		return "Close to target, a good day"
	case goalRatio >= 0.4:
		return "Below target, moderate output"
	case cancelRatio > 0.5:
		return "High cancel rate, struggling to stay focused"
	default:
		return "Low output, could use a motivational push"
	}
}

func formatAgeLine(age int) string {
	if age == 0 {
		return ""
	}

	return fmt.Sprintf("- Age: %d\n", age)
}

// SystemInstruction is attached to every coach request. It sets the
// persona and the hard output rules the JSON pipeline relies on.
func SystemInstruction() string {
	return `You are PersonaSync's AI-powered personal productivity coach.

Your core task is to analyze users' study data and personal profiles and give
them specific, concrete, and motivating suggestions.

BEHAVIOR RULES:
1. Be warm, personal, and supportive. Never sound robotic.
2. Address the user by name and make the advice feel personal.
3. Suggest concrete techniques: Pomodoro variations, the Feynman Technique,
Active Recall, Spaced Repetition, Mind Mapping, Cornell Notes, Interleaving, etc.
4. Avoid generic advice like "work harder" or "just focus".
5. Never criticize failures. Reframe them as opportunities to improve.
6. Offer at most 3 suggestions. Too many options overwhelm people.
7. When JSON output is requested, return ONLY JSON with no extra text.`
}

// returns the prompt plus the JSON keys the response must contain
func BuildDailyAdvicePrompt(profile UserProfile, today DailyStats, feedback FeedbackHistory) (string, []string) {
	performance := assessPerformance(
		today.CompletedSessions,
		today.CancelledSessions,
		today.TotalMinutes,
		profile.DailyTargetMinutes,
	)

	categories := formatCategoryBreakdown(today.CategoryBreakdown)
	liked := formatTechniques(feedback.LikedTechniques, "No liked techniques yet.")
	disliked := formatTechniques(feedback.DislikedTechniques, "No rejected techniques yet.")
	completionRate := formatCompletionRate(
		today.CompletedSessions,
		today.CompletedSessions+today.CancelledSessions,
	)

	remainingMinutes := profile.DailyTargetMinutes - today.TotalMinutes
	if remainingMinutes < 0 {
		remainingMinutes = 0
	}

	lastSuggested := feedback.LastSuggested
	if lastSuggested == "" {
		lastSuggested = "First suggestion"
	}

	prompt := fmt.Sprintf(`User Profile:
- Name: %s
- Goal: %s
- Occupation: %s
- Daily Study Target: %d minutes
%s
Today's Study Data:
- Completed Pomodoros: %d sessions
- Cancelled Pomodoros: %d sessions
- Completion Rate: %s
- Minutes Studied Today: %d minutes
- Minutes Remaining to Target: %d minutes
- Category Breakdown: %s
- Overall Performance Assessment: %s

Past Technique Preferences (Feedback Loop):
- Previously Liked Techniques: %s
- Previously Rejected Techniques: %s
- Last Suggested Technique: %s

TASK:
Pick the SINGLE best study technique for %s today.

NEVER suggest any of the rejected techniques (%s).
If there are liked techniques, prefer similar approaches.
Keep the performance assessment ("%s") in mind and be both realistic and encouraging.

Respond in the following JSON format:
{
    "technique": "Technique name (e.g., Pomodoro 25/5, Feynman Technique, Active Recall)",
    "why_this_works": "Explain in 2-3 sentences why this technique is the right pick for %s. Be personal and warm.",
    "steps": ["Step 1 (concrete and short)", "Step 2", "Step 3"],
    "duration_suggestion": "Suggested work/break rhythm for today",
    "motivational_note": "A 1-2 sentence motivating note for %s based on today's performance",
    "category_focus": "Which category to prioritize today and why (1 sentence)"
}`,
		profile.FirstName, profile.Goal, profile.Occupation, profile.DailyTargetMinutes,
		formatAgeLine(profile.Age),
		today.CompletedSessions, today.CancelledSessions, completionRate,
		today.TotalMinutes, remainingMinutes, categories, performance,
		liked, disliked, lastSuggested,
		profile.FirstName, disliked, performance,
		profile.FirstName, profile.FirstName,
	)

	expectedKeys := []string{
		"technique",
		"why_this_works",
		"steps",
		"duration_suggestion",
		"motivational_note",
		"category_focus",
	}

	return prompt, expectedKeys
}

// returns the prompt plus the JSON keys the response must contain;
// meant for the pro model (analytical, longer output)
func BuildWeeklyReportPrompt(profile UserProfile, weekly WeeklyStats, feedback FeedbackHistory) (string, []string) {
	categories := formatCategoryBreakdown(weekly.CategoryBreakdown)
	liked := formatTechniques(feedback.LikedTechniques, "No liked techniques yet.")
	disliked := formatTechniques(feedback.DislikedTechniques, "No rejected techniques yet.")
	completionRate := formatCompletionRate(weekly.CompletedSessions, weekly.TotalSessions)

	weeklyGoalMinutes := profile.DailyTargetMinutes * 7

	var goalAchievement float64
	if weeklyGoalMinutes > 0 {
		goalAchievement = float64(weekly.TotalMinutes) / float64(weeklyGoalMinutes) * 100
	}

	dailyInfo := ""

	if len(weekly.DailyBreakdown) > 0 {
		days := make([]string, 0, len(weekly.DailyBreakdown))
		for day := range weekly.DailyBreakdown {
			days = append(days, day)
		}

		sort.Strings(days)

		lines := make([]string, 0, len(days))
		for _, day := range days {
			lines = append(lines, fmt.Sprintf("  %s: %d minutes", day, weekly.DailyBreakdown[day]))
		}

		dailyInfo = "Daily Breakdown:\n" + strings.Join(lines, "\n")
	}

	prompt := fmt.Sprintf(`User Profile:
- Name: %s
- Goal: %s
- Occupation: %s
- Daily Study Target: %d minutes
- Weekly Target: %d minutes

This Week's Data:
- Total Pomodoros: %d sessions
- Completed: %d sessions
- Cancelled: %d sessions
- Weekly Completion Rate: %s
- Total Study Time: %d minutes
- Weekly Target Achievement: %.0f%%
- Best Day: %d minutes
- Lowest Day: %d minutes
- Active Streak: %d consecutive days of study
- Category Breakdown: %s
%s

Technique History:
- Liked Techniques: %s
- Rejected Techniques: %s

TASK:
Analyze %s's past week thoroughly.
Give an honest but constructive assessment grounded in the real numbers.
Use the language of growth opportunities, not criticism.
Set a concrete, actionable direction for next week.
NEVER suggest any of the rejected techniques (%s).

Respond in the following JSON format:
{
    "week_summary": "A short, warm summary of the week (2-3 sentences, addressed to %s)",
    "strengths": ["Something that went well this week 1", "Something that went well 2"],
    "improvements": ["An area to improve next week 1", "An area to improve 2"],
    "highlight": "The single most important win or positive note of the week",
    "next_week_focus": "The top priority focus area and goal for %s next week (concrete)",
    "technique_recommendation": "Recommended study technique for next week",
    "technique_reason": "Why this technique, and how it connects to this week's data (personal)",
    "motivational_closing": "A heartfelt, motivating closing message for %s to end the week"
}`,
		profile.FirstName, profile.Goal, profile.Occupation, profile.DailyTargetMinutes, weeklyGoalMinutes,
		weekly.TotalSessions, weekly.CompletedSessions, weekly.CancelledSessions, completionRate,
		weekly.TotalMinutes, goalAchievement, weekly.BestDayMinutes, weekly.WorstDayMinutes,
		weekly.StreakDays, categories, dailyInfo,
		liked, disliked,
		profile.FirstName, disliked,
		profile.FirstName, profile.FirstName, profile.FirstName,
	)

	expectedKeys := []string{
		"week_summary",
		"strengths",
		"improvements",
		"highlight",
		"next_week_focus",
		"technique_recommendation",
		"technique_reason",
		"motivational_closing",
	}

	return prompt, expectedKeys
}

// returns the prompt plus the JSON keys the response must contain
func BuildMotivationPrompt(profile UserProfile, today DailyStats, trigger MotivationTrigger) (string, []string) {
	var triggerContext string

	switch trigger {
	case TriggerLowPerformance:
		triggerContext = fmt.Sprintf(
			"They studied %d minutes today against a target of %d minutes. "+
				"They have not reached the target yet and need motivational support.",
			today.TotalMinutes, profile.DailyTargetMinutes,
		)
	case TriggerHighCancelRate:
		triggerContext = fmt.Sprintf(
			"They cancelled %d sessions today and completed only %d. "+
				"They are struggling to focus. Gently redirect them.",
			today.CancelledSessions, today.CompletedSessions,
		)
	case TriggerUserRequest:
		triggerContext = fmt.Sprintf(
			"They studied %d minutes today. "+
				"They asked for motivational support. Give an empowering message.",
			today.TotalMinutes,
		)
	case TriggerStreakBroken:
		triggerContext = "Their study streak was broken. Give an encouraging message about " +
			"starting again. Do not dwell on the lost streak. Emphasize continuing."
	case TriggerGoalAchieved:
		triggerContext = fmt.Sprintf(
			"They studied %d minutes today and passed their daily target (%d min)! "+
				"Celebrate and inspire them for tomorrow.",
			today.TotalMinutes, profile.DailyTargetMinutes,
		)
	default:
		triggerContext = "General motivational support requested."
	}

	prompt := fmt.Sprintf(`User Profile:
- Name: %s
- Goal: %s
- Occupation: %s
- Daily Target: %d minutes

Situation: %s

TASK:
Write a warm, empowering motivation message for %s tailored to this situation.
- Avoid motivational cliches ("Every day is a new opportunity!" and the like).
- Tie the message to %s's goal (%s).
- Suggest a concrete next step.
- Stay under 150 words. Be short and effective.

Respond in the following JSON format:
{
    "title": "Message title (with a fitting emoji, e.g., 💪 Keep Going!)",
    "message": "The main motivation message for %s (2-4 sentences, warm and genuine)",
    "action": "One small, concrete step they can take right now",
    "reminder": "A short reminder tying back to the %s goal (1 sentence)"
}`,
		profile.FirstName, profile.Goal, profile.Occupation, profile.DailyTargetMinutes,
		triggerContext,
		profile.FirstName, profile.FirstName, profile.Goal,
		profile.FirstName, profile.Goal,
	)

	expectedKeys := []string{"title", "message", "action", "reminder"}

	return prompt, expectedKeys
}

// BuildAlternativeTechniquePrompt asks for a replacement after a
// thumbs-down. The rejected set is the union of past rejections and
// the technique just rejected.
func BuildAlternativeTechniquePrompt(profile UserProfile, rejected, reason string, feedback FeedbackHistory) (string, []string) {
	reasonText := "No rejection reason given."
	if reason != "" {
		reasonText = "Rejection reason: " + reason
	}

	allRejected := feedback.DislikedTechniques

	found := false
	for _, technique := range allRejected {
		if technique == rejected {
			found = true
			break
		}
	}

	if !found {
		allRejected = append(append([]string{}, allRejected...), rejected)
	}

	rejectedList := strings.Join(allRejected, ", ")
	liked := formatTechniques(feedback.LikedTechniques, "No liked techniques yet.")

	prompt := fmt.Sprintf(`User Profile:
- Name: %s
- Goal: %s
- Occupation: %s

Feedback Situation:
- Technique Just Rejected: "%s"
- %s
- All Previously Rejected Techniques: %s
- Liked Techniques: %s

TASK:
%s did not like the "%s" technique.
Suggest a completely different approach.

NEVER suggest any of these: %s
If there are liked techniques (%s), follow similar logic but do not repeat them.

Respond in the following JSON format:
{
    "technique": "A completely different technique name",
    "why_different": "Explain in 1-2 sentences how this differs from %s",
    "why_suits_you": "Explain why this technique is a good fit for %s, especially for the %s goal",
    "steps": ["How to apply it — Step 1 (concrete)", "Step 2", "Step 3"],
    "try_suggestion": "A concrete scenario for how %s can try this technique today (1-2 sentences)"
}`,
		profile.FirstName, profile.Goal, profile.Occupation,
		rejected, reasonText, rejectedList, liked,
		profile.FirstName, rejected,
		rejectedList, liked,
		rejected, profile.FirstName, profile.Goal,
		profile.FirstName,
	)

	expectedKeys := []string{
		"technique",
		"why_different",
		"why_suits_you",
		"steps",
		"try_suggestion",
	}

	return prompt, expectedKeys
}

// returns the prompt plus the JSON keys the response must contain;
// short output, meant for the flash model right after a session ends
func BuildSessionSummaryPrompt(profile UserProfile, durationMinutes int, category, note string, today DailyStats) (string, []string) {
	remaining := profile.DailyTargetMinutes - today.TotalMinutes
	if remaining < 0 {
		remaining = 0
	}

	progressPct := 0

	if profile.DailyTargetMinutes > 0 {
		progressPct = today.TotalMinutes * 100 / profile.DailyTargetMinutes
		if progressPct > 100 {
			progressPct = 100
		}
	}

	noteText := "No session note."
	if note != "" {
		noteText = fmt.Sprintf("Session note: %q", note)
	}

	prompt := fmt.Sprintf(`%s just completed a %d-minute %s session.
%s

Daily Progress:
- Today's total: %d minutes / %d minute target
- Progress: %d%%
- Remaining to target: %d minutes
- Total sessions completed: %d

Goal: %s

TASK:
Give short, warm, energizing feedback for finishing the session.
Keep it brief. Be quick and motivating.

Respond in the following JSON format:
{
    "reaction": "A short reaction to finishing the session (emoji + 1 sentence, energetic)",
    "progress_note": "One warm sentence about progress toward the daily target",
    "next_step": "A concrete suggestion for right now: break length, the next session topic, or calling it a day (1-2 sentences)"
}`,
		profile.FirstName, durationMinutes, categoryDisplayName(category),
		noteText,
		today.TotalMinutes, profile.DailyTargetMinutes,
		progressPct, remaining, today.CompletedSessions,
		profile.Goal,
	)

	expectedKeys := []string{"reaction", "progress_note", "next_step"}

	return prompt, expectedKeys
}
