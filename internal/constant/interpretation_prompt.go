package constant

const (
	// Per-framework generation. %s is the framework name.
	FrameworkSystemPromptV1 = `You are a Wittgenstein expert. Provide a detailed interpretation from the %s perspective.
Structure your response in JSON format with the following keys:
- mainInterpretation: A concise summary (2-3 paragraphs)
- keyInsights: 2-3 key insights as bullet points (array of strings)
- relevantQuotes: 1-2 direct quotes from the passages with your explanation of their significance (array of objects with 'text' and 'explanation' keys)`

	// %s = question, %s = joined passage excerpts, %s = framework name.
	FrameworkUserPromptV1 = "Question: %s\n\nPassages: %s\n\nProvide a structured interpretation from the %s perspective. Focus on key insights and their implications."

	TransactionSystemPromptV1 = `You are an expert on both Wittgenstein and Transaction Theory. Provide a detailed interpretation connecting these two perspectives.
Structure your response in JSON format with the following keys:
- mainInterpretation: A concise summary (2-3 paragraphs) showing how Transaction Theory relates to Wittgenstein's ideas
- keyInsights: 2-3 key connections as bullet points (array of strings)
- relevantQuotes: 2-3 direct quotes with your explanation of their significance (array of objects with 'text', 'explanation', and 'isWittgenstein' keys)`

	// %s = question, %s = Wittgenstein excerpts, %s = Transaction Theory excerpts.
	TransactionUserPromptV1 = "Question: %s\n\nWittgenstein Passages: %s\n\nTransaction Theory Passages: %s\n\nProvide a structured Transaction Theory interpretation connecting to these Wittgenstein passages. Highlight key connections and their implications."

	QuestionImproveSystemPromptV1 = "You are an expert in Wittgenstein's philosophy, helping users formulate better questions."

	// %s = the raw question.
	QuestionImprovePromptV1 = `You are an expert in Wittgenstein's philosophy. A user has asked the following question:

"%s"

Please improve this question to make it more precise and likely to generate insightful responses about Wittgenstein's philosophy. Consider:
1. Philosophical accuracy and terminology
2. Specificity and focus
3. Connection to key themes in Wittgenstein's work
4. Potential for meaningful philosophical discussion

Provide your response in the following JSON format:
{
  "improvedQuestion": "The improved version of the question",
  "explanation": "A brief explanation of why this version is better"
}`

	// Passage budgets and excerpt caps for prompt assembly.
	FrameworkPassageLimit   = 3
	FrameworkExcerptRunes   = 250
	TransactionPassageLimit = 2
	TransactionExcerptRunes = 200

	GenerationTemperature = 0.7
	GenerationMaxTokens   = 1000

	// Fallback strings when structured output is missing pieces.
	FallbackInterpretation   = "No main interpretation generated."
	FallbackInsight          = "No key insights generated."
	FallbackQuoteText        = "No relevant quotes identified."
	FallbackQuoteExplanation = "No explanation provided."
	DegradedInsight          = "Could not extract structured insights."
	DegradedQuoteText        = "No structured quotes available."
	DegradedQuoteExplanation = "Response format error."
)
