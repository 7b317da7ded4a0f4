package coach

const coachSystemPrompt = `You are a sharp personal productivity coach. Speak briefly and concretely.`

const coachUserPromptTemplate = `Task: %s
Estimated time: %d minutes
Output: one short sentence (at most 20 words) telling the user how to start this task right now. No preamble, no quotes.`

const summarySystemPrompt = `You are a concise review editor. Summaries are bullet points; improvement suggestions start with a verb.`

const summaryUserPromptTemplate = `Notes from the last %d days:
%s

Output JSON only: {"summary": ["up to 2 short bullets"], "improvements": ["3 suggestions, each starting with a verb"]}`
