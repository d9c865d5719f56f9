package summarize

import "strings"

// BuildPrompt merges the available source texts into the shared
// instruction prompt. Both providers receive the same prompt; a missing
// source is simply omitted.
func BuildPrompt(videoText, pdfText string) string {
	parts := []string{
		"You are an expert assistant for producing detailed, well-organized lecture notes.",
		"Your task is to synthesize the information from a video transcript and/or a PDF document (slides or text) into complete study notes.",
		"Structure the notes with Markdown for clarity (headings, bullet lists, bold for key terms).",
		"Integrate the information coherently; do not just summarize the sources separately.",
		"If one source is missing, base the notes on the one available.",
		"Avoid phrases like 'Based on the video...' or 'The PDF shows that...'. Present the information directly.",
		"\n--- BEGIN CONTENT ---\n",
	}

	if videoText != "" {
		parts = append(parts,
			"--- Video Transcript ---",
			videoText,
			"--- End Video Transcript ---\n",
		)
	}

	if pdfText != "" {
		parts = append(parts,
			"--- PDF Text ---",
			pdfText,
			"--- End PDF Text ---\n",
		)
	}

	parts = append(parts,
		"--- END CONTENT ---\n",
		"Now produce the detailed lecture notes:",
	)

	return strings.Join(parts, "\n")
}
