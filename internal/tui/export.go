package tui

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"sakhiai/internal/markup"
	"sakhiai/internal/models"
)

// transcriptHTML builds a standalone HTML page of the conversation. AI turns
// go through the markup renderer; user turns are escaped literal text only —
// the same boundary the live view enforces.
func transcriptHTML(turns []models.Turn, themeName string) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <title>SakhiAI conversation</title>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", time.Now().Format(time.RFC3339)))
	sb.WriteString(transcriptCSS)
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", themeName))
	sb.WriteString("    <main class=\"conversation\">\n")

	for _, turn := range turns {
		sb.WriteString(renderTranscriptTurn(turn))
	}

	sb.WriteString("    </main>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return sb.String()
}

func renderTranscriptTurn(turn models.Turn) string {
	var sb strings.Builder

	label := "SakhiAI"
	class := "ai"
	content := markup.Render(turn.Text)
	if turn.Sender == models.SenderUser {
		label = "You"
		class = "user"
		content = html.EscapeString(turn.Text)
	}

	sb.WriteString(fmt.Sprintf("        <div class=\"message %s-message\">\n", class))
	sb.WriteString(fmt.Sprintf("            <span class=\"role-label\">%s</span>\n", label))
	if turn.Timestamp != "" {
		sb.WriteString(fmt.Sprintf("            <span class=\"timestamp\">%s</span>\n", html.EscapeString(turn.Timestamp)))
	}
	sb.WriteString(fmt.Sprintf("            <div class=\"message-content\">%s</div>\n", content))
	sb.WriteString("        </div>\n")

	return sb.String()
}

// exportTranscript writes the page next to the state dir and returns its
// path.
func exportTranscript(dir string, turns []models.Turn, themeName string) (string, error) {
	path := fmt.Sprintf("%s/sakhi-transcript-%s.html", dir, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(path, []byte(transcriptHTML(turns, themeName)), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}

const transcriptCSS = `    <style>
        body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
        body.dark-theme { background: #1e1e2e; color: #e4e4ef; }
        .message { margin: 1rem 0; padding: 0.75rem 1rem; border-radius: 0.75rem; }
        .user-message { background: #e8f0fe; }
        .ai-message { background: #fdeef4; }
        .dark-theme .user-message { background: #27304a; }
        .dark-theme .ai-message { background: #3a2736; }
        .role-label { font-weight: bold; margin-right: 0.5rem; }
        .timestamp { font-size: 0.75rem; opacity: 0.6; }
        .numbered-item, .bullet-item { margin: 0.25rem 0 0.25rem 1rem; }
    </style>
`
