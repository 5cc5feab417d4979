package markup

import (
	"strings"
	"testing"
)

func TestRender_EscapesScriptTags(t *testing.T) {
	out := Render(`<script>alert(1)</script>`)

	if strings.Contains(out, "<script>") {
		t.Fatalf("Expected no literal script tag, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("Expected entity-escaped form, got %q", out)
	}
}

func TestRender_EscapesAllSensitiveCharacters(t *testing.T) {
	out := Render(`& < > " '`)

	for _, entity := range []string{"&amp;", "&lt;", "&gt;", "&#34;", "&#39;"} {
		if !strings.Contains(out, entity) {
			t.Errorf("Expected %s in output, got %q", entity, out)
		}
	}
}

func TestRender_BoldAndEmphasis(t *testing.T) {
	out := Render("**bold** and *em*")

	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected strong wrapping, got %q", out)
	}
	if !strings.Contains(out, "<em>em</em>") {
		t.Errorf("Expected emphasis wrapping, got %q", out)
	}
	if strings.Contains(out, "*") {
		t.Errorf("Expected no raw asterisks, got %q", out)
	}
}

func TestRender_UnderscoreVariants(t *testing.T) {
	out := Render("__strong__ and _soft_")

	if !strings.Contains(out, "<strong>strong</strong>") {
		t.Errorf("Expected strong from double underscore, got %q", out)
	}
	if !strings.Contains(out, "<em>soft</em>") {
		t.Errorf("Expected emphasis from single underscore, got %q", out)
	}
}

func TestRender_NumberedList(t *testing.T) {
	out := Render("1. first\n2. second")

	first := strings.Index(out, `<div class="numbered-item">1. first</div>`)
	second := strings.Index(out, `<div class="numbered-item">2. second</div>`)

	if first < 0 || second < 0 {
		t.Fatalf("Expected two numbered-item blocks, got %q", out)
	}
	if first > second {
		t.Error("Expected items in original order")
	}
}

func TestRender_BulletList(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"dash", "- item"},
		{"star", "* item"},
		{"plus", "+ item"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Render(tc.input)
			if !strings.Contains(out, `<div class="bullet-item">• item</div>`) {
				t.Errorf("Expected bullet block, got %q", out)
			}
		})
	}
}

func TestRender_BulletRequiresSpace(t *testing.T) {
	out := Render("-not a bullet")

	if strings.Contains(out, "bullet-item") {
		t.Errorf("Expected no bullet block without a space, got %q", out)
	}
}

func TestRender_Paragraphs(t *testing.T) {
	out := Render("first para\n\nsecond para")

	if !strings.Contains(out, "<p>first para</p>") {
		t.Errorf("Expected first paragraph, got %q", out)
	}
	if !strings.Contains(out, "<p>second para</p>") {
		t.Errorf("Expected second paragraph, got %q", out)
	}
}

func TestRender_DropsEmptyParagraphs(t *testing.T) {
	out := Render("text\n\n\n\n")

	if strings.Contains(out, "<p></p>") {
		t.Errorf("Expected empty paragraphs dropped, got %q", out)
	}
}

func TestRender_SingleNewlineBecomesBreak(t *testing.T) {
	out := Render("line one\nline two")

	if !strings.Contains(out, "line one<br>line two") {
		t.Errorf("Expected a line break, got %q", out)
	}
}

func TestRender_BoldInsideListItem(t *testing.T) {
	out := Render("1. take **deep** breaths")

	if !strings.Contains(out, `<div class="numbered-item">1. take <strong>deep</strong> breaths</div>`) {
		t.Errorf("Expected emphasis to survive inside list items, got %q", out)
	}
}

func TestRender_EscapingRunsBeforeFormatting(t *testing.T) {
	out := Render("**<b>**")

	if strings.Contains(out, "<b>") {
		t.Fatalf("Expected model-supplied tags escaped, got %q", out)
	}
	if !strings.Contains(out, "<strong>&lt;b&gt;</strong>") {
		t.Errorf("Expected escaped text inside application tags, got %q", out)
	}
}

func TestRender_Deterministic(t *testing.T) {
	in := "**a**\n\n1. b\n- c"
	if Render(in) != Render(in) {
		t.Error("Expected identical output for identical input")
	}
}
